package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type AuditReader interface {
	List(ctx context.Context, action string, limit int) ([]models.AuditLog, error)
}

type AuditLogsHandler struct {
	reader AuditReader
	log    zerolog.Logger
}

func NewAuditLogsHandler(reader AuditReader, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context, _ *identity.AuthenticatedUser) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.reader.List(c.Request.Context(), c.Query("action"), limit)
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.List(c, logs)
}
