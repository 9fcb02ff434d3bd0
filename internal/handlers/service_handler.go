package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/pet-shop/internal/usecase/booking"
)

type ServiceHandler struct {
	listServices *ucBooking.ListServices
	log          zerolog.Logger
}

func NewServiceHandler(listServices *ucBooking.ListServices, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{listServices: listServices, log: log}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.List(c, services)
}
