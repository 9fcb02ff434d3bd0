package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the caller as resolved for this request.
func (h *MeHandler) GetMe(c *gin.Context, u *identity.AuthenticatedUser) {
	httpresp.OK(c, u)
}
