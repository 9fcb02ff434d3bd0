package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/pet-shop/internal/usecase/booking"
)

type AdminBookingHandler struct {
	listAll      *ucBooking.ListAllBookings
	updateStatus *ucBooking.UpdateBookingStatus
	log          zerolog.Logger
}

func NewAdminBookingHandler(
	listAll *ucBooking.ListAllBookings,
	updateStatus *ucBooking.UpdateBookingStatus,
	log zerolog.Logger,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listAll:      listAll,
		updateStatus: updateStatus,
		log:          log,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminBookingHandler) List(c *gin.Context, _ *identity.AuthenticatedUser) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.listAll.Execute(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.Page(c, out.Bookings, out.Page, out.Limit, out.Total)
}

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context, u *identity.AuthenticatedUser) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "VALIDATION_ERROR", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), u, uint(id), req.Status)
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.OKMessage(c, b, "Booking updated.")
}
