package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/pet-shop/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateDirectBooking
	listMy *ucBooking.ListMyBookings
	log    zerolog.Logger
}

func NewBookingHandler(
	create *ucBooking.CreateDirectBooking,
	listMy *ucBooking.ListMyBookings,
	log zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		listMy: listMy,
		log:    log,
	}
}

// Direct bookings share the cart line payload.
type CreateBookingRequest = AddCartItemRequest

func (h *BookingHandler) Create(c *gin.Context, u *identity.AuthenticatedUser) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateDirectBookingInput{
		Actor:         u,
		ServiceID:     req.ServiceID,
		PetName:       req.PetName,
		PetType:       req.PetType,
		Date:          req.BookingDate,
		Time:          req.BookingTime,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context, u *identity.AuthenticatedUser) {
	bookings, err := h.listMy.Execute(c.Request.Context(), u)
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.List(c, bookings)
}
