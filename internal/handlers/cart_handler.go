package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/pet-shop/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type CartHandler struct {
	listCart   *ucBooking.ListCart
	addItem    *ucBooking.AddCartItem
	removeItem *ucBooking.RemoveCartItem
	checkout   *ucBooking.Checkout
	log        zerolog.Logger
}

func NewCartHandler(
	listCart *ucBooking.ListCart,
	addItem *ucBooking.AddCartItem,
	removeItem *ucBooking.RemoveCartItem,
	checkout *ucBooking.Checkout,
	log zerolog.Logger,
) *CartHandler {
	return &CartHandler{
		listCart:   listCart,
		addItem:    addItem,
		removeItem: removeItem,
		checkout:   checkout,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddCartItemRequest struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	PetName       string `json:"pet_name" binding:"required,max=100"`
	PetType       string `json:"pet_type" binding:"required,pet_type"`
	BookingDate   string `json:"booking_date" binding:"required"`
	BookingTime   string `json:"booking_time" binding:"required,booking_time"`
	CustomerName  string `json:"customer_name" binding:"omitempty,max=100"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	Notes         string `json:"notes" binding:"omitempty,max=255"`
}

type CustomerInfoRequest struct {
	Name  string `json:"name" binding:"omitempty,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
}

type CheckoutRequest struct {
	CustomerInfo *CustomerInfoRequest `json:"customer_info"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *CartHandler) List(c *gin.Context, u *identity.AuthenticatedUser) {
	items, err := h.listCart.Execute(c.Request.Context(), u)
	if err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.List(c, items)
}

func (h *CartHandler) Add(c *gin.Context, u *identity.AuthenticatedUser) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.addItem.Execute(c.Request.Context(), ucBooking.AddCartItemInput{
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

	httpresp.Created(c, item)
}

func (h *CartHandler) Remove(c *gin.Context, u *identity.AuthenticatedUser) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "VALIDATION_ERROR", "Invalid cart item id.")
		return
	}

	if err := h.removeItem.Execute(c.Request.Context(), u, uint(id)); err != nil {
		writeError(c, h.log, err, "INTERNAL_ERROR")
		return
	}

	httpresp.OKMessage(c, gin.H{"id": id}, "Item removed from cart.")
}

// Checkout accepts an empty body.
func (h *CartHandler) Checkout(c *gin.Context, u *identity.AuthenticatedUser) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	var info domain.CustomerInfo
	if req.CustomerInfo != nil {
		info = domain.CustomerInfo{Name: req.CustomerInfo.Name, Email: req.CustomerInfo.Email}
	}

	bookings, err := h.checkout.Execute(c.Request.Context(), ucBooking.CheckoutInput{
		Actor:    u,
		Customer: info,
	})
	if err != nil {
		writeError(c, h.log, err, "CHECKOUT_FAILED")
		return
	}

	httpresp.OKMessage(c, bookings, "Bookings confirmed.")
}
