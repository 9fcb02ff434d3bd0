package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/middleware"
	"github.com/BruksfildServices01/pet-shop/internal/validators"
)

type errorMapping struct {
	status  int
	code    string
	message string
}

// businessErrors maps use case codes to their HTTP rendering. Messages never
// carry ids of other accounts.
var businessErrors = map[string]errorMapping{
	"unauthenticated":        {http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required."},
	"account_inactive":       {http.StatusForbidden, "ACCOUNT_INACTIVE", "This account is disabled."},
	"invalid_role":           {http.StatusBadRequest, "INVALID_ROLE", "Unknown role."},
	"permission_denied":      {http.StatusForbidden, "PERMISSION_DENIED", "You are not allowed to change this role."},
	"user_not_found":         {http.StatusNotFound, "USER_NOT_FOUND", "User not found."},
	"ownership_violation":    {http.StatusForbidden, "OWNERSHIP_VIOLATION", "The cart contains lines that do not belong to you."},
	"empty_cart":             {http.StatusBadRequest, "EMPTY_CART", "The cart is empty."},
	"missing_customer_email": {http.StatusBadRequest, "MISSING_CUSTOMER_EMAIL", "A customer email is required."},
	"duplicate_booking":      {http.StatusConflict, "DUPLICATE_BOOKING", "This service is already booked for that date and time."},
	"cart_changed":           {http.StatusConflict, "CART_CHANGED", "The cart changed during checkout, please retry."},
	"service_not_found":      {http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found."},
	"cart_item_not_found":    {http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Cart item not found."},
	"booking_not_found":      {http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found."},
	"invalid_date":           {http.StatusBadRequest, "INVALID_DATE", "Dates must use the YYYY-MM-DD format."},
	"date_in_past":           {http.StatusBadRequest, "DATE_IN_PAST", "The date is in the past."},
	"invalid_transition":     {http.StatusConflict, "INVALID_TRANSITION", "The booking cannot move to that status."},
	"invalid_status":         {http.StatusBadRequest, "INVALID_STATUS", "Unknown booking status."},
	"duplicate_service":      {http.StatusConflict, "DUPLICATE_SERVICE", "A service with this name already exists."},
	"invalid_service":        {http.StatusBadRequest, "VALIDATION_ERROR", "Name and description are required, price and duration must be greater than zero."},
	"service_in_use":         {http.StatusConflict, "HAS_DEPENDENCIES", "The service has bookings or cart lines. Deactivate it instead."},
}

// writeError renders err. Unknown errors are logged and answered with
// fallbackCode and a generic message.
func writeError(c *gin.Context, log zerolog.Logger, err error, fallbackCode string) {
	if be, ok := httperr.AsBusiness(err); ok {
		if m, known := businessErrors[be.Code]; known {
			httperr.WriteReason(c, m.status, m.code, be.Reason, m.message)
			return
		}
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.ContextRequestID)).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("unhandled error")

	httperr.Internal(c, fallbackCode, "Something went wrong, please retry.")
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, "VALIDATION_ERROR", validators.Describe(err))
}
