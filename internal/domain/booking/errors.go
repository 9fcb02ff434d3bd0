package booking

const (
	CodeUnauthenticated      = "unauthenticated"
	CodeAccountInactive      = "account_inactive"
	CodeEmptyCart            = "empty_cart"
	CodeOwnershipViolation   = "ownership_violation"
	CodeMissingCustomerEmail = "missing_customer_email"
	CodeDuplicateBooking     = "duplicate_booking"
	CodeCartChanged          = "cart_changed"
	CodeServiceNotFound      = "service_not_found"
	CodeCartItemNotFound     = "cart_item_not_found"
	CodeBookingNotFound      = "booking_not_found"
	CodeInvalidDate          = "invalid_date"
	CodeDateInPast           = "date_in_past"
	CodeInvalidTransition    = "invalid_transition"
	CodeInvalidStatus        = "invalid_status"
)
