package booking

import "github.com/BruksfildServices01/pet-shop/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func ParseStatus(raw string) (Status, bool) {
	switch s := Status(raw); s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return s, true
	}
	return "", false
}

// ===============================
// Validations
// ===============================

// CanTransition rejects moves out of terminal states and no-op moves.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness(CodeInvalidTransition)
}

// DirectStatus is the status of a booking made without the cart.
func DirectStatus() Status {
	return StatusPending
}

// CheckoutStatus is the status of bookings created by checkout.
func CheckoutStatus() Status {
	return StatusConfirmed
}
