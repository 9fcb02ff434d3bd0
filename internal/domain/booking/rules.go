package booking

import (
	"strings"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// CheckoutNote is stored on confirmed bookings that came from the cart
// without notes of their own.
const CheckoutNote = "Prenotazione confermata dal carrello"

const defaultCustomerName = "Cliente"

type CustomerInfo struct {
	Name  string
	Email string
}

// ResolveEmail picks the explicit checkout email, else the account email.
func ResolveEmail(info CustomerInfo, u *identity.AuthenticatedUser) string {
	if e := strings.TrimSpace(info.Email); e != "" {
		return e
	}
	if u != nil {
		return strings.TrimSpace(u.Email)
	}
	return ""
}

// ResolveName prefers, in order: the checkout name, the name on the line, the
// account name, the local part of the email.
func ResolveName(info CustomerInfo, item models.CartItem, u *identity.AuthenticatedUser, email string) string {
	for _, n := range []string{info.Name, item.CustomerName} {
		if n = strings.TrimSpace(n); n != "" {
			return n
		}
	}
	if u != nil && strings.TrimSpace(u.FullName) != "" {
		return strings.TrimSpace(u.FullName)
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return defaultCustomerName
}

// BookingFromCart converts one line into a confirmed booking.
func BookingFromCart(item models.CartItem, name, email string) models.Booking {
	notes := strings.TrimSpace(item.Notes)
	if notes == "" {
		notes = CheckoutNote
	}

	return models.Booking{
		OwnerID:       item.OwnerID,
		ServiceID:     item.ServiceID,
		CustomerName:  name,
		CustomerEmail: email,
		PetName:       item.PetName,
		PetType:       item.PetType,
		BookingDate:   item.BookingDate,
		BookingTime:   item.BookingTime,
		Status:        string(CheckoutStatus()),
		Notes:         notes,
	}
}
