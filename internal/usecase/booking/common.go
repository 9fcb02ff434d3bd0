package booking

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/timezone"
)

// requireActive repeats the guard's check inside the use case so the
// operation holds even when called outside the HTTP layer.
func requireActive(u *identity.AuthenticatedUser) error {
	if u == nil || u.ID == "" {
		return httperr.ErrBusiness(domain.CodeUnauthenticated)
	}
	if !u.IsActive {
		return httperr.ErrBusiness(domain.CodeAccountInactive)
	}
	return nil
}

// parseBookingDate reads YYYY-MM-DD and rejects days before today in the
// shop's timezone.
func parseBookingDate(raw, tz string, now time.Time) (time.Time, error) {
	day, err := timezone.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(domain.CodeInvalidDate)
	}
	if day.Before(timezone.Today(now, tz)) {
		return time.Time{}, httperr.ErrBusiness(domain.CodeDateInPast)
	}
	return day, nil
}
