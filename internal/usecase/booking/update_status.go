package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actor *identity.AuthenticatedUser,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	if err := requireActive(actor); err != nil {
		return nil, err
	}

	next, ok := domain.ParseStatus(rawStatus)
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeInvalidStatus)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	previous := domain.Status(b.Status)
	if err := domain.CanTransition(previous, next); err != nil {
		return nil, err
	}

	// Another writer may have moved the booking since it was read.
	updated, err := uc.repo.UpdateBookingStatus(ctx, b.ID, previous, next)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if !updated {
		return nil, httperr.ErrBusiness(domain.CodeInvalidTransition)
	}
	b.Status = string(next)

	uc.audit.Dispatch(audit.Event{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     "booking_status_changed",
		Entity:     "booking",
		EntityID:   fmt.Sprint(b.ID),
		Metadata: map[string]string{
			"from": string(previous),
			"to":   string(next),
		},
	})

	return b, nil
}
