package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type CreateDirectBookingInput struct {
	Actor *identity.AuthenticatedUser

	ServiceID uint
	PetName   string
	PetType   string
	Date      string
	Time      string

	CustomerName  string
	CustomerEmail string
	Notes         string
}

// CreateDirectBooking books a single slot without going through the cart.
// The booking starts pending and waits for the shop to confirm it.
type CreateDirectBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
	now      func() time.Time
}

func NewCreateDirectBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateDirectBooking {
	return &CreateDirectBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
		now:      time.Now,
	}
}

func (uc *CreateDirectBooking) Execute(
	ctx context.Context,
	in CreateDirectBookingInput,
) (*models.Booking, error) {

	if err := requireActive(in.Actor); err != nil {
		return nil, err
	}

	day, err := parseBookingDate(in.Date, uc.timezone, uc.now())
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeServiceNotFound)
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	info := domain.CustomerInfo{Name: in.CustomerName, Email: in.CustomerEmail}
	email := domain.ResolveEmail(info, in.Actor)
	if email == "" {
		return nil, httperr.ErrBusiness(domain.CodeMissingCustomerEmail)
	}

	taken, err := uc.repo.BookingSlotTaken(ctx, domain.Slot{
		OwnerID:   in.Actor.ID,
		ServiceID: svc.ID,
		Date:      day,
		Time:      in.Time,
	})
	if err != nil {
		return nil, fmt.Errorf("check booking slot: %w", err)
	}
	if taken {
		return nil, httperr.ErrBusiness(domain.CodeDuplicateBooking)
	}

	bookings := []models.Booking{{
		OwnerID:       in.Actor.ID,
		ServiceID:     svc.ID,
		CustomerName:  domain.ResolveName(info, models.CartItem{}, in.Actor, email),
		CustomerEmail: email,
		PetName:       strings.TrimSpace(in.PetName),
		PetType:       in.PetType,
		BookingDate:   day,
		BookingTime:   in.Time,
		Status:        string(domain.DirectStatus()),
		Notes:         strings.TrimSpace(in.Notes),
	}}

	if err := uc.repo.CreateBookings(ctx, bookings); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	b := bookings[0]
	b.Service = *svc

	uc.audit.Dispatch(audit.Event{
		ActorID:    in.Actor.ID,
		ActorEmail: in.Actor.Email,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   fmt.Sprint(b.ID),
	})

	return &b, nil
}
