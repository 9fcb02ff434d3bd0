package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddCartItemInput struct {
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

// ======================================================
// USE CASE
// ======================================================

type AddCartItem struct {
	repo     domain.Repository
	timezone string
	now      func() time.Time
}

func NewAddCartItem(repo domain.Repository, tz string) *AddCartItem {
	return &AddCartItem{
		repo:     repo,
		timezone: tz,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddCartItem) Execute(ctx context.Context, in AddCartItemInput) (*models.CartItem, error) {
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

	// --------------------------------------------------
	// Owner-scoped conflict
	// --------------------------------------------------
	slot := domain.Slot{
		OwnerID:   in.Actor.ID,
		ServiceID: svc.ID,
		Date:      day,
		Time:      in.Time,
	}

	taken, err := uc.repo.CartSlotTaken(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("check cart slot: %w", err)
	}
	if taken {
		return nil, httperr.ErrBusiness(domain.CodeDuplicateBooking)
	}

	item := &models.CartItem{
		OwnerID:       in.Actor.ID,
		ServiceID:     svc.ID,
		PetName:       strings.TrimSpace(in.PetName),
		PetType:       in.PetType,
		BookingDate:   day,
		BookingTime:   in.Time,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		Notes:         strings.TrimSpace(in.Notes),
	}

	// the unique index still catches a concurrent insert of the same slot
	if err := uc.repo.CreateCartItem(ctx, item); err != nil {
		return nil, err
	}

	item.Service = *svc
	return item, nil
}
