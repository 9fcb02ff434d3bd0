package booking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/metrics"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CheckoutInput struct {
	Actor    *identity.AuthenticatedUser
	Customer domain.CustomerInfo
}

// ======================================================
// USE CASE
// ======================================================

// Checkout turns the caller's cart into confirmed bookings in one
// transaction. Either every line becomes a booking and leaves the cart, or
// nothing changes.
type Checkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewCheckout(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *Checkout {
	return &Checkout{
		repo:  repo,
		audit: audit,
		log:   log.With().Str("component", "checkout").Logger(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) ([]models.Booking, error) {
	if err := requireActive(in.Actor); err != nil {
		metrics.CheckoutsTotal.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}

	var created []models.Booking

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		// --------------------------------------------------
		// 1) Lock the owner's lines
		// --------------------------------------------------
		items, err := tx.LockCartItems(ctx, in.Actor.ID)
		if err != nil {
			return fmt.Errorf("lock cart: %w", err)
		}
		if len(items) == 0 {
			return httperr.ErrBusiness(domain.CodeEmptyCart)
		}

		// --------------------------------------------------
		// 2) Ownership, even though the query is scoped
		// --------------------------------------------------
		for _, item := range items {
			if item.OwnerID != in.Actor.ID {
				uc.log.Error().
					Str("user_id", in.Actor.ID).
					Uint("cart_item_id", item.ID).
					Msg("cart line with foreign owner in checkout")
				return httperr.ErrBusiness(domain.CodeOwnershipViolation)
			}
		}

		email := domain.ResolveEmail(in.Customer, in.Actor)
		if email == "" {
			return httperr.ErrBusiness(domain.CodeMissingCustomerEmail)
		}

		// --------------------------------------------------
		// 3) Bookings
		// --------------------------------------------------
		bookings := make([]models.Booking, 0, len(items))
		ids := make([]uint, 0, len(items))
		for _, item := range items {
			name := domain.ResolveName(in.Customer, item, in.Actor, email)
			bookings = append(bookings, domain.BookingFromCart(item, name, email))
			ids = append(ids, item.ID)
		}

		if err := tx.CreateBookings(ctx, bookings); err != nil {
			return fmt.Errorf("create bookings: %w", err)
		}

		// --------------------------------------------------
		// 4) Remove exactly the converted lines
		// --------------------------------------------------
		deleted, err := tx.DeleteCartItems(ctx, in.Actor.ID, ids)
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		if deleted != int64(len(ids)) {
			return httperr.ErrBusiness(domain.CodeCartChanged)
		}

		created = bookings
		return nil
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}

	uc.attachServices(ctx, created)

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	metrics.CheckoutBookingsTotal.Add(float64(len(created)))

	ids := make([]uint, 0, len(created))
	for _, b := range created {
		ids = append(ids, b.ID)
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:    in.Actor.ID,
		ActorEmail: in.Actor.Email,
		Action:     "cart_checkout",
		Entity:     "booking",
		Metadata:   map[string]any{"booking_ids": ids},
	})

	return created, nil
}

// attachServices fills the service of each booking for the response. A
// failure here leaves the committed bookings untouched.
func (uc *Checkout) attachServices(ctx context.Context, bookings []models.Booking) {
	services, err := uc.repo.ListActiveServices(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("could not load services for checkout response")
		return
	}

	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	for i := range bookings {
		if s, ok := byID[bookings[i].ServiceID]; ok {
			bookings[i].Service = s
		}
	}
}

func resultLabel(err error) string {
	if be, ok := httperr.AsBusiness(err); ok {
		return be.Code
	}
	return "error"
}
