package booking

import (
	"context"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListMyBookings returns the caller's bookings, newest slot first.
type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(ctx context.Context, actor *identity.AuthenticatedUser) ([]models.Booking, error) {
	if err := requireActive(actor); err != nil {
		return nil, err
	}
	return uc.repo.ListBookingsForOwner(ctx, actor.ID)
}

type BookingPage struct {
	Bookings []models.Booking
	Page     int
	Limit    int
	Total    int64
}

// ListAllBookings is the back-office view across owners.
type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

// Execute accepts "" or "all" as no status filter.
func (uc *ListAllBookings) Execute(ctx context.Context, status string, page, limit int) (*BookingPage, error) {
	f := domain.ListFilter{Page: page, Limit: limit}

	if status != "" && status != "all" {
		s, ok := domain.ParseStatus(status)
		if !ok {
			return nil, httperr.ErrBusiness(domain.CodeInvalidStatus)
		}
		f.Status = string(s)
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	bookings, total, err := uc.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}

	return &BookingPage{
		Bookings: bookings,
		Page:     f.Page,
		Limit:    f.Limit,
		Total:    total,
	}, nil
}
