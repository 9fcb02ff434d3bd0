package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type RecentBooking struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customer_name"`
	BookingDate  time.Time `json:"booking_date"`
	Status       string    `json:"status"`
}

type ServiceDetail struct {
	models.Service
	BookingCount   int64           `json:"booking_count"`
	CartItemCount  int64           `json:"cart_item_count"`
	RecentBookings []RecentBooking `json:"recent_bookings"`
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*ServiceDetail, error) {
	svc, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeServiceNotFound)
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	deps, err := uc.repo.CountDependencies(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count dependencies: %w", err)
	}

	bookings, err := uc.repo.RecentBookings(ctx, id, recentBookings)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}

	recent := make([]RecentBooking, 0, len(bookings))
	for _, b := range bookings {
		recent = append(recent, RecentBooking{
			ID:           b.ID,
			CustomerName: b.CustomerName,
			BookingDate:  b.BookingDate,
			Status:       b.Status,
		})
	}

	return &ServiceDetail{
		Service:        *svc,
		BookingCount:   deps.Bookings,
		CartItemCount:  deps.CartItems,
		RecentBookings: recent,
	}, nil
}
