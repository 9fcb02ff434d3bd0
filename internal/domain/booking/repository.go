package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/pet-shop/internal/models"
)

var ErrNotFound = errors.New("booking: record not found")

// Slot is the owner-scoped scheduling key. Two lines of the same owner may not
// share one.
type Slot struct {
	OwnerID   string
	ServiceID uint
	Date      time.Time
	Time      string
}

type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

type Repository interface {
	// -------- Service --------
	GetActiveService(ctx context.Context, id uint) (*models.Service, error)
	ListActiveServices(ctx context.Context) ([]models.Service, error)

	// -------- Cart --------
	ListCartItems(ctx context.Context, ownerID string) ([]models.CartItem, error)
	// LockCartItems loads the owner's lines and holds them until the
	// surrounding transaction ends.
	LockCartItems(ctx context.Context, ownerID string) ([]models.CartItem, error)
	CartSlotTaken(ctx context.Context, slot Slot) (bool, error)
	// CreateCartItem returns a duplicate_booking business error when the slot
	// index rejects the row.
	CreateCartItem(ctx context.Context, item *models.CartItem) error
	DeleteCartItem(ctx context.Context, ownerID string, id uint) (bool, error)
	DeleteCartItems(ctx context.Context, ownerID string, ids []uint) (int64, error)

	// -------- Booking --------
	BookingSlotTaken(ctx context.Context, slot Slot) (bool, error)
	// CreateBookings returns a duplicate_booking business error when a live
	// booking already holds one of the slots.
	CreateBookings(ctx context.Context, bookings []models.Booking) error
	ListBookingsForOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, int64, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	// UpdateBookingStatus moves the booking from one status to another. It
	// reports false, without error, when the row is no longer in from.
	UpdateBookingStatus(ctx context.Context, id uint, from, to Status) (bool, error)

	// WithinTx runs fn against a repository bound to one transaction. Any
	// error returned by fn rolls everything back.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error
}
