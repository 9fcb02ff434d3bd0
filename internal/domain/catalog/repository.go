package catalog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type ListFilter struct {
	// Search matches name or description, case-insensitively.
	Search string
	Page   int
	Limit  int
}

// ServiceSummary is a catalog row with the number of bookings that used it.
type ServiceSummary struct {
	models.Service
	BookingCount int64 `json:"booking_count"`
}

type Dependencies struct {
	Bookings  int64
	CartItems int64
}

func (d Dependencies) Any() bool {
	return d.Bookings > 0 || d.CartItems > 0
}

// Overview is the back-office landing snapshot.
type Overview struct {
	Services         int64            `json:"services"`
	ActiveServices   int64            `json:"active_services"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	BookingsToday    int64            `json:"bookings_today"`
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]ServiceSummary, int64, error)
	Get(ctx context.Context, id uint) (*models.Service, error)
	// LockService loads the row and holds it until the surrounding
	// transaction ends, so no new line or booking can reference it meanwhile.
	LockService(ctx context.Context, id uint) (*models.Service, error)
	RecentBookings(ctx context.Context, serviceID uint, n int) ([]models.Booking, error)
	CountDependencies(ctx context.Context, serviceID uint) (Dependencies, error)

	// NameTaken ignores the row with id exceptID, 0 meaning none.
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
	// Create and Update return a duplicate_service business error when the
	// name index rejects the row.
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error

	Overview(ctx context.Context, day time.Time) (*Overview, error)

	WithinTx(ctx context.Context, fn func(tx Repository) error) error
}
