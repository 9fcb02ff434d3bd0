package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// memRepo holds the catalog in a map. bookings and cartLines count references
// per service id.
type memRepo struct {
	services  map[uint]models.Service
	bookings  map[uint][]models.Booking
	cartLines map[uint]int64
	nextID    uint

	// nameRace hides existing names from NameTaken, as a concurrent writer
	// slipping past the check would see them.
	nameRace bool
	deletes  int
}

func newMemRepo(services ...models.Service) *memRepo {
	r := &memRepo{
		services:  map[uint]models.Service{},
		bookings:  map[uint][]models.Booking{},
		cartLines: map[uint]int64{},
		nextID:    1,
	}
	for _, s := range services {
		r.services[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *memRepo) List(_ context.Context, f domain.ListFilter) ([]domain.ServiceSummary, int64, error) {
	var all []domain.ServiceSummary
	needle := strings.ToLower(f.Search)
	for _, s := range r.services {
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Description), needle) {
			continue
		}
		all = append(all, domain.ServiceSummary{Service: s, BookingCount: int64(len(r.bookings[s.ID]))})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	from := (f.Page - 1) * f.Limit
	if from > len(all) {
		from = len(all)
	}
	to := from + f.Limit
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], total, nil
}

func (r *memRepo) Get(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memRepo) LockService(ctx context.Context, id uint) (*models.Service, error) {
	return r.Get(ctx, id)
}

func (r *memRepo) RecentBookings(_ context.Context, serviceID uint, n int) ([]models.Booking, error) {
	b := r.bookings[serviceID]
	if len(b) > n {
		b = b[:n]
	}
	return b, nil
}

func (r *memRepo) CountDependencies(_ context.Context, serviceID uint) (domain.Dependencies, error) {
	return domain.Dependencies{
		Bookings:  int64(len(r.bookings[serviceID])),
		CartItems: r.cartLines[serviceID],
	}, nil
}

func (r *memRepo) nameUsed(name string, exceptID uint) bool {
	for id, s := range r.services {
		if id != exceptID && s.Name == name {
			return true
		}
	}
	return false
}

func (r *memRepo) NameTaken(_ context.Context, name string, exceptID uint) (bool, error) {
	if r.nameRace {
		return false, nil
	}
	return r.nameUsed(name, exceptID), nil
}

func (r *memRepo) Create(_ context.Context, s *models.Service) error {
	if r.nameUsed(s.Name, 0) {
		return httperr.ErrBusiness(domain.CodeDuplicateService)
	}
	s.ID = r.nextID
	r.nextID++
	r.services[s.ID] = *s
	return nil
}

func (r *memRepo) Update(_ context.Context, s *models.Service) error {
	if r.nameUsed(s.Name, s.ID) {
		return httperr.ErrBusiness(domain.CodeDuplicateService)
	}
	r.services[s.ID] = *s
	return nil
}

func (r *memRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrNotFound
	}
	r.deletes++
	delete(r.services, id)
	return nil
}

func (r *memRepo) Overview(_ context.Context, day time.Time) (*domain.Overview, error) {
	o := &domain.Overview{BookingsByStatus: map[string]int64{}}
	for _, s := range r.services {
		o.Services++
		if s.Active {
			o.ActiveServices++
		}
	}
	for _, list := range r.bookings {
		for _, b := range list {
			o.BookingsByStatus[b.Status]++
			if b.BookingDate.Equal(day) && b.Status != "cancelled" {
				o.BookingsToday++
			}
		}
	}
	return o, nil
}

func (r *memRepo) WithinTx(_ context.Context, fn func(tx domain.Repository) error) error {
	snapshot := make(map[uint]models.Service, len(r.services))
	for id, s := range r.services {
		snapshot[id] = s
	}
	if err := fn(r); err != nil {
		r.services = snapshot
		return err
	}
	return nil
}
