package booking

import (
	"context"
	"errors"
	"sort"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

var errInterrupted = errors.New("connection reset during insert")

// memRepo keeps rows in slices. WithinTx snapshots them and restores the
// snapshot when fn fails, which is what the relational store guarantees.
type memRepo struct {
	services map[uint]models.Service
	cart     []models.CartItem
	bookings []models.Booking

	nextCart    uint
	nextBooking uint

	// failBookingAt makes the n-th booking insert fail (1-based).
	failBookingAt int
	inserted      int
	// deleteShortfall makes DeleteCartItems remove one line fewer.
	deleteShortfall bool
	// foreignLine is slipped into LockCartItems results.
	foreignLine *models.CartItem
}

func newMemRepo() *memRepo {
	return &memRepo{
		services: map[uint]models.Service{
			5: {ID: 5, Name: "Toelettatura Completa", Price: 35, Duration: 90, Active: true},
			6: {ID: 6, Name: "Taglio Pelo", Price: 25, Duration: 60, Active: true},
			7: {ID: 7, Name: "Servizio Ritirato", Active: false},
		},
		nextCart:    1,
		nextBooking: 1,
	}
}

func (r *memRepo) GetActiveService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok || !s.Active {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memRepo) ListActiveServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memRepo) ListCartItems(_ context.Context, ownerID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, c := range r.cart {
		if c.OwnerID == ownerID {
			c.Service = r.services[c.ServiceID]
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memRepo) LockCartItems(ctx context.Context, ownerID string) ([]models.CartItem, error) {
	items, _ := r.ListCartItems(ctx, ownerID)
	if r.foreignLine != nil {
		items = append(items, *r.foreignLine)
	}
	return items, nil
}

func (r *memRepo) CartSlotTaken(_ context.Context, slot domain.Slot) (bool, error) {
	for _, c := range r.cart {
		if c.OwnerID == slot.OwnerID && c.ServiceID == slot.ServiceID &&
			c.BookingDate.Equal(slot.Date) && c.BookingTime == slot.Time {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	taken, _ := r.CartSlotTaken(ctx, domain.Slot{
		OwnerID: item.OwnerID, ServiceID: item.ServiceID, Date: item.BookingDate, Time: item.BookingTime,
	})
	if taken {
		return httperr.ErrBusiness(domain.CodeDuplicateBooking)
	}
	item.ID = r.nextCart
	r.nextCart++
	r.cart = append(r.cart, *item)
	return nil
}

func (r *memRepo) DeleteCartItem(_ context.Context, ownerID string, id uint) (bool, error) {
	for i, c := range r.cart {
		if c.ID == id && c.OwnerID == ownerID {
			r.cart = append(r.cart[:i], r.cart[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) DeleteCartItems(_ context.Context, ownerID string, ids []uint) (int64, error) {
	drop := map[uint]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	if r.deleteShortfall && len(ids) > 0 {
		delete(drop, ids[len(ids)-1])
	}

	var kept []models.CartItem
	var n int64
	for _, c := range r.cart {
		if c.OwnerID == ownerID && drop[c.ID] {
			n++
			continue
		}
		kept = append(kept, c)
	}
	r.cart = kept
	return n, nil
}

func (r *memRepo) BookingSlotTaken(_ context.Context, slot domain.Slot) (bool, error) {
	for _, b := range r.bookings {
		if b.OwnerID == slot.OwnerID && b.ServiceID == slot.ServiceID &&
			b.BookingDate.Equal(slot.Date) && b.BookingTime == slot.Time &&
			b.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) CreateBookings(_ context.Context, bookings []models.Booking) error {
	for i := range bookings {
		r.inserted++
		if r.failBookingAt > 0 && r.inserted == r.failBookingAt {
			return errInterrupted
		}
		if r.liveBookingAt(bookings[i]) {
			return httperr.ErrBusiness(domain.CodeDuplicateBooking)
		}
		bookings[i].ID = r.nextBooking
		r.nextBooking++
		r.bookings = append(r.bookings, bookings[i])
	}
	return nil
}

// liveBookingAt mirrors idx_booking_owner_slot.
func (r *memRepo) liveBookingAt(b models.Booking) bool {
	for _, existing := range r.bookings {
		if existing.OwnerID == b.OwnerID && existing.ServiceID == b.ServiceID &&
			existing.BookingDate.Equal(b.BookingDate) && existing.BookingTime == b.BookingTime &&
			existing.Status != string(domain.StatusCancelled) {
			return true
		}
	}
	return false
}

func (r *memRepo) ListBookingsForOwner(_ context.Context, ownerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memRepo) ListBookings(_ context.Context, f domain.ListFilter) ([]models.Booking, int64, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if f.Status == "" || b.Status == f.Status {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) UpdateBookingStatus(_ context.Context, id uint, from, to domain.Status) (bool, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id && r.bookings[i].Status == string(from) {
			r.bookings[i].Status = string(to)
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) WithinTx(_ context.Context, fn func(tx domain.Repository) error) error {
	cart := append([]models.CartItem(nil), r.cart...)
	bookings := append([]models.Booking(nil), r.bookings...)
	nextCart, nextBooking := r.nextCart, r.nextBooking

	if err := fn(r); err != nil {
		r.cart, r.bookings = cart, bookings
		r.nextCart, r.nextBooking = nextCart, nextBooking
		return err
	}
	return nil
}

func (r *memRepo) cartOf(ownerID string) []models.CartItem {
	items, _ := r.ListCartItems(context.Background(), ownerID)
	return items
}
