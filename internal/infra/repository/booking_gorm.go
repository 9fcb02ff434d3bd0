package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

func (r *BookingGormRepository) ListCartItems(
	ctx context.Context,
	ownerID string,
) ([]models.CartItem, error) {

	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingGormRepository) LockCartItems(
	ctx context.Context,
	ownerID string,
) ([]models.CartItem, error) {

	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingGormRepository) CartSlotTaken(
	ctx context.Context,
	slot domain.Slot,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where(
			"owner_id = ? AND service_id = ? AND booking_date = ? AND booking_time = ?",
			slot.OwnerID, slot.ServiceID, slot.Date, slot.Time,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateCartItem(
	ctx context.Context,
	item *models.CartItem,
) error {

	err := r.db.WithContext(ctx).Omit("Service").Create(item).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(domain.CodeDuplicateBooking)
	}
	return err
}

func (r *BookingGormRepository) DeleteCartItem(
	ctx context.Context,
	ownerID string,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingGormRepository) DeleteCartItems(
	ctx context.Context,
	ownerID string,
	ids []uint,
) (int64, error) {

	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) BookingSlotTaken(
	ctx context.Context,
	slot domain.Slot,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"owner_id = ? AND service_id = ? AND booking_date = ? AND booking_time = ? AND status <> ?",
			slot.OwnerID, slot.ServiceID, slot.Date, slot.Time, string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateBookings(
	ctx context.Context,
	bookings []models.Booking,
) error {

	if len(bookings) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Omit("Service").Create(&bookings).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(domain.CodeDuplicateBooking)
	}
	return err
}

func (r *BookingGormRepository) ListBookingsForOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("owner_id = ?", ownerID).
		Order("booking_date DESC, booking_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := q.
		Preload("Service").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	from, to domain.Status,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
