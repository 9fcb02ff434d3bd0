package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	booking "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// ServiceGormRepository backs the back-office catalog. The public listing of
// active services stays on BookingGormRepository.
type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ServiceGormRepository) List(
	ctx context.Context,
	f catalog.ListFilter,
) ([]catalog.ServiceSummary, int64, error) {

	search := func(db *gorm.DB) *gorm.DB {
		if f.Search == "" {
			return db
		}
		like := "%" + escapeLike(f.Search) + "%"
		return db.Where("services.name ILIKE ? OR services.description ILIKE ?", like, like)
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Scopes(search).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []catalog.ServiceSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Scopes(search).
		Select("services.*, (SELECT COUNT(*) FROM bookings WHERE bookings.service_id = services.id) AS booking_count").
		Order("services.created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *ServiceGormRepository) Get(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translateServiceErr(err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) LockService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, id).Error; err != nil {
		return nil, translateServiceErr(err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) RecentBookings(
	ctx context.Context,
	serviceID uint,
	n int,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Limit(n).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ServiceGormRepository) CountDependencies(
	ctx context.Context,
	serviceID uint,
) (catalog.Dependencies, error) {

	var d catalog.Dependencies
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Booking{}).
		Where("service_id = ?", serviceID).
		Count(&d.Bookings).Error; err != nil {
		return d, err
	}
	if err := db.Model(&models.CartItem{}).
		Where("service_id = ?", serviceID).
		Count(&d.CartItems).Error; err != nil {
		return d, err
	}
	return d, nil
}

func (r *ServiceGormRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(catalog.CodeDuplicateService)
	}
	return err
}

// Update writes every editable column, zero values included.
func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	err := r.db.WithContext(ctx).
		Model(s).
		Select("Name", "Description", "Price", "Duration", "Active").
		Updates(s).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(catalog.CodeDuplicateService)
	}
	return err
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if isForeignKeyViolation(res.Error) {
		return httperr.ErrBusiness(catalog.CodeServiceInUse)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *ServiceGormRepository) Overview(ctx context.Context, day time.Time) (*catalog.Overview, error) {
	o := &catalog.Overview{BookingsByStatus: map[string]int64{}}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Service{}).Count(&o.Services).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Service{}).
		Where("active = ?", true).
		Count(&o.ActiveServices).Error; err != nil {
		return nil, err
	}

	var byStatus []struct {
		Status string
		Total  int64
	}
	if err := db.Model(&models.Booking{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		o.BookingsByStatus[row.Status] = row.Total
	}

	if err := db.Model(&models.Booking{}).
		Where("booking_date = ? AND status <> ?", day, string(booking.StatusCancelled)).
		Count(&o.BookingsToday).Error; err != nil {
		return nil, err
	}

	return o, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ServiceGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx catalog.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ServiceGormRepository{db: tx})
	})
}

func translateServiceErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.ErrNotFound
	}
	return err
}

// Compile-time check
var _ catalog.Repository = (*ServiceGormRepository)(nil)
