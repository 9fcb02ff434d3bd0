package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(ctx context.Context, id string) (*identity.UserRecord, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translateUserErr(err)
	}
	rec := toRecord(u)
	return &rec, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*identity.UserRecord, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, translateUserErr(err)
	}
	rec := toRecord(u)
	return &rec, nil
}

// CreateIfAbsent inserts the row unless one with the same id or email exists.
// An existing row is authoritative and is left untouched.
func (r *UserGormRepository) CreateIfAbsent(ctx context.Context, rec identity.UserRecord) error {
	row := models.User{
		ID:          rec.ID,
		Email:       strings.ToLower(strings.TrimSpace(rec.Email)),
		FullName:    rec.FullName,
		Role:        rec.Role,
		IsActive:    rec.IsActive,
		LastLoginAt: rec.LastLoginAt,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *UserGormRepository) UpdateRole(ctx context.Context, id string, newRole role.Role) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", string(newRole))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}

func (r *UserGormRepository) List(ctx context.Context, page, limit int) ([]identity.UserRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]identity.UserRecord, 0, len(rows))
	for _, u := range rows {
		out = append(out, toRecord(u))
	}
	return out, total, nil
}

func toRecord(u models.User) identity.UserRecord {
	return identity.UserRecord{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func translateUserErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return identity.ErrUserNotFound
	}
	return err
}

// Compile-time check
var _ identity.UserRepository = (*UserGormRepository)(nil)
