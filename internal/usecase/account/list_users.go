package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type UserView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type UserPage struct {
	Users []UserView
	Page  int
	Limit int
	Total int64
}

type ListUsers struct {
	users identity.UserRepository
}

func NewListUsers(users identity.UserRepository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(ctx context.Context, page, limit int) (*UserPage, error) {
	page, limit = NormalizePage(page, limit)

	recs, total, err := uc.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(recs))
	for _, r := range recs {
		views = append(views, UserView{
			ID:          r.ID,
			Email:       r.Email,
			FullName:    r.FullName,
			Role:        r.Role,
			IsActive:    r.IsActive,
			LastLoginAt: r.LastLoginAt,
			CreatedAt:   r.CreatedAt,
		})
	}

	return &UserPage{Users: views, Page: page, Limit: limit, Total: total}, nil
}

// NormalizePage clamps paging parameters to 1-based pages of at most
// maxPageSize rows.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
