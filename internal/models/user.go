package models

import "time"

// User is the local account row. The id is issued by the identity provider.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName string `gorm:"size:150" json:"full_name"`
	Role     string `gorm:"size:20;not null" json:"role"`
	// no gorm default: a false value must be inserted as false
	IsActive bool `gorm:"not null" json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
