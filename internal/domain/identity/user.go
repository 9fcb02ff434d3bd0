package identity

import (
	"time"

	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
)

// AuthenticatedUser is the per-request view of the caller. It is rebuilt on
// every request and never cached.
type AuthenticatedUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        role.Role  `json:"role"`
	FullName    string     `json:"fullName,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// Metadata is what the identity provider keeps next to the account. Role is
// raw and untrusted until parsed.
type Metadata struct {
	Role     string
	IsActive *bool
	FullName string
}

// SessionUser is the identity provider's answer for the current session.
type SessionUser struct {
	ID           string
	Email        string
	Metadata     Metadata
	LastSignInAt *time.Time
}

// MetadataPatch carries only the fields to overwrite.
type MetadataPatch struct {
	Role     *role.Role
	IsActive *bool
	FullName *string
}

// UserRecord is the relational account row.
type UserRecord struct {
	ID          string
	Email       string
	FullName    string
	Role        string
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
