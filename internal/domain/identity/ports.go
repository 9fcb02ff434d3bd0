package identity

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
)

var (
	// ErrMalformedToken is a caller bug, not a missing session.
	ErrMalformedToken = errors.New("identity: malformed session token")
	ErrUserNotFound   = errors.New("identity: user not found")
)

// SessionTransport is the identity provider side of a session.
type SessionTransport interface {
	// GetSessionUser returns nil, nil when the token carries no usable session.
	GetSessionUser(ctx context.Context, token string) (*SessionUser, error)
	UpdateSessionMetadata(ctx context.Context, id string, patch MetadataPatch) error
}

// Directory looks accounts up on the identity provider side.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*SessionUser, error)
}

// UserRepository is the relational side. Lookups return ErrUserNotFound for
// absent rows; any other error means the store could not answer.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*UserRecord, error)
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	// CreateIfAbsent never overwrites an existing row.
	CreateIfAbsent(ctx context.Context, rec UserRecord) error
	UpdateRole(ctx context.Context, id string, r role.Role) error
	List(ctx context.Context, page, limit int) ([]UserRecord, int64, error)
}
