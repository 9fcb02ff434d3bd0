package access

import (
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
)

type Reason string

const (
	ReasonUnauthenticated   Reason = "unauthenticated"
	ReasonInactive          Reason = "inactive"
	ReasonInsufficientRole  Reason = "insufficient_role"
	ReasonMissingPermission Reason = "missing_permission"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

// Authenticated reports whether the denial means "log in" rather than
// "you may not do this".
func (d Decision) Authenticated() bool {
	return d.Reason != ReasonUnauthenticated
}

// Requirement describes what a route needs. The zero value only asks for an
// active, signed-in user.
type Requirement struct {
	MinRole    role.Role
	Permission role.Permission
}

func Authenticated() Requirement {
	return Requirement{MinRole: role.Customer}
}

// AdminSurface requires at least ADMIN and, when given, a specific permission.
func AdminSurface(p role.Permission) Requirement {
	return Requirement{MinRole: role.Admin, Permission: p}
}

func Check(u *identity.AuthenticatedUser, req Requirement) Decision {
	if u == nil {
		return Decision{Reason: ReasonUnauthenticated}
	}
	if !u.IsActive {
		return Decision{Reason: ReasonInactive}
	}

	minRole := req.MinRole
	if minRole == "" {
		minRole = role.Customer
	}
	if !role.AtLeast(u.Role, minRole) {
		return Decision{Reason: ReasonInsufficientRole}
	}

	if req.Permission != "" && !role.Has(u.Role, req.Permission) {
		return Decision{Reason: ReasonMissingPermission}
	}

	return Decision{Allowed: true}
}
