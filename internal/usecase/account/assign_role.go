package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/metrics"
	"github.com/BruksfildServices01/pet-shop/internal/worker"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type AssignRoleInput struct {
	Actor *identity.AuthenticatedUser
	Email string
	Role  string
}

type RoleAssignment struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      role.Role `json:"role"`
	UpdatedBy string    `json:"updatedBy"`
}

// ======================================================
// USE CASE
// ======================================================

type AssignRole struct {
	users     identity.UserRepository
	directory identity.Directory
	sessions  identity.SessionTransport
	tasks     worker.Submitter
	audit     *audit.Dispatcher
	log       zerolog.Logger
}

func NewAssignRole(
	users identity.UserRepository,
	directory identity.Directory,
	sessions identity.SessionTransport,
	tasks worker.Submitter,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *AssignRole {
	return &AssignRole{
		users:     users,
		directory: directory,
		sessions:  sessions,
		tasks:     tasks,
		audit:     audit,
		log:       log.With().Str("component", "role_assignment").Logger(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AssignRole) Execute(ctx context.Context, in AssignRoleInput) (*RoleAssignment, error) {
	if in.Actor == nil {
		return nil, httperr.ErrBusiness(CodeUnauthenticated)
	}
	if !in.Actor.IsActive {
		metrics.RoleAssignmentsTotal.WithLabelValues(CodeAccountInactive).Inc()
		return nil, httperr.ErrBusiness(CodeAccountInactive)
	}

	// --------------------------------------------------
	// 1) Target role
	// --------------------------------------------------
	target, ok := role.Parse(in.Role)
	if !ok {
		metrics.RoleAssignmentsTotal.WithLabelValues(CodeInvalidRole).Inc()
		return nil, httperr.ErrBusiness(CodeInvalidRole)
	}

	// --------------------------------------------------
	// 2) Target account
	// --------------------------------------------------
	rec, err := uc.findTarget(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3) Mutation policy against the authoritative role
	// --------------------------------------------------
	current, _ := role.ParseOrDefault(rec.Role)
	decision := role.CanChangeRole(in.Actor.Role, target, current)
	if !decision.Allowed {
		metrics.RoleAssignmentsTotal.WithLabelValues(decision.Reason).Inc()
		uc.log.Warn().
			Str("actor", in.Actor.Email).
			Str("target_role", string(target)).
			Str("reason", decision.Reason).
			Msg("role change refused")
		return nil, httperr.ErrBusinessReason(CodePermissionDenied, decision.Reason)
	}

	// --------------------------------------------------
	// 4) Relational update, then session sync
	// --------------------------------------------------
	if err := uc.users.UpdateRole(ctx, rec.ID, target); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, httperr.ErrBusiness(CodeUserNotFound)
		}
		return nil, fmt.Errorf("update role: %w", err)
	}

	scheduleSessionSync(uc.tasks, uc.sessions, rec.ID, identity.MetadataPatch{Role: &target})

	uc.audit.Dispatch(audit.Event{
		ActorID:    in.Actor.ID,
		ActorEmail: in.Actor.Email,
		Action:     "role_assigned",
		Entity:     "user",
		EntityID:   rec.ID,
		Metadata: map[string]string{
			"from": string(current),
			"to":   string(target),
		},
	})

	metrics.RoleAssignmentsTotal.WithLabelValues("ok").Inc()
	uc.log.Info().
		Str("actor", in.Actor.Email).
		Str("target", rec.Email).
		Str("from", string(current)).
		Str("to", string(target)).
		Msg("role assigned")

	return &RoleAssignment{
		UserID:    rec.ID,
		Email:     rec.Email,
		Role:      target,
		UpdatedBy: in.Actor.Email,
	}, nil
}

// findTarget reads the relational row, materializing it from the identity
// provider's directory when the account never reached the relational store.
func (uc *AssignRole) findTarget(ctx context.Context, email string) (*identity.UserRecord, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	rec, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, identity.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	sess, err := uc.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, httperr.ErrBusiness(CodeUserNotFound)
		}
		return nil, fmt.Errorf("directory lookup: %w", err)
	}
	if sess == nil {
		return nil, httperr.ErrBusiness(CodeUserNotFound)
	}

	materialized := identity.Reconcile(*sess, nil).MaterializeRecord
	if err := uc.users.CreateIfAbsent(ctx, *materialized); err != nil {
		return nil, fmt.Errorf("materialize user: %w", err)
	}

	rec, err = uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, httperr.ErrBusiness(CodeUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return rec, nil
}
