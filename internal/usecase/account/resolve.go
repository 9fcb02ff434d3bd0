package account

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/metrics"
	"github.com/BruksfildServices01/pet-shop/internal/worker"
)

// Resolver builds the per-request AuthenticatedUser from the session store and
// the relational user table.
type Resolver struct {
	sessions identity.SessionTransport
	users    identity.UserRepository
	tasks    worker.Submitter
	log      zerolog.Logger
}

func NewResolver(
	sessions identity.SessionTransport,
	users identity.UserRepository,
	tasks worker.Submitter,
	log zerolog.Logger,
) *Resolver {
	return &Resolver{
		sessions: sessions,
		users:    users,
		tasks:    tasks,
		log:      log.With().Str("component", "identity").Logger(),
	}
}

// Resolve returns nil, nil when the request carries no usable session. The
// only error it returns is identity.ErrMalformedToken.
func (r *Resolver) Resolve(ctx context.Context, token string) (*identity.AuthenticatedUser, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		metrics.IdentityResolutionsTotal.WithLabelValues("none").Inc()
		return nil, nil
	}

	sess, err := r.sessions.GetSessionUser(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrMalformedToken) {
			return nil, err
		}
		// both sources are out of reach: treat as signed out
		r.log.Error().Err(err).Msg("session store unavailable")
		metrics.IdentityResolutionsTotal.WithLabelValues("none").Inc()
		return nil, nil
	}
	if sess == nil {
		metrics.IdentityResolutionsTotal.WithLabelValues("none").Inc()
		return nil, nil
	}

	rec, err := r.users.FindByID(ctx, sess.ID)
	if err != nil {
		if !errors.Is(err, identity.ErrUserNotFound) {
			r.log.Warn().Err(err).Str("user_id", sess.ID).Msg("user store unavailable, using session claims")
		}
		rec = nil
	}

	res := identity.Reconcile(*sess, rec)

	if res.RejectedRole != "" {
		metrics.RejectedRoleClaimsTotal.Inc()
		r.log.Warn().
			Str("user_id", sess.ID).
			Str("email", sess.Email).
			Str("claim", res.RejectedRole).
			Str("source", string(res.Source)).
			Msg("unrecognized role claim, defaulting to CUSTOMER")
	}

	if res.SyncSession != nil {
		scheduleSessionSync(r.tasks, r.sessions, sess.ID, *res.SyncSession)
	}
	if res.MaterializeRecord != nil {
		scheduleMaterialize(r.tasks, r.users, *res.MaterializeRecord)
	}

	metrics.IdentityResolutionsTotal.WithLabelValues(string(res.Source)).Inc()

	u := res.User
	return &u, nil
}
