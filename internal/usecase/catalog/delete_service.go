package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
)

// DeleteService removes a service nobody has booked or put in a cart.
// Services with history are deactivated instead, through UpdateService.
type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
		log:   log.With().Str("component", "catalog").Logger(),
	}
}

func (uc *DeleteService) Execute(ctx context.Context, actor *identity.AuthenticatedUser, id uint) error {
	return count("delete", uc.delete(ctx, actor, id))
}

func (uc *DeleteService) delete(ctx context.Context, actor *identity.AuthenticatedUser, id uint) error {
	if err := requireActive(actor); err != nil {
		return err
	}

	var name string
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		svc, err := tx.LockService(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrBusiness(domain.CodeServiceNotFound)
			}
			return fmt.Errorf("lock service: %w", err)
		}

		deps, err := tx.CountDependencies(ctx, id)
		if err != nil {
			return fmt.Errorf("count dependencies: %w", err)
		}
		if deps.Any() {
			return httperr.ErrBusiness(domain.CodeServiceInUse)
		}

		name = svc.Name
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     "service_deleted",
		Entity:     "service",
		EntityID:   fmt.Sprint(id),
		Metadata:   map[string]string{"name": name},
	})

	uc.log.Warn().
		Str("actor", actor.Email).
		Uint("service_id", id).
		Msg("service deleted")

	return nil
}
