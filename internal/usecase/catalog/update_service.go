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
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// UpdateServiceInput carries only the fields to change.
type UpdateServiceInput struct {
	Actor *identity.AuthenticatedUser
	ID    uint

	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	Active      *bool
}

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewUpdateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *UpdateService {
	return &UpdateService{
		repo:  repo,
		audit: audit,
		log:   log.With().Str("component", "catalog").Logger(),
	}
}

func (uc *UpdateService) Execute(ctx context.Context, in UpdateServiceInput) (*models.Service, error) {
	svc, err := uc.update(ctx, in)
	return svc, count("update", err)
}

func (uc *UpdateService) update(ctx context.Context, in UpdateServiceInput) (*models.Service, error) {
	if err := requireActive(in.Actor); err != nil {
		return nil, err
	}

	svc, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeServiceNotFound)
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Duration != nil {
		svc.Duration = *in.Duration
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}

	domain.Normalize(svc)
	if err := domain.Validate(*svc); err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, svc.Name, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("check service name: %w", err)
	}
	if taken {
		return nil, httperr.ErrBusiness(domain.CodeDuplicateService)
	}

	if err := uc.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:    in.Actor.ID,
		ActorEmail: in.Actor.Email,
		Action:     "service_updated",
		Entity:     "service",
		EntityID:   fmt.Sprint(svc.ID),
		Metadata:   map[string]any{"name": svc.Name, "active": svc.Active},
	})

	uc.log.Info().
		Str("actor", in.Actor.Email).
		Uint("service_id", svc.ID).
		Msg("service updated")

	return svc, nil
}
