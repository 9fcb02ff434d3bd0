package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type CreateServiceInput struct {
	Actor *identity.AuthenticatedUser

	Name        string
	Description string
	Price       float64
	Duration    int
}

// CreateService adds an active service to the catalog. Names are unique.
type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewCreateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *CreateService {
	return &CreateService{
		repo:  repo,
		audit: audit,
		log:   log.With().Str("component", "catalog").Logger(),
	}
}

func (uc *CreateService) Execute(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	svc, err := uc.create(ctx, in)
	return svc, count("create", err)
}

func (uc *CreateService) create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if err := requireActive(in.Actor); err != nil {
		return nil, err
	}

	svc := &models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Active:      true,
	}
	domain.Normalize(svc)
	if err := domain.Validate(*svc); err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, svc.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("check service name: %w", err)
	}
	if taken {
		return nil, httperr.ErrBusiness(domain.CodeDuplicateService)
	}

	if err := uc.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:    in.Actor.ID,
		ActorEmail: in.Actor.Email,
		Action:     "service_created",
		Entity:     "service",
		EntityID:   fmt.Sprint(svc.ID),
		Metadata:   map[string]string{"name": svc.Name},
	})

	uc.log.Info().
		Str("actor", in.Actor.Email).
		Uint("service_id", svc.ID).
		Msg("service created")

	return svc, nil
}
