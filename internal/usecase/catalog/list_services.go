package catalog

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
)

type ServicePage struct {
	Services []domain.ServiceSummary
	Page     int
	Limit    int
	Total    int64
}

// ListServices is the back-office catalog view. Unlike the public listing it
// includes inactive services.
type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, search string, page, limit int) (*ServicePage, error) {
	f := domain.ListFilter{
		Search: strings.TrimSpace(search),
		Page:   page,
		Limit:  limit,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	services, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ServicePage{
		Services: services,
		Page:     f.Page,
		Limit:    f.Limit,
		Total:    total,
	}, nil
}
