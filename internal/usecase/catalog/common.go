package catalog

import (
	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/metrics"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	recentBookings  = 5
)

func requireActive(u *identity.AuthenticatedUser) error {
	if u == nil || u.ID == "" {
		return httperr.ErrBusiness(domain.CodeUnauthenticated)
	}
	if !u.IsActive {
		return httperr.ErrBusiness(domain.CodeAccountInactive)
	}
	return nil
}

// count records the outcome of a catalog write and passes err through.
func count(action string, err error) error {
	result := "ok"
	if err != nil {
		result = "error"
		if be, ok := httperr.AsBusiness(err); ok {
			result = be.Code
		}
	}
	metrics.CatalogChangesTotal.WithLabelValues(action, result).Inc()
	return err
}
