package catalog

import (
	"strings"

	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

// Normalize trims the free-text fields in place.
func Normalize(s *models.Service) {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
}

// Validate checks a service before it is written. The reason names the first
// field that failed.
func Validate(s models.Service) error {
	switch {
	case s.Name == "":
		return httperr.ErrBusinessReason(CodeInvalidService, "name_required")
	case s.Description == "":
		return httperr.ErrBusinessReason(CodeInvalidService, "description_required")
	case s.Price <= 0:
		return httperr.ErrBusinessReason(CodeInvalidService, "price_not_positive")
	case s.Duration <= 0:
		return httperr.ErrBusinessReason(CodeInvalidService, "duration_not_positive")
	}
	return nil
}
