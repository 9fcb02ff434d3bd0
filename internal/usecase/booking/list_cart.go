package booking

import (
	"context"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/models"
)

type ListCart struct {
	repo domain.Repository
}

func NewListCart(repo domain.Repository) *ListCart {
	return &ListCart{repo: repo}
}

func (uc *ListCart) Execute(ctx context.Context, actor *identity.AuthenticatedUser) ([]models.CartItem, error) {
	if err := requireActive(actor); err != nil {
		return nil, err
	}
	return uc.repo.ListCartItems(ctx, actor.ID)
}
