package booking

import (
	"context"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/booking"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
)

type RemoveCartItem struct {
	repo domain.Repository
}

func NewRemoveCartItem(repo domain.Repository) *RemoveCartItem {
	return &RemoveCartItem{repo: repo}
}

// Execute deletes one of the caller's lines. Lines of other owners look
// exactly like missing ones.
func (uc *RemoveCartItem) Execute(ctx context.Context, actor *identity.AuthenticatedUser, id uint) error {
	if err := requireActive(actor); err != nil {
		return err
	}

	deleted, err := uc.repo.DeleteCartItem(ctx, actor.ID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness(domain.CodeCartItemNotFound)
	}
	return nil
}
