package catalog

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pet-shop/internal/domain/catalog"
	"github.com/BruksfildServices01/pet-shop/internal/timezone"
)

// Overview feeds the back-office dashboard. "Today" is the shop's calendar
// day.
type Overview struct {
	repo     domain.Repository
	timezone string
	now      func() time.Time
}

func NewOverview(repo domain.Repository, tz string) *Overview {
	return &Overview{repo: repo, timezone: tz, now: time.Now}
}

func (uc *Overview) Execute(ctx context.Context) (*domain.Overview, error) {
	return uc.repo.Overview(ctx, timezone.Today(uc.now(), uc.timezone))
}
