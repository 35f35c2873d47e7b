package appointment

import (
	"context"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
)

type GetDayStats struct {
	repo domain.Repository
}

func NewGetDayStats(repo domain.Repository) *GetDayStats {
	return &GetDayStats{repo: repo}
}

func (uc *GetDayStats) Execute(
	ctx context.Context,
	tenantID uint,
	branchID uint,
	date string,
) (*domain.DayStats, error) {
	return uc.repo.GetDayStats(ctx, tenantID, branchID, date)
}
