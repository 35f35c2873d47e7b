package appointment

import (
	"context"
	"time"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/metrics"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/schedule"
	"github.com/corteturno/corteturno/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	// TenantID nil en el flujo público: la sucursal se busca sin
	// scope de tenant.
	TenantID *uint

	BranchID  uint
	ChairID   uint
	ServiceID uint
	Date      time.Time

	// Public activa el piso de anticipación del mismo día.
	Public bool

	// Now se inyecta en tests; nil usa el reloj del servidor.
	Now *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.Slot, error) {

	metrics.AvailabilityRequests.Inc()

	branch, err := uc.getBranch(ctx, in)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetChair(ctx, in.ChairID, branch.ID); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID, branch.TenantID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListScheduledSlots(
		ctx,
		in.ChairID,
		in.Date.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	opts := schedule.Options{}
	if in.Public {
		now := timezone.Now()
		if in.Now != nil {
			now = *in.Now
		}
		opts.Now = &now
	}

	return schedule.Generate(
		schedule.Config{
			WorkDays:   branch.WorkDays,
			StartTime:  branch.StartTime,
			EndTime:    branch.EndTime,
			LunchStart: branch.LunchStart,
			LunchEnd:   branch.LunchEnd,
		},
		service.DurationMin,
		in.Date,
		bookings,
		opts,
	)
}

func (uc *GetAvailability) getBranch(ctx context.Context, in AvailabilityInput) (*models.Branch, error) {
	if in.TenantID != nil {
		return uc.repo.GetBranchForTenant(ctx, in.BranchID, *in.TenantID)
	}
	return uc.repo.GetBranch(ctx, in.BranchID)
}
