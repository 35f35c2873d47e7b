package appointment

import (
	"context"
	"time"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/models"
)

type ListOverdue struct {
	repo domain.Repository
}

func NewListOverdue(repo domain.Repository) *ListOverdue {
	return &ListOverdue{repo: repo}
}

// Execute devuelve las citas aún agendadas cuyo fin calculado +
// margen ya pasó: candidatas a resolución manual (completada o
// no-show). El filtro fino se hace en memoria porque el corte depende
// de fecha + hora + duración del servicio.
func (uc *ListOverdue) Execute(
	ctx context.Context,
	now time.Time,
) ([]models.Appointment, error) {

	candidates, err := uc.repo.ListScheduledUpTo(ctx, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	overdue := make([]models.Appointment, 0)
	for _, ap := range candidates {
		if domain.IsOverdue(&ap, now) {
			overdue = append(overdue, ap)
		}
	}
	return overdue, nil
}
