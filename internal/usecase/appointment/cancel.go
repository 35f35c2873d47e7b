package appointment

import (
	"context"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/notify"
)

type CancelAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		notify: dispatcher,
	}
}

// Execute elimina la fila, liberando el slot para las siguientes
// consultas de disponibilidad. El flujo público solo puede cancelar
// citas aún agendadas; el staff puede borrar cualquier cita suya.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	tenantID *uint,
) error {

	var ap *models.Appointment
	var err error
	if tenantID != nil {
		ap, err = uc.repo.GetForTenant(ctx, appointmentID, *tenantID)
	} else {
		ap, err = uc.repo.GetScheduled(ctx, appointmentID)
	}
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return err
	}

	uc.notify.Dispatch(notify.NewEvent(
		notify.TypeCancelled,
		ap.TenantID,
		ap.BranchID,
		ap.ChairID,
		notify.EventData{
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			ServiceName: ap.Service.Name,
			ChairNumber: ap.Chair.ChairNumber,
			BranchName:  ap.Branch.Name,
			Date:        ap.Date,
			Time:        ap.Time,
			Action:      "cancelada",
		},
	))

	return nil
}
