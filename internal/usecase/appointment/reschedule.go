package appointment

import (
	"context"
	"time"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/notify"
	"github.com/corteturno/corteturno/internal/schedule"
)

type RescheduleInput struct {
	AppointmentID uint

	// TenantID nil en el flujo público (el cliente reagenda desde su
	// enlace, sin sesión).
	TenantID *uint

	NewDate string
	NewTime string
}

type RescheduleAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		notify: dispatcher,
	}
}

// Execute reagenda actualizando fecha/hora en la MISMA fila (nunca
// borrar y recrear): la unicidad sobre el nuevo slot se re-verifica
// dentro de la transacción excluyendo la propia cita.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", in.NewDate); err != nil {
		return nil, httperr.ErrBusiness("validation_error")
	}
	if _, err := schedule.ParseHHMM(in.NewTime); err != nil {
		return nil, httperr.ErrBusiness("validation_error")
	}

	// Cargar primero para validar pertenencia y armar la notificación.
	var current *models.Appointment
	var err error
	if in.TenantID != nil {
		current, err = uc.repo.GetForTenant(ctx, in.AppointmentID, *in.TenantID)
	} else {
		current, err = uc.repo.GetScheduled(ctx, in.AppointmentID)
	}
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.Reschedule(ctx, current.ID, in.NewDate, in.NewTime)
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.NewEvent(
		notify.TypeRescheduled,
		current.TenantID,
		current.BranchID,
		current.ChairID,
		notify.EventData{
			ClientName:  current.ClientName,
			ClientPhone: current.ClientPhone,
			ServiceName: current.Service.Name,
			ChairNumber: current.Chair.ChairNumber,
			BranchName:  current.Branch.Name,
			Date:        in.NewDate,
			Time:        in.NewTime,
			Action:      "reagendada",
		},
	))

	return ap, nil
}
