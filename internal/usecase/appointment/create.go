package appointment

import (
	"context"
	"time"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/metrics"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/notify"
	"github.com/corteturno/corteturno/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// TenantID nil => reserva pública: el tenant se resuelve desde la
	// fila de la sucursal (el enlace público no tiene sesión).
	TenantID *uint

	BranchID  uint
	ChairID   uint
	ServiceID uint

	ClientName  string
	ClientPhone string

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE (booking guard)
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		notify: dispatcher,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	// Referencias: sucursal (con o sin scope de tenant), silla y servicio.
	var branch *models.Branch
	var err error
	if in.TenantID != nil {
		branch, err = uc.repo.GetBranchForTenant(ctx, in.BranchID, *in.TenantID)
	} else {
		branch, err = uc.repo.GetBranch(ctx, in.BranchID)
	}
	if err != nil {
		return nil, err
	}

	chair, err := uc.repo.GetChair(ctx, in.ChairID, branch.ID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID, branch.TenantID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		TenantID:    branch.TenantID,
		BranchID:    branch.ID,
		ChairID:     chair.ID,
		ServiceID:   service.ID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Date:        in.Date,
		Time:        in.Time,
	}

	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}
	ap.Service = *service

	source := "admin"
	eventType := notify.TypeAdminBooking
	action := "creada"
	if in.TenantID == nil {
		source = "public"
		eventType = notify.TypePublicBooking
		action = ""
	}
	metrics.BookingsCreated.WithLabelValues(source).Inc()

	uc.notify.Dispatch(notify.NewEvent(
		eventType,
		branch.TenantID,
		branch.ID,
		chair.ID,
		notify.EventData{
			ClientName:  in.ClientName,
			ClientPhone: in.ClientPhone,
			ServiceName: service.Name,
			ChairNumber: chair.ChairNumber,
			BranchName:  branch.Name,
			Date:        in.Date,
			Time:        in.Time,
			Action:      action,
		},
	))

	return ap, nil
}

func validateCreateInput(in CreateAppointmentInput) error {
	if in.BranchID == 0 || in.ChairID == 0 || in.ServiceID == 0 {
		return httperr.ErrBusiness("validation_error")
	}
	if in.ClientName == "" || in.ClientPhone == "" {
		return httperr.ErrBusiness("validation_error")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness("validation_error")
	}
	if _, err := schedule.ParseHHMM(in.Time); err != nil {
		return httperr.ErrBusiness("validation_error")
	}
	return nil
}
