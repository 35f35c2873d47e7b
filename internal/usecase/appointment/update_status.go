package appointment

import (
	"context"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/models"
)

type UpdateStatus struct {
	repo domain.Repository
}

func NewUpdateStatus(repo domain.Repository) *UpdateStatus {
	return &UpdateStatus{repo: repo}
}

// Execute marca una cita como completada o no-show (acción del staff).
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	ap, err := uc.repo.GetForTenant(ctx, appointmentID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := domain.SetStatus(ap, domain.Status(status)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
