package appointment

import (
	"context"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista el tablero del tenant, opcionalmente filtrado por
// fecha y sucursal.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	tenantID uint,
	date string,
	branchID *uint,
) ([]models.Appointment, error) {
	return uc.repo.ListForDay(ctx, tenantID, date, branchID)
}

type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo}
}

// Execute lista las citas agendadas de un cliente identificado por
// teléfono, dentro del enlace público (sucursal + silla).
func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	phone string,
	branchID uint,
	chairID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListByClientPhone(ctx, phone, branchID, chairID)
}
