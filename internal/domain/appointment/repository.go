package appointment

import (
	"context"

	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/schedule"
)

// DayStats son los contadores del tablero diario.
type DayStats struct {
	Total     int64   `json:"todayAppts"`
	Completed int64   `json:"completed"`
	NoShows   int64   `json:"noShows"`
	Revenue   float64 `json:"revenue"`
}

type Repository interface {
	// -------- Branch / Chair / Service --------
	GetBranch(
		ctx context.Context,
		branchID uint,
	) (*models.Branch, error)

	GetBranchForTenant(
		ctx context.Context,
		branchID uint,
		tenantID uint,
	) (*models.Branch, error)

	GetChair(
		ctx context.Context,
		chairID uint,
		branchID uint,
	) (*models.Chair, error)

	GetService(
		ctx context.Context,
		serviceID uint,
		tenantID uint,
	) (*models.Service, error)

	// -------- Ledger (lectura) --------
	ListScheduledSlots(
		ctx context.Context,
		chairID uint,
		date string,
	) ([]schedule.Booking, error)

	ListForDay(
		ctx context.Context,
		tenantID uint,
		date string,
		branchID *uint,
	) ([]models.Appointment, error)

	ListByClientPhone(
		ctx context.Context,
		phone string,
		branchID uint,
		chairID uint,
	) ([]models.Appointment, error)

	ListScheduledUpTo(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// -------- Ledger (escritura) --------

	// CreateScheduled es el guard de reserva: verifica que el slot
	// exacto (silla, fecha, hora) siga libre e inserta la cita en una
	// sola transacción. Devuelve slot_taken si pierde la carrera.
	CreateScheduled(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Reschedule re-verifica unicidad sobre el NUEVO slot excluyendo
	// la propia cita y actualiza fecha/hora en la misma fila.
	Reschedule(
		ctx context.Context,
		appointmentID uint,
		newDate string,
		newTime string,
	) (*models.Appointment, error)

	GetScheduled(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetForTenant(
		ctx context.Context,
		appointmentID uint,
		tenantID uint,
	) (*models.Appointment, error)

	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Métricas del día --------
	GetDayStats(
		ctx context.Context,
		tenantID uint,
		branchID uint,
		date string,
	) (*DayStats, error)
}
