package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/corteturno/corteturno/internal/domain/appointment"
	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/schedule"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Branch / Chair / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBranch(
	ctx context.Context,
	branchID uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Preload("Chairs").
		First(&branch, branchID).Error; err != nil {
		return nil, httperr.ErrBusiness("branch_not_found")
	}
	return &branch, nil
}

func (r *AppointmentGormRepository) GetBranchForTenant(
	ctx context.Context,
	branchID uint,
	tenantID uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Preload("Chairs").
		Where("id = ? AND tenant_id = ?", branchID, tenantID).
		First(&branch).Error; err != nil {
		return nil, httperr.ErrBusiness("branch_not_found")
	}
	return &branch, nil
}

func (r *AppointmentGormRepository) GetChair(
	ctx context.Context,
	chairID uint,
	branchID uint,
) (*models.Chair, error) {

	var chair models.Chair
	if err := r.db.WithContext(ctx).
		Where("id = ? AND branch_id = ?", chairID, branchID).
		First(&chair).Error; err != nil {
		return nil, httperr.ErrBusiness("chair_not_found")
	}
	return &chair, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
	tenantID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		First(&service).Error; err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &service, nil
}

// --------------------------------------------------
// Ledger (lectura)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListScheduledSlots(
	ctx context.Context,
	chairID uint,
	date string,
) ([]schedule.Booking, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"chair_id = ? AND date = ? AND status = ?",
			chairID, date, string(domain.StatusScheduled),
		).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.Booking, 0, len(aps))
	for _, ap := range aps {
		out = append(out, schedule.Booking{
			Time:        ap.Time,
			DurationMin: ap.Service.DurationMin,
		})
	}
	return out, nil
}

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	tenantID uint,
	date string,
	branchID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Chair").
		Preload("Branch").
		Where("tenant_id = ?", tenantID)

	if date != "" {
		q = q.Where("date = ?", date)
	}
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var aps []models.Appointment
	if err := q.
		Order("date DESC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByClientPhone(
	ctx context.Context,
	phone string,
	branchID uint,
	chairID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"client_phone = ? AND branch_id = ? AND chair_id = ? AND status = ?",
			phone, branchID, chairID, string(domain.StatusScheduled),
		).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListScheduledUpTo(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("status = ? AND date <= ?", string(domain.StatusScheduled), date).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Ledger (escritura)
// --------------------------------------------------

// CreateScheduled verifica e inserta dentro de una transacción. El
// chequeo es por coincidencia exacta de (silla, fecha, hora): el guard
// confía en que el cliente eligió una hora producida por el generador,
// que ya excluye solapamientos; acá solo protege contra dos clientes
// reclamando el MISMO slot a la vez. El índice único parcial cubre
// cualquier hueco entre el chequeo y el insert.
func (r *AppointmentGormRepository) CreateScheduled(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"chair_id = ? AND date = ? AND time = ? AND status = ?",
				ap.ChairID, ap.Date, ap.Time, string(domain.StatusScheduled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		ap.Status = string(domain.StatusScheduled)
		return tx.Create(ap).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *AppointmentGormRepository) Reschedule(
	ctx context.Context,
	appointmentID uint,
	newDate string,
	newTime string,
) (*models.Appointment, error) {

	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("Service").
			Where("id = ? AND status = ?", appointmentID, string(domain.StatusScheduled)).
			First(&ap).Error; err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"chair_id = ? AND date = ? AND time = ? AND status = ? AND id <> ?",
				ap.ChairID, newDate, newTime, string(domain.StatusScheduled), ap.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		ap.Date = newDate
		ap.Time = newTime
		return tx.Model(&ap).
			Updates(map[string]any{"date": newDate, "time": newTime}).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, httperr.ErrBusiness("slot_taken")
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetScheduled(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Chair").
		Preload("Branch").
		Where("id = ? AND status = ?", appointmentID, string(domain.StatusScheduled)).
		First(&ap).Error; err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetForTenant(
	ctx context.Context,
	appointmentID uint,
	tenantID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Chair").
		Preload("Branch").
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		First(&ap).Error; err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Update("status", ap.Status).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	appointmentID uint,
) error {
	res := r.db.WithContext(ctx).
		Delete(&models.Appointment{}, appointmentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Métricas del día
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDayStats(
	ctx context.Context,
	tenantID uint,
	branchID uint,
	date string,
) (*domain.DayStats, error) {

	stats := &domain.DayStats{}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("tenant_id = ? AND branch_id = ? AND date = ?", tenantID, branchID, date)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("status = ?", string(domain.StatusCompleted)).
		Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("status = ?", string(domain.StatusNoShow)).
		Count(&stats.NoShows).Error; err != nil {
		return nil, err
	}

	var revenue *float64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("SUM(services.price)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where(
			"appointments.tenant_id = ? AND appointments.branch_id = ? AND appointments.date = ? AND appointments.status = ?",
			tenantID, branchID, date, string(domain.StatusCompleted),
		).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.Revenue = *revenue
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
