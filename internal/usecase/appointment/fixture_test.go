package appointment

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	infraRepo "github.com/corteturno/corteturno/internal/infra/repository"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/notify"
)

type fixture struct {
	db         *gorm.DB
	repo       *infraRepo.AppointmentGormRepository
	store      *notify.MemoryStore
	dispatcher *notify.Dispatcher

	tenant  models.Tenant
	branch  models.Branch
	chair   models.Chair
	service models.Service
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Branch{},
		&models.Chair{},
		&models.Service{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_chair_slot
        ON appointments (chair_id, date, time)
        WHERE status = 'scheduled'
    `).Error; err != nil {
		t.Fatalf("create index: %v", err)
	}

	f := &fixture{
		db:    db,
		repo:  infraRepo.NewAppointmentGormRepository(db),
		store: notify.NewMemoryStore(time.Minute),
	}
	f.dispatcher = notify.NewDispatcher(f.store, zap.NewNop())
	f.dispatcher.Start()

	f.tenant = models.Tenant{ShopName: "Barbería El Faro"}
	if err := db.Create(&f.tenant).Error; err != nil {
		t.Fatalf("seed tenant: %v", err)
	}

	f.branch = models.Branch{
		TenantID:   f.tenant.ID,
		Name:       "Centro",
		WorkDays:   []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"},
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "14:00",
		LunchEnd:   "15:00",
	}
	if err := db.Create(&f.branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	f.chair = models.Chair{BranchID: f.branch.ID, ChairNumber: 1}
	if err := db.Create(&f.chair).Error; err != nil {
		t.Fatalf("seed chair: %v", err)
	}

	f.service = models.Service{
		TenantID:    f.tenant.ID,
		Name:        "Corte clásico",
		Price:       150,
		DurationMin: 30,
	}
	if err := db.Create(&f.service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}

	return f
}

// pendingEvents drena el dispatcher y devuelve lo acumulado del tenant.
func (f *fixture) pendingEvents(t *testing.T, tenantID uint) []notify.Event {
	t.Helper()
	f.dispatcher.Stop()

	events, err := f.store.Pending(context.Background(), tenantID)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	return events
}

func (f *fixture) createInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		TenantID:    &f.tenant.ID,
		BranchID:    f.branch.ID,
		ChairID:     f.chair.ID,
		ServiceID:   f.service.ID,
		ClientName:  "Juan Pérez",
		ClientPhone: "5512345678",
		Date:        "2026-01-05",
		Time:        "10:00",
	}
}
