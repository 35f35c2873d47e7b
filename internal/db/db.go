package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/config"
	"github.com/corteturno/corteturno/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Branch{},
		&models.Chair{},
		&models.Service{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Respaldo contra double-booking: dos citas "scheduled" nunca pueden
	// compartir silla + fecha + hora, gane quien gane la transacción.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_chair_slot
        ON appointments (chair_id, date, time)
        WHERE status = 'scheduled'
    `)

	return db
}
