package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JPedroSoeiro/doutor-agenda/internal/config"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
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
		&models.Clinic{},
		&models.User{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.BlockedDate{},
		&models.AdHocAvailableDate{},
		&models.BlockedTimeSlot{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial: no máximo um agendamento não cancelado por
	// (médico, timestamp). É o mecanismo final contra double-booking;
	// as checagens de leitura no usecase só antecipam o erro.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_doctor_slot
        ON appointments (doctor_id, date)
        WHERE status <> 'cancelled'
    `)

	return db
}
