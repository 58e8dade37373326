package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Presença da linha = data agendável mesmo fora da janela semanal do médico.
// Um BlockedDate na mesma data prevalece sobre esta liberação.
type AdHocAvailableDate struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID `gorm:"type:uuid;index;not null" json:"clinic_id"`
	Clinic   Clinic    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clinic"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ad_hoc_dates_doctor_date" json:"doctor_id"`
	Doctor   Doctor    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	Date   time.Time `gorm:"not null;uniqueIndex:idx_ad_hoc_dates_doctor_date" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AdHocAvailableDate) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
