package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Date é o timestamp exato do slot (dia + horário combinados no fuso da
// aplicação). A unicidade por (doctor_id, date) entre agendamentos não
// cancelados é garantida por índice parcial criado em internal/db.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClinicID uuid.UUID `gorm:"type:uuid;index;not null" json:"clinic_id"`
	Clinic   Clinic    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clinic"`

	DoctorID uuid.UUID `gorm:"type:uuid;index;not null" json:"doctor_id"`
	Doctor   Doctor    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	PatientID uuid.UUID `gorm:"type:uuid;index;not null" json:"patient_id"`
	Patient   Patient   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	Date time.Time `gorm:"not null" json:"date"`

	// Snapshot do preço do médico no momento do agendamento
	AppointmentPriceInCents int `gorm:"not null" json:"appointment_price_in_cents"`

	Status   string `gorm:"size:20;default:'scheduled'" json:"status"`
	Modality string `gorm:"size:20;not null" json:"modality"`
	Notes    string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
