package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Criado de forma preguiçosa no primeiro agendamento e reutilizado depois,
// chaveado por (clinic_id, email).
type Patient struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_patients_clinic_email" json:"clinic_id"`
	Clinic   Clinic    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clinic"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;not null;uniqueIndex:idx_patients_clinic_email" json:"email"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`
	Sex         string `gorm:"size:10;not null" json:"sex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
