package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Presença da linha = dia inteiro indisponível para novos agendamentos.
// Não cancela agendamentos já criados.
type BlockedDate struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID `gorm:"type:uuid;index;not null" json:"clinic_id"`
	Clinic   Clinic    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clinic"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocked_dates_doctor_date" json:"doctor_id"`
	Doctor   Doctor    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	// Início do dia no fuso da aplicação
	Date   time.Time `gorm:"not null;uniqueIndex:idx_blocked_dates_doctor_date" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BlockedDate) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
