package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Remove exatamente um slot (HH:MM) de uma data, independente do dia ser
// útil ou não.
type BlockedTimeSlot struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID `gorm:"type:uuid;index;not null" json:"clinic_id"`
	Clinic   Clinic    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clinic"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocked_slots_doctor_date_time" json:"doctor_id"`
	Doctor   Doctor    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	Date   time.Time `gorm:"not null;uniqueIndex:idx_blocked_slots_doctor_date_time" json:"date"`
	Time   string    `gorm:"size:5;not null;uniqueIndex:idx_blocked_slots_doctor_date_time" json:"time"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BlockedTimeSlot) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
