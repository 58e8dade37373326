package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Janela semanal: AvailableFromWeekDay > AvailableToWeekDay significa que a
// janela atravessa a virada da semana (ex.: sexta a segunda).
type Doctor struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID `gorm:"type:uuid;index;not null" json:"clinic_id"`
	Clinic   Clinic    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clinic"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialty      string `gorm:"size:100;not null" json:"specialty"`
	AvatarImageURL string `gorm:"size:255" json:"avatar_image_url"`

	AvailableFromWeekDay int `gorm:"not null" json:"available_from_week_day"`
	AvailableToWeekDay   int `gorm:"not null" json:"available_to_week_day"`

	// HH:MM:SS, hora local da aplicação
	AvailableFromTime string `gorm:"size:8;not null" json:"available_from_time"`
	AvailableToTime   string `gorm:"size:8;not null" json:"available_to_time"`

	AppointmentPriceInCents int  `gorm:"not null" json:"appointment_price_in_cents"`
	IsActive                bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
