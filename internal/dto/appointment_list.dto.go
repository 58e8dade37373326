package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID           uuid.UUID `json:"id"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	Modality     string    `json:"modality"`
	PriceInCents int       `json:"appointment_price_in_cents"`
	PatientName  string    `json:"patient_name"`
	DoctorName   string    `json:"doctor_name"`
}
