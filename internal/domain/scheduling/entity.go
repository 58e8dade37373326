package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Intervalo fixo entre slots de agendamento.
const SlotInterval = 30 * time.Minute

type AvailabilityInput struct {
	ClinicID uuid.UUID
	DoctorID uuid.UUID
	Date     time.Time
}

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DayAvailability struct {
	Date         string `json:"date"`
	DayAvailable bool   `json:"day_available"`
	Slots        []Slot `json:"slots"`
}

// Estado de calendário de um médico para uma única data, já com escopo de
// clínica aplicado. Conjuntos chaveados por "HH:MM".
type DayCalendar struct {
	DateBlocked  bool
	AdHoc        bool
	BlockedTimes map[string]bool
	BookedTimes  map[string]bool
}

type PatientInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Sex         string
}

type BookingInput struct {
	Patient  PatientInput
	DoctorID uuid.UUID
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Modality string
	Notes    string
}

type BookingResult struct {
	AppointmentID uuid.UUID
	PatientID     uuid.UUID
	DoctorName    string
}

type ToggleInput struct {
	DoctorID     uuid.UUID
	ClinicID     uuid.UUID
	Date         string // YYYY-MM-DD
	Time         string // HH:MM, apenas para bloqueio de slot individual
	DesiredState bool
	Reason       string
}
