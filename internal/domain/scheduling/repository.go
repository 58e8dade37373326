package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
)

// Todas as leituras de calendário recebem day já normalizado para o início
// do dia no fuso da aplicação.
type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Doctor, error)

	GetDoctorForClinic(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
	) (*models.Doctor, error)

	// -------- Calendar state --------
	HasBlockedDate(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
	) (bool, error)

	HasAdHocAvailableDate(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
	) (bool, error)

	ListBlockedSlotTimes(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
	) ([]string, error)

	ListBookedSlotTimes(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
	) ([]string, error)

	// -------- Booking --------
	HasActiveAppointmentAt(
		ctx context.Context,
		doctorID uuid.UUID,
		at time.Time,
	) (bool, error)

	FindOrCreatePatient(
		ctx context.Context,
		clinicID uuid.UUID,
		in PatientInput,
	) (*models.Patient, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / listing) --------
	GetAppointmentForClinic(
		ctx context.Context,
		appointmentID uuid.UUID,
		clinicID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		clinicID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Admin toggles --------
	AddBlockedDate(
		ctx context.Context,
		row *models.BlockedDate,
	) error

	RemoveBlockedDate(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
	) error

	AddAdHocAvailableDate(
		ctx context.Context,
		row *models.AdHocAvailableDate,
	) error

	RemoveAdHocAvailableDate(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
	) error

	AddBlockedTimeSlot(
		ctx context.Context,
		row *models.BlockedTimeSlot,
	) error

	RemoveBlockedTimeSlot(
		ctx context.Context,
		doctorID uuid.UUID,
		clinicID uuid.UUID,
		day time.Time,
		slotTime string,
	) error

	// -------- Transaction --------
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
