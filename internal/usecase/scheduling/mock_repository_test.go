package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
)

var errNotFound = errors.New("record not found")

// mockRepository guarda o estado de calendário em mapas chaveados por
// "YYYY-MM-DD" e registra as escritas para inspeção nos testes.
type mockRepository struct {
	doctor *models.Doctor

	blockedDates map[string]bool
	adHocDates   map[string]bool
	blockedTimes map[string][]string
	bookedTimes  map[string][]string
	activeAt     map[string]bool

	existingPatient *models.Patient
	patientErr      error

	createAppointmentErr error
	createdAppointments  []*models.Appointment

	appointments        map[uuid.UUID]*models.Appointment
	updatedAppointments []*models.Appointment
	periodAppointments  []models.Appointment

	addedBlockedDates   []*models.BlockedDate
	removedBlockedDates []string
	addedAdHocDates     []*models.AdHocAvailableDate
	removedAdHocDates   []string
	addedBlockedSlots   []*models.BlockedTimeSlot
	removedBlockedSlots []string

	txCalls int
}

var _ domain.Repository = (*mockRepository)(nil)

func newMockRepository() *mockRepository {
	return &mockRepository{
		blockedDates: map[string]bool{},
		adHocDates:   map[string]bool{},
		blockedTimes: map[string][]string{},
		bookedTimes:  map[string][]string{},
		activeAt:     map[string]bool{},
		appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

func (m *mockRepository) GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	if m.doctor == nil || m.doctor.ID != id {
		return nil, errNotFound
	}
	return m.doctor, nil
}

func (m *mockRepository) GetDoctorForClinic(ctx context.Context, doctorID, clinicID uuid.UUID) (*models.Doctor, error) {
	if m.doctor == nil || m.doctor.ID != doctorID || m.doctor.ClinicID != clinicID {
		return nil, errNotFound
	}
	return m.doctor, nil
}

func (m *mockRepository) HasBlockedDate(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time) (bool, error) {
	return m.blockedDates[dayKey(day)], nil
}

func (m *mockRepository) HasAdHocAvailableDate(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time) (bool, error) {
	return m.adHocDates[dayKey(day)], nil
}

func (m *mockRepository) ListBlockedSlotTimes(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time) ([]string, error) {
	return m.blockedTimes[dayKey(day)], nil
}

func (m *mockRepository) ListBookedSlotTimes(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time) ([]string, error) {
	return m.bookedTimes[dayKey(day)], nil
}

func (m *mockRepository) HasActiveAppointmentAt(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
	return m.activeAt[at.Format(time.RFC3339)], nil
}

func (m *mockRepository) FindOrCreatePatient(ctx context.Context, clinicID uuid.UUID, in domain.PatientInput) (*models.Patient, error) {
	if m.patientErr != nil {
		return nil, m.patientErr
	}
	if m.existingPatient != nil {
		return m.existingPatient, nil
	}
	return &models.Patient{
		ID:          uuid.New(),
		ClinicID:    clinicID,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Sex:         in.Sex,
	}, nil
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.createAppointmentErr != nil {
		return m.createAppointmentErr
	}
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	m.createdAppointments = append(m.createdAppointments, ap)
	return nil
}

func (m *mockRepository) GetAppointmentForClinic(ctx context.Context, appointmentID, clinicID uuid.UUID) (*models.Appointment, error) {
	ap, ok := m.appointments[appointmentID]
	if !ok || ap.ClinicID != clinicID {
		return nil, errNotFound
	}
	return ap, nil
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	m.updatedAppointments = append(m.updatedAppointments, ap)
	return nil
}

func (m *mockRepository) ListAppointmentsForPeriod(ctx context.Context, clinicID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	return m.periodAppointments, nil
}

func (m *mockRepository) AddBlockedDate(ctx context.Context, row *models.BlockedDate) error {
	m.addedBlockedDates = append(m.addedBlockedDates, row)
	return nil
}

func (m *mockRepository) RemoveBlockedDate(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time) error {
	m.removedBlockedDates = append(m.removedBlockedDates, dayKey(day))
	return nil
}

func (m *mockRepository) AddAdHocAvailableDate(ctx context.Context, row *models.AdHocAvailableDate) error {
	m.addedAdHocDates = append(m.addedAdHocDates, row)
	return nil
}

func (m *mockRepository) RemoveAdHocAvailableDate(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time) error {
	m.removedAdHocDates = append(m.removedAdHocDates, dayKey(day))
	return nil
}

func (m *mockRepository) AddBlockedTimeSlot(ctx context.Context, row *models.BlockedTimeSlot) error {
	m.addedBlockedSlots = append(m.addedBlockedSlots, row)
	return nil
}

func (m *mockRepository) RemoveBlockedTimeSlot(ctx context.Context, doctorID, clinicID uuid.UUID, day time.Time, slotTime string) error {
	m.removedBlockedSlots = append(m.removedBlockedSlots, dayKey(day)+" "+slotTime)
	return nil
}

func (m *mockRepository) InTransaction(ctx context.Context, fn func(domain.Repository) error) error {
	m.txCalls++
	return fn(m)
}
