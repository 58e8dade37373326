package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
)

var bookingLoc = time.FixedZone("-03", -3*60*60)

// 2026-09-10 é uma quinta-feira, dentro da janela seg-sex dos testes.
func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:                      uuid.New(),
		ClinicID:                uuid.New(),
		Name:                    "Dra. Helena",
		Specialty:               "Cardiologia",
		AvailableFromWeekDay:    1,
		AvailableToWeekDay:      5,
		AvailableFromTime:       "08:00:00",
		AvailableToTime:         "12:00:00",
		AppointmentPriceInCents: 25000,
		IsActive:                true,
	}
}

func testBookingInput(doctorID uuid.UUID) domain.BookingInput {
	return domain.BookingInput{
		Patient: domain.PatientInput{
			Name:        "João Silva",
			Email:       "joao@exemplo.com.br",
			PhoneNumber: "+5585999990000",
			Sex:         "male",
		},
		DoctorID: doctorID,
		Date:     "2026-09-10",
		Time:     "09:00",
		Modality: "presencial",
	}
}

func newBookingUC(repo *mockRepository) *CreateBooking {
	uc := NewCreateBooking(repo, nil, nil, bookingLoc)
	uc.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, bookingLoc)
	}
	return uc
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newMockRepository()
	doctor := testDoctor()
	repo.doctor = doctor

	uc := newBookingUC(repo)
	result, err := uc.Execute(context.Background(), testBookingInput(doctor.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AppointmentID == uuid.Nil || result.PatientID == uuid.Nil {
		t.Fatal("expected appointment and patient ids in result")
	}
	if result.DoctorName != doctor.Name {
		t.Fatalf("doctor name = %q, want %q", result.DoctorName, doctor.Name)
	}
	if repo.txCalls != 1 {
		t.Fatalf("expected 1 transaction, got %d", repo.txCalls)
	}

	if len(repo.createdAppointments) != 1 {
		t.Fatalf("expected 1 created appointment, got %d", len(repo.createdAppointments))
	}
	ap := repo.createdAppointments[0]
	if ap.Status != "scheduled" {
		t.Fatalf("status = %q, want scheduled", ap.Status)
	}
	if ap.AppointmentPriceInCents != doctor.AppointmentPriceInCents {
		t.Fatal("expected price snapshot from doctor")
	}
	if ap.ClinicID != doctor.ClinicID {
		t.Fatal("appointment must inherit the doctor's clinic")
	}

	want := time.Date(2026, 9, 10, 9, 0, 0, 0, bookingLoc)
	if !ap.Date.Equal(want) {
		t.Fatalf("appointment at %v, want %v", ap.Date, want)
	}
}

func TestCreateBookingReusesExistingPatient(t *testing.T) {
	repo := newMockRepository()
	doctor := testDoctor()
	repo.doctor = doctor
	repo.existingPatient = &models.Patient{
		ID:       uuid.New(),
		ClinicID: doctor.ClinicID,
		Name:     "João Silva",
		Email:    "joao@exemplo.com.br",
	}

	uc := newBookingUC(repo)
	result, err := uc.Execute(context.Background(), testBookingInput(doctor.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PatientID != repo.existingPatient.ID {
		t.Fatal("expected booking to reuse the existing patient")
	}
}

func TestCreateBookingFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*mockRepository, *domain.BookingInput)
		wantCode string
	}{
		{
			name:     "modalidade inválida",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Modality = "telepatia" },
			wantCode: "invalid_modality",
		},
		{
			name:     "sexo inválido",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Patient.Sex = "x" },
			wantCode: "invalid_sex",
		},
		{
			name:     "data malformada",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Date = "10/09/2026" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "médico inexistente",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.DoctorID = uuid.New() },
			wantCode: "doctor_not_found",
		},
		{
			name:     "médico inativo",
			mutate:   func(m *mockRepository, _ *domain.BookingInput) { m.doctor.IsActive = false },
			wantCode: "inactive_doctor",
		},
		{
			name:     "slot no passado",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Date = "2026-08-31" },
			wantCode: "slot_in_past",
		},
		{
			name: "dia bloqueado",
			mutate: func(m *mockRepository, _ *domain.BookingInput) {
				m.blockedDates["2026-09-10"] = true
			},
			wantCode: "day_unavailable",
		},
		{
			name: "dia bloqueado vence ad-hoc",
			mutate: func(m *mockRepository, _ *domain.BookingInput) {
				m.blockedDates["2026-09-10"] = true
				m.adHocDates["2026-09-10"] = true
			},
			wantCode: "day_unavailable",
		},
		{
			// 2026-09-13 é domingo
			name:     "fora da janela semanal sem ad-hoc",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Date = "2026-09-13" },
			wantCode: "day_unavailable",
		},
		{
			name:     "horário fora da grade de slots",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Time = "09:15" },
			wantCode: "slot_blocked",
		},
		{
			name:     "horário fora da janela diária",
			mutate:   func(_ *mockRepository, in *domain.BookingInput) { in.Time = "14:00" },
			wantCode: "slot_blocked",
		},
		{
			name: "slot bloqueado pontualmente",
			mutate: func(m *mockRepository, _ *domain.BookingInput) {
				m.blockedTimes["2026-09-10"] = []string{"09:00"}
			},
			wantCode: "slot_blocked",
		},
		{
			name: "slot já reservado",
			mutate: func(m *mockRepository, _ *domain.BookingInput) {
				at := time.Date(2026, 9, 10, 9, 0, 0, 0, bookingLoc)
				m.activeAt[at.Format(time.RFC3339)] = true
			},
			wantCode: "slot_already_booked",
		},
		{
			name: "corrida perdida no índice único",
			mutate: func(m *mockRepository, _ *domain.BookingInput) {
				m.createAppointmentErr = &pgconn.PgError{Code: "23505"}
			},
			wantCode: "slot_already_booked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepository()
			repo.doctor = testDoctor()
			in := testBookingInput(repo.doctor.ID)
			tt.mutate(repo, &in)

			uc := newBookingUC(repo)
			result, err := uc.Execute(context.Background(), in)
			if result != nil {
				t.Fatal("expected nil result on failure")
			}
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
			if len(repo.createdAppointments) != 0 {
				t.Fatal("no appointment should be created on failure")
			}
		})
	}
}

func TestCacheDayNormalizesNonCanonicalDates(t *testing.T) {
	day, err := timezone.ParseDate("2026-9-10", bookingLoc)
	if err != nil {
		t.Fatalf("parser should accept unpadded dates: %v", err)
	}
	if got := cacheDay(day, bookingLoc); got != "2026-09-10" {
		t.Fatalf("cacheDay = %q, want 2026-09-10", got)
	}

	at := time.Date(2026, 9, 10, 9, 0, 0, 0, bookingLoc)
	if got := cacheDay(at, bookingLoc); got != "2026-09-10" {
		t.Fatalf("cacheDay from slot timestamp = %q, want 2026-09-10", got)
	}
}

func TestCreateBookingAcceptsUnpaddedDate(t *testing.T) {
	repo := newMockRepository()
	doctor := testDoctor()
	repo.doctor = doctor

	in := testBookingInput(doctor.ID)
	in.Date = "2026-9-10"

	uc := newBookingUC(repo)
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 9, 10, 9, 0, 0, 0, bookingLoc)
	if !repo.createdAppointments[0].Date.Equal(want) {
		t.Fatalf("appointment at %v, want %v", repo.createdAppointments[0].Date, want)
	}
}

func TestCreateBookingAdHocDayOutsideWeeklyWindow(t *testing.T) {
	repo := newMockRepository()
	doctor := testDoctor()
	repo.doctor = doctor
	repo.adHocDates["2026-09-13"] = true

	in := testBookingInput(doctor.ID)
	in.Date = "2026-09-13" // domingo

	uc := newBookingUC(repo)
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("ad-hoc release should allow booking: %v", err)
	}
}
