package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JPedroSoeiro/doutor-agenda/internal/audit"
	"github.com/JPedroSoeiro/doutor-agenda/internal/cache"
	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		loc:   loc,
		now:   func() time.Time { return timezone.NowIn(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Toda a sequência roda numa única transação: qualquer falha desfaz tudo,
// sem paciente órfão nem agendamento parcial. A ordem das checagens
// importa: elegibilidade do dia antes do conflito de reserva antes do
// insert, com o índice parcial (doctor_id, date) como barreira final
// contra duas transações que passaram pelas leituras ao mesmo tempo.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.BookingInput,
) (*domain.BookingResult, error) {

	if !domain.IsValidModality(in.Modality) {
		return nil, httperr.ErrBusiness("invalid_modality")
	}
	if !domain.IsValidSex(in.Patient.Sex) {
		return nil, httperr.ErrBusiness("invalid_sex")
	}

	at, err := timezone.CombineDateTime(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	var (
		result   domain.BookingResult
		clinicID uuid.UUID
	)

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1. Médico (define clínica e preço)
		// --------------------------------------------------
		doctor, err := tx.GetDoctorByID(ctx, in.DoctorID)
		if err != nil {
			return httperr.ErrBusiness("doctor_not_found")
		}
		if !doctor.IsActive {
			return httperr.ErrBusiness("inactive_doctor")
		}
		clinicID = doctor.ClinicID

		// --------------------------------------------------
		// 2. Slot estritamente no futuro
		// --------------------------------------------------
		if !at.After(uc.now()) {
			return httperr.ErrBusiness("slot_in_past")
		}

		// --------------------------------------------------
		// 3. Elegibilidade do dia: bloqueio > (janela semanal OU ad-hoc)
		// --------------------------------------------------
		day := timezone.StartOfDay(at, uc.loc)

		blocked, err := tx.HasBlockedDate(ctx, doctor.ID, doctor.ClinicID, day)
		if err != nil {
			return err
		}
		if blocked {
			return httperr.ErrBusiness("day_unavailable")
		}

		adHoc, err := tx.HasAdHocAvailableDate(ctx, doctor.ID, doctor.ClinicID, day)
		if err != nil {
			return err
		}
		if !domain.IsWorkingWeekday(doctor.AvailableFromWeekDay, doctor.AvailableToWeekDay, int(day.Weekday())) && !adHoc {
			return httperr.ErrBusiness("day_unavailable")
		}

		// --------------------------------------------------
		// 4. O horário precisa ser um slot válido e não bloqueado
		// --------------------------------------------------
		if !isCandidateSlot(doctor.AvailableFromTime, doctor.AvailableToTime, in.Time) {
			return httperr.ErrBusiness("slot_blocked")
		}

		blockedTimes, err := tx.ListBlockedSlotTimes(ctx, doctor.ID, doctor.ClinicID, day)
		if err != nil {
			return err
		}
		for _, t := range blockedTimes {
			if t == in.Time {
				return httperr.ErrBusiness("slot_blocked")
			}
		}

		// --------------------------------------------------
		// 5. Conflito de reserva
		// --------------------------------------------------
		taken, err := tx.HasActiveAppointmentAt(ctx, doctor.ID, at)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrBusiness("slot_already_booked")
		}

		// --------------------------------------------------
		// 6. Paciente (reuso por e-mail dentro da clínica)
		// --------------------------------------------------
		patient, err := tx.FindOrCreatePatient(ctx, doctor.ClinicID, in.Patient)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 7. Agendamento com snapshot de preço
		// --------------------------------------------------
		ap := &models.Appointment{
			ClinicID:                doctor.ClinicID,
			DoctorID:                doctor.ID,
			PatientID:               patient.ID,
			Date:                    at,
			AppointmentPriceInCents: doctor.AppointmentPriceInCents,
			Status:                  string(domain.InitialStatus()),
			Modality:                in.Modality,
			Notes:                   in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_already_booked")
			}
			return err
		}

		result = domain.BookingResult{
			AppointmentID: ap.ID,
			PatientID:     patient.ID,
			DoctorName:    doctor.Name,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.DoctorID, cacheDay(at, uc.loc))

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ClinicID: clinicID,
			Action:   "booking_created",
			Entity:   "appointment",
			EntityID: &result.AppointmentID,
			Metadata: map[string]any{
				"doctor_id": in.DoctorID,
				"date":      in.Date,
				"time":      in.Time,
			},
		})
	}

	return &result, nil
}

// cacheDay normaliza o dia para a forma canônica usada nas chaves do
// cache de disponibilidade. O parser de data aceita entradas como
// "2026-9-10", que invalidariam a chave errada se usadas cruas.
func cacheDay(t time.Time, loc *time.Location) string {
	return timezone.StartOfDay(t, loc).Format("2006-01-02")
}

func isCandidateSlot(fromTime, toTime, hm string) bool {
	for _, slot := range domain.GenerateTimeSlots(fromTime, toTime, domain.SlotInterval) {
		if slot == hm {
			return true
		}
	}
	return false
}
