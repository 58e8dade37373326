package scheduling

import (
	"context"
	"time"

	"github.com/JPedroSoeiro/doutor-agenda/internal/cache"
	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	loc   *time.Location
	now   func() time.Time
}

func NewGetAvailableSlots(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	loc *time.Location,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		cache: availCache,
		loc:   loc,
		now:   func() time.Time { return timezone.NowIn(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.DayAvailability, error) {

	doctor, err := uc.repo.GetDoctorForClinic(ctx, in.DoctorID, in.ClinicID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	day := timezone.StartOfDay(in.Date, uc.loc)
	dayStr := day.Format("2006-01-02")

	if cached, ok := uc.cache.Get(ctx, doctor.ID, dayStr); ok {
		return cached, nil
	}

	blocked, err := uc.repo.HasBlockedDate(ctx, doctor.ID, doctor.ClinicID, day)
	if err != nil {
		return nil, err
	}

	adHoc, err := uc.repo.HasAdHocAvailableDate(ctx, doctor.ID, doctor.ClinicID, day)
	if err != nil {
		return nil, err
	}

	cal := domain.DayCalendar{
		// Médico inativo não oferece novos horários
		DateBlocked:  blocked || !doctor.IsActive,
		AdHoc:        adHoc,
		BlockedTimes: map[string]bool{},
		BookedTimes:  map[string]bool{},
	}

	window := domain.WeeklyWindow{
		FromWeekDay: doctor.AvailableFromWeekDay,
		ToWeekDay:   doctor.AvailableToWeekDay,
		FromTime:    doctor.AvailableFromTime,
		ToTime:      doctor.AvailableToTime,
	}

	dayEligible := !cal.DateBlocked &&
		(domain.IsWorkingWeekday(window.FromWeekDay, window.ToWeekDay, int(day.Weekday())) || adHoc)

	// Bloqueio de dia ou dia não elegível curto-circuita: nenhum slot
	// individual pode salvar o dia, então os conjuntos nem são lidos.
	if dayEligible {
		blockedTimes, err := uc.repo.ListBlockedSlotTimes(ctx, doctor.ID, doctor.ClinicID, day)
		if err != nil {
			return nil, err
		}
		for _, t := range blockedTimes {
			cal.BlockedTimes[t] = true
		}

		bookedTimes, err := uc.repo.ListBookedSlotTimes(ctx, doctor.ID, doctor.ClinicID, day)
		if err != nil {
			return nil, err
		}
		for _, t := range bookedTimes {
			cal.BookedTimes[t] = true
		}
	}

	slots, dayAvailable := domain.ResolveDaySlots(window, day, uc.now(), cal, uc.loc)

	out := &domain.DayAvailability{
		Date:         dayStr,
		DayAvailable: dayAvailable,
		Slots:        slots,
	}

	uc.cache.Set(ctx, doctor.ID, dayStr, out)

	return out, nil
}
