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

type ToggleBlockedTimeSlot struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewToggleBlockedTimeSlot(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *ToggleBlockedTimeSlot {
	return &ToggleBlockedTimeSlot{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		loc:   loc,
	}
}

// Liga/desliga o bloqueio de um único slot (data + HH:MM) sem afetar o
// restante do dia nem o mesmo horário em outras datas.
func (uc *ToggleBlockedTimeSlot) Execute(
	ctx context.Context,
	actingClinicID uuid.UUID,
	actingUserID *uuid.UUID,
	in domain.ToggleInput,
) error {

	if actingClinicID != in.ClinicID {
		return httperr.ErrBusiness("unauthorized_clinic")
	}

	doctor, err := uc.repo.GetDoctorForClinic(ctx, in.DoctorID, in.ClinicID)
	if err != nil {
		return httperr.ErrBusiness("doctor_not_found")
	}

	day, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.DesiredState {
		err = uc.repo.AddBlockedTimeSlot(ctx, &models.BlockedTimeSlot{
			ClinicID: in.ClinicID,
			DoctorID: doctor.ID,
			Date:     day,
			Time:     in.Time,
			Reason:   in.Reason,
		})
	} else {
		err = uc.repo.RemoveBlockedTimeSlot(ctx, doctor.ID, in.ClinicID, day, in.Time)
	}
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, doctor.ID, cacheDay(day, uc.loc))

	if uc.audit != nil {
		action := "time_slot_blocked"
		if !in.DesiredState {
			action = "time_slot_unblocked"
		}
		uc.audit.Dispatch(audit.Event{
			ClinicID: in.ClinicID,
			UserID:   actingUserID,
			Action:   action,
			Entity:   "blocked_time_slot",
			Metadata: map[string]any{"doctor_id": doctor.ID, "date": in.Date, "time": in.Time},
		})
	}

	return nil
}
