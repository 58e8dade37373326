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

type ToggleBlockedDate struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewToggleBlockedDate(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *ToggleBlockedDate {
	return &ToggleBlockedDate{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		loc:   loc,
	}
}

// Liga/desliga o bloqueio de dia inteiro. Inserção duplicada e remoção de
// linha inexistente são no-ops bem-sucedidos.
func (uc *ToggleBlockedDate) Execute(
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

	if in.DesiredState {
		err = uc.repo.AddBlockedDate(ctx, &models.BlockedDate{
			ClinicID: in.ClinicID,
			DoctorID: doctor.ID,
			Date:     day,
			Reason:   in.Reason,
		})
	} else {
		err = uc.repo.RemoveBlockedDate(ctx, doctor.ID, in.ClinicID, day)
	}
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, doctor.ID, cacheDay(day, uc.loc))

	if uc.audit != nil {
		action := "date_blocked"
		if !in.DesiredState {
			action = "date_unblocked"
		}
		uc.audit.Dispatch(audit.Event{
			ClinicID: in.ClinicID,
			UserID:   actingUserID,
			Action:   action,
			Entity:   "blocked_date",
			Metadata: map[string]any{"doctor_id": doctor.ID, "date": in.Date},
		})
	}

	return nil
}
