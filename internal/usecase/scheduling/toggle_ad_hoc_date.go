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

type ToggleAdHocDate struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewToggleAdHocDate(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *ToggleAdHocDate {
	return &ToggleAdHocDate{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		loc:   loc,
	}
}

// Liga/desliga a liberação excepcional de uma data fora da janela semanal.
// Um BlockedDate na mesma data continua prevalecendo na resolução.
func (uc *ToggleAdHocDate) Execute(
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
		err = uc.repo.AddAdHocAvailableDate(ctx, &models.AdHocAvailableDate{
			ClinicID: in.ClinicID,
			DoctorID: doctor.ID,
			Date:     day,
			Reason:   in.Reason,
		})
	} else {
		err = uc.repo.RemoveAdHocAvailableDate(ctx, doctor.ID, in.ClinicID, day)
	}
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, doctor.ID, cacheDay(day, uc.loc))

	if uc.audit != nil {
		action := "ad_hoc_date_added"
		if !in.DesiredState {
			action = "ad_hoc_date_removed"
		}
		uc.audit.Dispatch(audit.Event{
			ClinicID: in.ClinicID,
			UserID:   actingUserID,
			Action:   action,
			Entity:   "ad_hoc_available_date",
			Metadata: map[string]any{"doctor_id": doctor.ID, "date": in.Date},
		})
	}

	return nil
}
