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

type CancelAppointment struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		loc:   loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	userID *uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClinic(ctx, appointmentID, clinicID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.loc)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Cancelamento libera o slot, a visão de disponibilidade muda
	uc.cache.Invalidate(ctx, ap.DoctorID, cacheDay(ap.Date, uc.loc))

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ClinicID: clinicID,
			UserID:   userID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
