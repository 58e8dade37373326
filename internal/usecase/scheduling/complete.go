package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JPedroSoeiro/doutor-agenda/internal/audit"
	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
		loc:   loc,
	}
}

func (uc *CompleteAppointment) Execute(
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
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ClinicID: clinicID,
			UserID:   userID,
			Action:   "appointment_completed",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
