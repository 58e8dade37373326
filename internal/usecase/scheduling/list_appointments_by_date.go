package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/dto"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := timezone.StartOfDay(date, uc.loc)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, clinicID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			Status:       ap.Status,
			Modality:     ap.Modality,
			PriceInCents: ap.AppointmentPriceInCents,
			PatientName:  ap.Patient.Name,
			DoctorName:   ap.Doctor.Name,
		})
	}

	return out, nil
}
