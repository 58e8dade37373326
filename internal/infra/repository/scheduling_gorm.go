package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
)

type SchedulingGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewSchedulingGormRepository(db *gorm.DB, loc *time.Location) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db, loc: loc}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *SchedulingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *SchedulingGormRepository) GetDoctorForClinic(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).
		Where("id = ? AND clinic_id = ?", doctorID, clinicID).
		First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// --------------------------------------------------
// Calendar state
// --------------------------------------------------

func (r *SchedulingGormRepository) HasBlockedDate(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("doctor_id = ? AND clinic_id = ? AND date = ?", doctorID, clinicID, day).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SchedulingGormRepository) HasAdHocAvailableDate(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AdHocAvailableDate{}).
		Where("doctor_id = ? AND clinic_id = ? AND date = ?", doctorID, clinicID, day).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SchedulingGormRepository) ListBlockedSlotTimes(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedTimeSlot{}).
		Where("doctor_id = ? AND clinic_id = ? AND date = ?", doctorID, clinicID, day).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *SchedulingGormRepository) ListBookedSlotTimes(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
) ([]string, error) {

	start := day
	end := day.AddDate(0, 0, 1)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("date").
		Where(
			"doctor_id = ? AND clinic_id = ? AND status <> ? AND date >= ? AND date < ?",
			doctorID, clinicID, string(domain.StatusCancelled), start, end,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	times := make([]string, 0, len(aps))
	for _, ap := range aps {
		times = append(times, ap.Date.In(r.loc).Format("15:04"))
	}
	return times, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *SchedulingGormRepository) HasActiveAppointmentAt(
	ctx context.Context,
	doctorID uuid.UUID,
	at time.Time,
) (bool, error) {

	var ids []uuid.UUID
	if err := r.activeAppointmentsAt(ctx, doctorID, at).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Postgres não aceita FOR UPDATE sobre agregação, então a existência de
// conflito é testada pelos ids das linhas, que são travadas até o commit.
func (r *SchedulingGormRepository) activeAppointmentsAt(
	ctx context.Context,
	doctorID uuid.UUID,
	at time.Time,
) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"doctor_id = ? AND date = ? AND status <> ?",
			doctorID, at, string(domain.StatusCancelled),
		)
}

// FindOrCreatePatient tenta inserir primeiro e trata violação de unicidade
// de (clinic_id, email) relendo a linha existente, fechando a janela
// look-then-insert entre requisições concorrentes.
func (r *SchedulingGormRepository) FindOrCreatePatient(
	ctx context.Context,
	clinicID uuid.UUID,
	in domain.PatientInput,
) (*models.Patient, error) {

	var patient models.Patient
	err := r.db.WithContext(ctx).
		Where("clinic_id = ? AND email = ?", clinicID, in.Email).
		First(&patient).Error

	if err == nil {
		return &patient, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	patient = models.Patient{
		ClinicID:    clinicID,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Sex:         in.Sex,
	}

	if err := r.db.WithContext(ctx).Create(&patient).Error; err != nil {
		if !httperr.IsUniqueViolation(err) {
			return nil, err
		}

		var existing models.Patient
		if err := r.db.WithContext(ctx).
			Where("clinic_id = ? AND email = ?", clinicID, in.Email).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	return &patient, nil
}

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change / listing)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAppointmentForClinic(
	ctx context.Context,
	appointmentID uuid.UUID,
	clinicID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND clinic_id = ?", appointmentID, clinicID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	clinicID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where(
			"clinic_id = ? AND date >= ? AND date < ?",
			clinicID, start, end,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Admin toggles
// --------------------------------------------------

func (r *SchedulingGormRepository) AddBlockedDate(
	ctx context.Context,
	row *models.BlockedDate,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *SchedulingGormRepository) RemoveBlockedDate(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
) error {
	return r.db.WithContext(ctx).
		Where("doctor_id = ? AND clinic_id = ? AND date = ?", doctorID, clinicID, day).
		Delete(&models.BlockedDate{}).Error
}

func (r *SchedulingGormRepository) AddAdHocAvailableDate(
	ctx context.Context,
	row *models.AdHocAvailableDate,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *SchedulingGormRepository) RemoveAdHocAvailableDate(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
) error {
	return r.db.WithContext(ctx).
		Where("doctor_id = ? AND clinic_id = ? AND date = ?", doctorID, clinicID, day).
		Delete(&models.AdHocAvailableDate{}).Error
}

func (r *SchedulingGormRepository) AddBlockedTimeSlot(
	ctx context.Context,
	row *models.BlockedTimeSlot,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "date"}, {Name: "time"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *SchedulingGormRepository) RemoveBlockedTimeSlot(
	ctx context.Context,
	doctorID uuid.UUID,
	clinicID uuid.UUID,
	day time.Time,
	slotTime string,
) error {
	return r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND clinic_id = ? AND date = ? AND time = ?",
			doctorID, clinicID, day, slotTime,
		).
		Delete(&models.BlockedTimeSlot{}).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *SchedulingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchedulingGormRepository{db: tx, loc: r.loc})
	})
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
