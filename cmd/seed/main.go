package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"

	"github.com/JPedroSoeiro/doutor-agenda/internal/config"
	dbpkg "github.com/JPedroSoeiro/doutor-agenda/internal/db"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
)

// Popula o banco com uma clínica de demonstração, médicos com janelas
// variadas, pacientes e alguns agendamentos futuros.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.Timezone)

	gofakeit.Seed(42)

	clinic := models.Clinic{
		Name:        "Clínica Demo",
		Address:     gofakeit.Street(),
		PhoneNumber: gofakeit.Phone(),
		Email:       "contato@clinicademo.com.br",
	}
	if err := db.Create(&clinic).Error; err != nil {
		log.Fatalf("failed to seed clinic: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	admin := models.User{
		ClinicID:     clinic.ID,
		Name:         "Admin Demo",
		Email:        "admin@clinicademo.com.br",
		PasswordHash: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	specialties := []string{"Cardiologia", "Dermatologia", "Pediatria", "Ortopedia"}
	windows := []struct {
		fromWD, toWD int
		fromT, toT   string
		priceInCents int
	}{
		{1, 5, "08:00:00", "12:00:00", 25000},
		{1, 5, "13:00:00", "18:00:00", 30000},
		{2, 6, "09:00:00", "17:00:00", 20000},
		// Janela que atravessa a virada da semana (sexta a segunda)
		{5, 1, "08:00:00", "11:00:00", 35000},
	}

	doctors := make([]models.Doctor, 0, len(windows))
	for i, w := range windows {
		doctor := models.Doctor{
			ClinicID:                clinic.ID,
			Name:                    "Dr. " + gofakeit.Name(),
			Specialty:               specialties[i%len(specialties)],
			AvailableFromWeekDay:    w.fromWD,
			AvailableToWeekDay:      w.toWD,
			AvailableFromTime:       w.fromT,
			AvailableToTime:         w.toT,
			AppointmentPriceInCents: w.priceInCents,
			IsActive:                true,
		}
		if err := db.Create(&doctor).Error; err != nil {
			log.Fatalf("failed to seed doctor: %v", err)
		}
		doctors = append(doctors, doctor)
	}

	patients := make([]models.Patient, 0, 10)
	for i := 0; i < 10; i++ {
		sex := "male"
		if i%2 == 0 {
			sex = "female"
		}
		patient := models.Patient{
			ClinicID:    clinic.ID,
			Name:        gofakeit.Name(),
			Email:       fmt.Sprintf("paciente%d@exemplo.com.br", i+1),
			PhoneNumber: gofakeit.Phone(),
			Sex:         sex,
		}
		if err := db.Create(&patient).Error; err != nil {
			log.Fatalf("failed to seed patient: %v", err)
		}
		patients = append(patients, patient)
	}

	// Agendamentos futuros em dias úteis, um por slot por médico
	base := timezone.StartOfDay(timezone.NowIn(loc).AddDate(0, 0, 3), loc)
	created := 0
	for i, patient := range patients {
		doctor := doctors[i%len(doctors)]
		at := base.AddDate(0, 0, i%3).Add(9*time.Hour + time.Duration(i)*30*time.Minute)

		ap := models.Appointment{
			ClinicID:                clinic.ID,
			DoctorID:                doctor.ID,
			PatientID:               patient.ID,
			Date:                    at,
			AppointmentPriceInCents: doctor.AppointmentPriceInCents,
			Status:                  "scheduled",
			Modality:                "presencial",
		}
		if err := db.Create(&ap).Error; err != nil {
			// Colisão com o índice parcial de slot: ignora e segue
			log.Printf("skipping appointment seed: %v", err)
			continue
		}
		created++
	}

	log.Printf("seed complete: clinic=%s doctors=%d patients=%d appointments=%d",
		clinic.ID, len(doctors), len(patients), created)
}
