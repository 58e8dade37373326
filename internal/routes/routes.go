package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JPedroSoeiro/doutor-agenda/internal/audit"
	"github.com/JPedroSoeiro/doutor-agenda/internal/cache"
	"github.com/JPedroSoeiro/doutor-agenda/internal/config"
	"github.com/JPedroSoeiro/doutor-agenda/internal/handlers"
	infraRepo "github.com/JPedroSoeiro/doutor-agenda/internal/infra/repository"
	"github.com/JPedroSoeiro/doutor-agenda/internal/middleware"
	"github.com/JPedroSoeiro/doutor-agenda/internal/storage"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
	ucScheduling "github.com/JPedroSoeiro/doutor-agenda/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	schedulingRepo := infraRepo.NewSchedulingGormRepository(db, loc)

	availCache := cache.NewAvailabilityCache(cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword))

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	getAvailableSlotsUC := ucScheduling.NewGetAvailableSlots(
		schedulingRepo,
		availCache,
		loc,
	)

	createBookingUC := ucScheduling.NewCreateBooking(
		schedulingRepo,
		availCache,
		auditDispatcher,
		loc,
	)

	cancelAppointmentUC := ucScheduling.NewCancelAppointment(
		schedulingRepo,
		availCache,
		auditDispatcher,
		loc,
	)

	completeAppointmentUC := ucScheduling.NewCompleteAppointment(
		schedulingRepo,
		auditDispatcher,
		loc,
	)

	markNoShowUC := ucScheduling.NewMarkAppointmentNoShow(
		schedulingRepo,
		auditDispatcher,
		loc,
	)

	listAppointmentsByDateUC := ucScheduling.NewListAppointmentsByDate(
		schedulingRepo,
		loc,
	)

	listAppointmentsByMonthUC := ucScheduling.NewListAppointmentsByMonth(
		schedulingRepo,
		loc,
	)

	toggleBlockedDateUC := ucScheduling.NewToggleBlockedDate(
		schedulingRepo,
		availCache,
		auditDispatcher,
		loc,
	)

	toggleAdHocDateUC := ucScheduling.NewToggleAdHocDate(
		schedulingRepo,
		availCache,
		auditDispatcher,
		loc,
	)

	toggleBlockedTimeSlotUC := ucScheduling.NewToggleBlockedTimeSlot(
		schedulingRepo,
		availCache,
		auditDispatcher,
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db, avatarStore)
	patientHandler := handlers.NewPatientHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailableSlotsUC, loc)
	bookingHandler := handlers.NewBookingHandler(createBookingUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		markNoShowUC,
		loc,
	)

	calendarHandler := handlers.NewCalendarHandler(
		toggleBlockedDateUC,
		toggleAdHocDateUC,
		toggleBlockedTimeSlotUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (página de agendamento do paciente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.POST("/available-slots", availabilityHandler.GetAvailableSlots)
			publicAPI.POST("/bookings", bookingHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (painel da clínica)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/doctors", doctorHandler.List)
			secured.POST("/me/doctors", doctorHandler.Create)
			secured.PATCH("/me/doctors/:id", doctorHandler.Update)
			secured.POST("/me/doctors/:id/avatar", doctorHandler.UploadAvatar)

			secured.GET("/me/patients", patientHandler.List)

			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.POST("/me/blocked-dates", calendarHandler.ToggleBlockedDate)
			secured.POST("/me/ad-hoc-available-dates", calendarHandler.ToggleAdHocDate)
			secured.POST("/me/blocked-time-slots", calendarHandler.ToggleBlockedTimeSlot)
		}
	}
}
