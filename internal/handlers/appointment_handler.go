package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httpresp"
	"github.com/JPedroSoeiro/doutor-agenda/internal/middleware"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
	usecase "github.com/JPedroSoeiro/doutor-agenda/internal/usecase/scheduling"
)

type AppointmentHandler struct {
	listByDate  *usecase.ListAppointmentsByDate
	listByMonth *usecase.ListAppointmentsByMonth
	cancel      *usecase.CancelAppointment
	complete    *usecase.CompleteAppointment
	noShow      *usecase.MarkAppointmentNoShow
	loc         *time.Location
}

func NewAppointmentHandler(
	listByDate *usecase.ListAppointmentsByDate,
	listByMonth *usecase.ListAppointmentsByMonth,
	cancel *usecase.CancelAppointment,
	complete *usecase.CompleteAppointment,
	noShow *usecase.MarkAppointmentNoShow,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		cancel:      cancel,
		complete:    complete,
		noShow:      noShow,
		loc:         loc,
	}
}

// ======================================================
// LISTAGENS
// ======================================================

// ListByDate: GET /appointments?date=YYYY-MM-DD (default: hoje)
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	dateStr := c.Query("date")
	var date time.Time
	if dateStr == "" {
		date = timezone.NowIn(h.loc)
	} else {
		var err error
		date, err = timezone.ParseDate(dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data inválida, use YYYY-MM-DD.")
			return
		}
	}

	out, err := h.listByDate.Execute(c.Request.Context(), clinicID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ListByMonth: GET /appointments/month?year=YYYY&month=M
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_date_or_time", "Mês inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), clinicID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// TRANSIÇÕES DE STATUS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, clinicID uuid.UUID, userID *uuid.UUID, id uuid.UUID) (any, error) {
		return h.cancel.Execute(ctx.Request.Context(), clinicID, userID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, clinicID uuid.UUID, userID *uuid.UUID, id uuid.UUID) (any, error) {
		return h.complete.Execute(ctx.Request.Context(), clinicID, userID, id)
	})
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, clinicID uuid.UUID, userID *uuid.UUID, id uuid.UUID) (any, error) {
		return h.noShow.Execute(ctx.Request.Context(), clinicID, userID, id)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(*gin.Context, uuid.UUID, *uuid.UUID, uuid.UUID) (any, error),
) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador inválido.")
		return
	}

	ap, err := run(c, clinicID, &userID, appointmentID)
	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		case "invalid_state":
			httperr.Conflict(c, code, "Transição de status não permitida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
