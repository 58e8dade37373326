package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/middleware"
	usecase "github.com/JPedroSoeiro/doutor-agenda/internal/usecase/scheduling"
)

// CalendarHandler expõe os três mutadores de calendário: bloqueio de
// dia, liberação ad-hoc e bloqueio de slot individual.
type CalendarHandler struct {
	blockedDate *usecase.ToggleBlockedDate
	adHocDate   *usecase.ToggleAdHocDate
	blockedSlot *usecase.ToggleBlockedTimeSlot
}

func NewCalendarHandler(
	blockedDate *usecase.ToggleBlockedDate,
	adHocDate *usecase.ToggleAdHocDate,
	blockedSlot *usecase.ToggleBlockedTimeSlot,
) *CalendarHandler {
	return &CalendarHandler{
		blockedDate: blockedDate,
		adHocDate:   adHocDate,
		blockedSlot: blockedSlot,
	}
}

type ToggleRequest struct {
	DoctorID     string `json:"doctor_id" binding:"required,uuid"`
	ClinicID     string `json:"clinic_id" binding:"required,uuid"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time"`
	DesiredState *bool  `json:"desired_state" binding:"required"`
	Reason       string `json:"reason"`
}

type ToggleResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (h *CalendarHandler) ToggleBlockedDate(c *gin.Context) {
	h.toggle(c, func(ctx context.Context, clinicID uuid.UUID, userID *uuid.UUID, in domain.ToggleInput) error {
		return h.blockedDate.Execute(ctx, clinicID, userID, in)
	})
}

func (h *CalendarHandler) ToggleAdHocDate(c *gin.Context) {
	h.toggle(c, func(ctx context.Context, clinicID uuid.UUID, userID *uuid.UUID, in domain.ToggleInput) error {
		return h.adHocDate.Execute(ctx, clinicID, userID, in)
	})
}

func (h *CalendarHandler) ToggleBlockedTimeSlot(c *gin.Context) {
	h.toggle(c, func(ctx context.Context, clinicID uuid.UUID, userID *uuid.UUID, in domain.ToggleInput) error {
		return h.blockedSlot.Execute(ctx, clinicID, userID, in)
	})
}

func (h *CalendarHandler) toggle(
	c *gin.Context,
	run func(context.Context, uuid.UUID, *uuid.UUID, domain.ToggleInput) error,
) {
	actingClinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ToggleResponse{Success: false, Error: "invalid_request"})
		return
	}

	doctorID, _ := uuid.Parse(req.DoctorID)
	clinicID, _ := uuid.Parse(req.ClinicID)

	err := run(c.Request.Context(), actingClinicID, &userID, domain.ToggleInput{
		DoctorID:     doctorID,
		ClinicID:     clinicID,
		Date:         req.Date,
		Time:         req.Time,
		DesiredState: *req.DesiredState,
		Reason:       req.Reason,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			c.JSON(toggleStatus(code), ToggleResponse{Success: false, Error: code})
			return
		}
		c.JSON(http.StatusInternalServerError, ToggleResponse{Success: false, Error: "failed_to_update_calendar"})
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{Success: true})
}

func toggleStatus(code string) int {
	switch code {
	case "unauthorized_clinic":
		return http.StatusForbidden
	case "doctor_not_found":
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
