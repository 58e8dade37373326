package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/timezone"
	usecase "github.com/JPedroSoeiro/doutor-agenda/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	getSlots *usecase.GetAvailableSlots
	loc      *time.Location
}

func NewAvailabilityHandler(getSlots *usecase.GetAvailableSlots, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{getSlots: getSlots, loc: loc}
}

type AvailableSlotsRequest struct {
	ClinicID string `json:"clinic_id" binding:"required,uuid"`
	DoctorID string `json:"doctor_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
}

// GetAvailableSlots é a superfície pública de disponibilidade: recebe
// clínica, médico e data e devolve a grade de slots do dia.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	var req AvailableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	clinicID, _ := uuid.Parse(req.ClinicID)
	doctorID, _ := uuid.Parse(req.DoctorID)

	date, err := timezone.ParseDate(req.Date, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data inválida, use YYYY-MM-DD.")
		return
	}

	out, err := h.getSlots.Execute(c.Request.Context(), domain.AvailabilityInput{
		ClinicID: clinicID,
		DoctorID: doctorID,
		Date:     date,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.NotFound(c, code, "Médico não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_resolve_availability", "Erro ao consultar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, out)
}
