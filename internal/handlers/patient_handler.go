package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httpresp"
	"github.com/JPedroSoeiro/doutor-agenda/internal/middleware"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
)

type PatientHandler struct {
	db *gorm.DB
}

func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{db: db}
}

func (h *PatientHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	var patients []models.Patient
	if err := h.db.
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Erro ao listar pacientes.")
		return
	}

	httpresp.List(c, patients)
}
