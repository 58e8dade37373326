package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httpresp"
	"github.com/JPedroSoeiro/doutor-agenda/internal/middleware"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
	"github.com/JPedroSoeiro/doutor-agenda/internal/storage"
)

type DoctorHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewDoctorHandler(db *gorm.DB, avatars *storage.AvatarStore) *DoctorHandler {
	return &DoctorHandler{db: db, avatars: avatars}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`

	AvailableFromWeekDay *int   `json:"available_from_week_day" binding:"required,min=0,max=6"`
	AvailableToWeekDay   *int   `json:"available_to_week_day" binding:"required,min=0,max=6"`
	AvailableFromTime    string `json:"available_from_time" binding:"required"`
	AvailableToTime      string `json:"available_to_time" binding:"required"`

	AppointmentPriceInCents int   `json:"appointment_price_in_cents" binding:"required,min=1"`
	IsActive                *bool `json:"is_active"`
}

func (r *UpsertDoctorRequest) validateWindow() error {
	from, err := time.Parse("15:04:05", r.AvailableFromTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_window")
	}
	to, err := time.Parse("15:04:05", r.AvailableToTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_window")
	}
	// Janela diária não pode atravessar a meia-noite
	if !from.Before(to) {
		return httperr.ErrBusiness("invalid_time_window")
	}
	return nil
}

// ======================================================
// CRUD
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	var doctors []models.Doctor
	if err := h.db.
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Erro ao listar médicos.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	var req UpsertDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := req.validateWindow(); err != nil {
		httperr.BadRequest(c, "invalid_time_window", "Horário de atendimento inválido.")
		return
	}

	doctor := models.Doctor{
		ClinicID:                clinicID,
		Name:                    req.Name,
		Specialty:               req.Specialty,
		AvailableFromWeekDay:    *req.AvailableFromWeekDay,
		AvailableToWeekDay:      *req.AvailableToWeekDay,
		AvailableFromTime:       req.AvailableFromTime,
		AvailableToTime:         req.AvailableToTime,
		AppointmentPriceInCents: req.AppointmentPriceInCents,
		IsActive:                true,
	}
	if req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Erro ao criar médico.")
		return
	}

	httpresp.Created(c, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Identificador inválido.")
		return
	}

	var doctor models.Doctor
	if err := h.db.
		Where("id = ? AND clinic_id = ?", doctorID, clinicID).
		First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Médico não encontrado.")
		return
	}

	var req UpsertDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := req.validateWindow(); err != nil {
		httperr.BadRequest(c, "invalid_time_window", "Horário de atendimento inválido.")
		return
	}

	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
	doctor.AvailableFromWeekDay = *req.AvailableFromWeekDay
	doctor.AvailableToWeekDay = *req.AvailableToWeekDay
	doctor.AvailableFromTime = req.AvailableFromTime
	doctor.AvailableToTime = req.AvailableToTime
	doctor.AppointmentPriceInCents = req.AppointmentPriceInCents
	if req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Erro ao atualizar médico.")
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// ======================================================
// AVATAR
// ======================================================

func (h *DoctorHandler) UploadAvatar(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uuid.UUID)

	if h.avatars == nil {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de imagens não configurado.")
		return
	}

	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Identificador inválido.")
		return
	}

	var doctor models.Doctor
	if err := h.db.
		Where("id = ? AND clinic_id = ?", doctorID, clinicID).
		First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Médico não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Arquivo de imagem obrigatório.")
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeAvatarWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (jpeg ou png).")
		return
	}

	key := fmt.Sprintf("avatars/%s.webp", doctor.ID)
	url, err := h.avatars.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar imagem.")
		return
	}

	doctor.AvatarImageURL = url
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Erro ao salvar imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_image_url": url})
}
