package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	usecase "github.com/JPedroSoeiro/doutor-agenda/internal/usecase/scheduling"
)

type BookingHandler struct {
	createBooking *usecase.CreateBooking
}

func NewBookingHandler(createBooking *usecase.CreateBooking) *BookingHandler {
	return &BookingHandler{createBooking: createBooking}
}

type CreateBookingRequest struct {
	DoctorID string `json:"doctor_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Modality string `json:"modality" binding:"required"`
	Notes    string `json:"notes"`

	PatientName  string `json:"patient_name" binding:"required"`
	PatientEmail string `json:"patient_email" binding:"required,email"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	PatientSex   string `json:"patient_sex" binding:"required"`
}

type BookingResponse struct {
	Success       bool       `json:"success"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	PatientID     *uuid.UUID `json:"patient_id,omitempty"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// Create é a superfície pública de reserva. Falhas de negócio voltam no
// envelope {success:false, error:<código>} com o status HTTP do código.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, BookingResponse{Success: false, Error: "invalid_request"})
		return
	}

	doctorID, _ := uuid.Parse(req.DoctorID)

	result, err := h.createBooking.Execute(c.Request.Context(), domain.BookingInput{
		Patient: domain.PatientInput{
			Name:        req.PatientName,
			Email:       req.PatientEmail,
			PhoneNumber: req.PatientPhone,
			Sex:         req.PatientSex,
		},
		DoctorID: doctorID,
		Date:     req.Date,
		Time:     req.Time,
		Modality: req.Modality,
		Notes:    req.Notes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			c.JSON(bookingStatus(code), BookingResponse{Success: false, Error: code})
			return
		}
		c.JSON(http.StatusInternalServerError, BookingResponse{Success: false, Error: "failed_to_create_booking"})
		return
	}

	c.JSON(http.StatusCreated, BookingResponse{
		Success:       true,
		AppointmentID: &result.AppointmentID,
		PatientID:     &result.PatientID,
		DoctorName:    result.DoctorName,
	})
}

func bookingStatus(code string) int {
	switch code {
	case "doctor_not_found":
		return http.StatusNotFound
	case "slot_already_booked":
		return http.StatusConflict
	case "slot_in_past", "day_unavailable", "slot_blocked", "inactive_doctor":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
