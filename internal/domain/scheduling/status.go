package scheduling

import "github.com/JPedroSoeiro/doutor-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func InitialStatus() Status {
	return StatusScheduled
}

// Somente agendamentos "scheduled" podem transicionar.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Modality / Sex
// ===============================

type Modality string

const (
	ModalityRemote   Modality = "remoto"
	ModalityInPerson Modality = "presencial"
)

func IsValidModality(m string) bool {
	return m == string(ModalityRemote) || m == string(ModalityInPerson)
}

func IsValidSex(s string) bool {
	return s == "male" || s == "female" || s == "outro"
}
