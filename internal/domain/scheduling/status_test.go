package scheduling

import (
	"testing"
	"time"

	"github.com/JPedroSoeiro/doutor-agenda/internal/httperr"
	"github.com/JPedroSoeiro/doutor-agenda/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	now := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	type action struct {
		name string
		run  func(*models.Appointment) error
		want Status
	}

	actions := []action{
		{"cancel", func(ap *models.Appointment) error { return Cancel(ap, now) }, StatusCancelled},
		{"complete", func(ap *models.Appointment) error { return Complete(ap, now) }, StatusCompleted},
		{"no_show", func(ap *models.Appointment) error { return MarkNoShow(ap, now) }, StatusNoShow},
	}

	for _, a := range actions {
		t.Run(a.name+" a partir de scheduled", func(t *testing.T) {
			ap := &models.Appointment{Status: string(StatusScheduled)}
			if err := a.run(ap); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.Status != string(a.want) {
				t.Fatalf("status = %q, want %q", ap.Status, a.want)
			}
			if !ap.UpdatedAt.Equal(now) {
				t.Fatal("UpdatedAt not set")
			}
		})
	}

	terminal := []Status{StatusCompleted, StatusCancelled, StatusNoShow}
	for _, from := range terminal {
		for _, a := range actions {
			t.Run(a.name+" a partir de "+string(from), func(t *testing.T) {
				ap := &models.Appointment{Status: string(from)}
				err := a.run(ap)
				if !httperr.IsBusiness(err, "invalid_state") {
					t.Fatalf("expected invalid_state, got %v", err)
				}
				if ap.Status != string(from) {
					t.Fatalf("status mutated to %q", ap.Status)
				}
			})
		}
	}
}

func TestIsValidModality(t *testing.T) {
	if !IsValidModality("remoto") || !IsValidModality("presencial") {
		t.Fatal("expected remoto and presencial to be valid")
	}
	if IsValidModality("hibrido") || IsValidModality("") {
		t.Fatal("unexpected modality accepted")
	}
}

func TestIsValidSex(t *testing.T) {
	for _, s := range []string{"male", "female", "outro"} {
		if !IsValidSex(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if IsValidSex("m") || IsValidSex("") {
		t.Fatal("unexpected sex accepted")
	}
}
