package scheduling

import (
	"testing"
	"time"
)

var testLoc = time.FixedZone("-03", -3*60*60)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "duas horas geram quatro slots",
			from: "08:00:00", to: "10:00:00",
			want: []string{"08:00", "08:30", "09:00", "09:30"},
		},
		{
			name: "intervalo semiaberto exclui o horário final",
			from: "09:00:00", to: "09:30:00",
			want: []string{"09:00"},
		},
		{
			name: "slot parcial no fim é descartado",
			from: "08:00:00", to: "09:15:00",
			want: []string{"08:00", "08:30", "09:00"},
		},
		{
			name: "aceita HH:MM sem segundos",
			from: "14:00", to: "15:00",
			want: []string{"14:00", "14:30"},
		},
		{
			name: "janela vazia",
			from: "10:00:00", to: "10:00:00",
			want: []string{},
		},
		{
			name: "horário inválido",
			from: "25:00:00", to: "26:00:00",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTimeSlots(tt.from, tt.to, SlotInterval)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("slot %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsWorkingWeekday(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		weekday  int
		want     bool
	}{
		{"segunda a sexta inclui quarta", 1, 5, 3, true},
		{"segunda a sexta exclui domingo", 1, 5, 0, false},
		{"segunda a sexta exclui sábado", 1, 5, 6, false},
		{"dia único", 3, 3, 3, true},
		{"virada de semana inclui sexta", 5, 1, 5, true},
		{"virada de semana inclui sábado", 5, 1, 6, true},
		{"virada de semana inclui domingo", 5, 1, 0, true},
		{"virada de semana inclui segunda", 5, 1, 1, true},
		{"virada de semana exclui quarta", 5, 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWorkingWeekday(tt.from, tt.to, tt.weekday); got != tt.want {
				t.Fatalf("IsWorkingWeekday(%d, %d, %d) = %v, want %v",
					tt.from, tt.to, tt.weekday, got, tt.want)
			}
		})
	}
}

func TestResolveDaySlots(t *testing.T) {
	window := WeeklyWindow{
		FromWeekDay: 1,
		ToWeekDay:   5,
		FromTime:    "08:00:00",
		ToTime:      "10:00:00",
	}

	// Quinta-feira, dentro da janela semanal
	thursday := time.Date(2026, 9, 10, 0, 0, 0, 0, testLoc)
	// Domingo, fora da janela
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, testLoc)
	// "now" num dia distante: nenhum slot é filtrado por horário
	farNow := time.Date(2026, 9, 1, 12, 0, 0, 0, testLoc)

	emptyCal := func() DayCalendar {
		return DayCalendar{BlockedTimes: map[string]bool{}, BookedTimes: map[string]bool{}}
	}

	t.Run("dia útil sem restrições", func(t *testing.T) {
		slots, dayAvailable := ResolveDaySlots(window, thursday, farNow, emptyCal(), testLoc)
		if !dayAvailable {
			t.Fatal("expected day to be available")
		}
		if len(slots) != 4 {
			t.Fatalf("expected 4 slots, got %d", len(slots))
		}
		for _, s := range slots {
			if !s.Available {
				t.Fatalf("slot %s should be available", s.Time)
			}
		}
	})

	t.Run("bloqueio de dia zera tudo", func(t *testing.T) {
		cal := emptyCal()
		cal.DateBlocked = true
		slots, dayAvailable := ResolveDaySlots(window, thursday, farNow, cal, testLoc)
		if dayAvailable {
			t.Fatal("expected day to be unavailable")
		}
		for _, s := range slots {
			if s.Available {
				t.Fatalf("slot %s should be unavailable on blocked date", s.Time)
			}
		}
	})

	t.Run("bloqueio de dia vence liberação ad-hoc", func(t *testing.T) {
		cal := emptyCal()
		cal.DateBlocked = true
		cal.AdHoc = true
		_, dayAvailable := ResolveDaySlots(window, sunday, farNow, cal, testLoc)
		if dayAvailable {
			t.Fatal("blocked date must win over ad-hoc release")
		}
	})

	t.Run("fora da janela sem ad-hoc", func(t *testing.T) {
		slots, dayAvailable := ResolveDaySlots(window, sunday, farNow, emptyCal(), testLoc)
		if dayAvailable {
			t.Fatal("expected off-window day to be unavailable")
		}
		for _, s := range slots {
			if s.Available {
				t.Fatalf("slot %s should be unavailable off-window", s.Time)
			}
		}
	})

	t.Run("ad-hoc libera dia fora da janela", func(t *testing.T) {
		cal := emptyCal()
		cal.AdHoc = true
		slots, dayAvailable := ResolveDaySlots(window, sunday, farNow, cal, testLoc)
		if !dayAvailable {
			t.Fatal("expected ad-hoc day to be available")
		}
		if len(slots) != 4 {
			t.Fatalf("expected 4 slots, got %d", len(slots))
		}
	})

	t.Run("slot bloqueado afeta só aquele horário", func(t *testing.T) {
		cal := emptyCal()
		cal.BlockedTimes["08:30"] = true
		slots, _ := ResolveDaySlots(window, thursday, farNow, cal, testLoc)
		for _, s := range slots {
			want := s.Time != "08:30"
			if s.Available != want {
				t.Fatalf("slot %s: available=%v, want %v", s.Time, s.Available, want)
			}
		}
	})

	t.Run("agendamento existente ocupa o horário", func(t *testing.T) {
		cal := emptyCal()
		cal.BookedTimes["09:00"] = true
		slots, _ := ResolveDaySlots(window, thursday, farNow, cal, testLoc)
		for _, s := range slots {
			want := s.Time != "09:00"
			if s.Available != want {
				t.Fatalf("slot %s: available=%v, want %v", s.Time, s.Available, want)
			}
		}
	})

	t.Run("slots passados de hoje são removidos", func(t *testing.T) {
		now := time.Date(2026, 9, 10, 8, 30, 0, 0, testLoc)
		slots, _ := ResolveDaySlots(window, thursday, now, emptyCal(), testLoc)

		// 08:00 e 08:30 não são estritamente futuros às 08:30
		if len(slots) != 2 {
			t.Fatalf("expected 2 remaining slots, got %d", len(slots))
		}
		if slots[0].Time != "09:00" || slots[1].Time != "09:30" {
			t.Fatalf("unexpected slots: %+v", slots)
		}
	})

	t.Run("dia futuro não sofre filtro de horário", func(t *testing.T) {
		now := time.Date(2026, 9, 9, 23, 0, 0, 0, testLoc)
		slots, _ := ResolveDaySlots(window, thursday, now, emptyCal(), testLoc)
		if len(slots) != 4 {
			t.Fatalf("expected 4 slots on future day, got %d", len(slots))
		}
	})
}
