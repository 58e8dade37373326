package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Janela semanal e diária de atendimento de um médico.
type WeeklyWindow struct {
	FromWeekDay int
	ToWeekDay   int
	FromTime    string // HH:MM:SS
	ToTime      string // HH:MM:SS
}

// IsWorkingWeekday testa a pertinência do dia da semana na janela
// [from, to], com from > to indicando janela que atravessa a virada da
// semana (ex.: sexta=5 a segunda=1 inclui sábado e domingo).
func IsWorkingWeekday(from, to, weekday int) bool {
	if from <= to {
		return weekday >= from && weekday <= to
	}
	return weekday >= from || weekday <= to
}

// GenerateTimeSlots enumera os horários "HH:MM" de um dia, começando em
// fromTime e avançando de interval em interval, estritamente antes de
// toTime (intervalo semiaberto). Slot parcial final é descartado.
func GenerateTimeSlots(fromTime, toTime string, interval time.Duration) []string {
	from, okFrom := parseClock(fromTime)
	to, okTo := parseClock(toTime)
	if !okFrom || !okTo || interval <= 0 {
		return nil
	}

	slots := []string{}
	for cur := from; cur < to; cur += interval {
		slots = append(slots, formatClock(cur))
	}
	return slots
}

// SlotOnDay posiciona um horário "HH:MM" sobre a data alvo no fuso dado.
func SlotOnDay(date time.Time, hm string, loc *time.Location) time.Time {
	d, _ := parseClock(hm)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return day.Add(d)
}

// ResolveDaySlots combina a janela do médico com o estado de calendário da
// data e produz a lista final de slots. Precedência: bloqueio de dia >
// (dia útil semanal OU liberação ad-hoc) > slot bloqueado > agendamento
// existente. Se a data é hoje, slots cujo início não é estritamente
// posterior a now são removidos da saída, não apenas marcados.
func ResolveDaySlots(w WeeklyWindow, date time.Time, now time.Time, cal DayCalendar, loc *time.Location) ([]Slot, bool) {
	dayEligible := !cal.DateBlocked &&
		(IsWorkingWeekday(w.FromWeekDay, w.ToWeekDay, int(date.In(loc).Weekday())) || cal.AdHoc)

	sameDay := date.In(loc).Year() == now.In(loc).Year() &&
		date.In(loc).YearDay() == now.In(loc).YearDay()

	slots := []Slot{}
	for _, hm := range GenerateTimeSlots(w.FromTime, w.ToTime, SlotInterval) {
		if sameDay && !SlotOnDay(date, hm, loc).After(now) {
			continue
		}

		available := dayEligible && !cal.BlockedTimes[hm] && !cal.BookedTimes[hm]
		slots = append(slots, Slot{Time: hm, Available: available})
	}

	return slots, dayEligible
}

// parseClock aceita "HH:MM" e "HH:MM:SS".
func parseClock(s string) (time.Duration, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}

	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, false
		}
	}

	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, true
}

func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
