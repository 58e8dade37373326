package timezone

import "time"

// Fuso único da aplicação: toda data/hora do sistema é interpretada nele.
const DefaultTimezone = "America/Fortaleza"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// StartOfDay normaliza um instante para 00:00:00 do dia no fuso dado.
// Datas são sempre armazenadas e comparadas nessa forma.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate interpreta "YYYY-MM-DD" como início do dia no fuso dado.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// CombineDateTime monta o timestamp exato do slot a partir de
// "YYYY-MM-DD" + "HH:MM" no fuso dado.
func CombineDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
}
