package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ISOLayout - формат хранения дат
	ISOLayout = "2006-01-02"
	// DisplayLayout - формат отображения дат пользователю
	DisplayLayout = "02.01.2006"
)

// Date returns the calendar date at 00:00 UTC.
// All dates in the tracker are built through it so they can be used as map keys.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the time of day and the location of t, keeping its calendar date.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar date.
func Today() time.Time {
	return Normalize(time.Now())
}

// NextDay returns the following calendar date.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// DaysInclusive returns the number of calendar days in [start, end], or 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	start, end = Normalize(start), Normalize(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Max returns the later of two dates.
func Max(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// Min returns the earlier of two dates.
func Min(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseISO parses a stored YYYY-MM-DD date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

// Parse парсит дату, введенную пользователем.
// Форматы без года получают год из now.
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	formats := []string{
		ISOLayout,
		DisplayLayout,
		"02-01-2006",
		"02/01/2006",
		"02.01",
		"02-01",
	}

	for _, format := range formats {
		t, err := time.Parse(format, s)
		if err != nil {
			continue
		}
		if !strings.Contains(format, "2006") {
			// без года time.Parse берет год 0, где 29.02 существует
			day := Date(now.Year(), t.Month(), t.Day())
			if day.Month() != t.Month() {
				return time.Time{}, fmt.Errorf("дата %s не существует в %d году", s, now.Year())
			}
			return day, nil
		}
		return Normalize(t), nil
	}

	return time.Time{}, fmt.Errorf("неверный формат даты %q. Используйте ГГГГ-ММ-ДД, ДД.ММ.ГГГГ или ДД.ММ", s)
}
