// Package daymap classifies calendar days into work, vacation and sick days
// and aggregates the result into counts and a day balance.
package daymap

import (
	"sort"
	"time"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/pkg/dateutil"
)

// Days maps a normalized calendar date to its classification.
type Days map[time.Time]models.DayRecord

// Get returns the record for date, normalizing it first.
func (d Days) Get(date time.Time) (models.DayRecord, bool) {
	rec, ok := d[dateutil.Normalize(date)]
	return rec, ok
}

// Dates returns the classified dates in ascending order.
func (d Days) Dates() []time.Time {
	dates := make([]time.Time, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Classify builds the day map for [contractStart, today].
//
// Every date starts as vacation. Work periods are applied in list order, then sick
// periods in list order; a later write replaces an earlier one. Period days outside
// the window are ignored. A contract start after today yields an empty map.
func Classify(contractStart, today time.Time, work []models.WorkPeriod, sick []models.SickPeriod) Days {
	contractStart = dateutil.Normalize(contractStart)
	today = dateutil.Normalize(today)

	days := Days{}
	if contractStart.After(today) {
		return days
	}

	for date := contractStart; !date.After(today); date = dateutil.NextDay(date) {
		days[date] = models.DayRecord{Type: models.DayVacation}
	}

	for _, p := range work {
		overlay(days, contractStart, today, p.StartDate, p.EndDate, models.DayRecord{Type: models.DayWork, Location: p.Location})
	}
	for _, p := range sick {
		overlay(days, contractStart, today, p.StartDate, p.EndDate, models.DayRecord{Type: models.DaySick})
	}

	return days
}

// overlay writes rec over [start, end] clipped to [from, to].
func overlay(days Days, from, to, start, end time.Time, rec models.DayRecord) {
	start = dateutil.Max(dateutil.Normalize(start), from)
	end = dateutil.Min(dateutil.Normalize(end), to)

	for date := start; !date.After(end); date = dateutil.NextDay(date) {
		days[date] = rec
	}
}

// Aggregate counts the day types and computes the balance.
// Work days add to the balance, vacation days consume it, sick days are neutral.
// Work days without a location are counted but left out of PerLocation.
func Aggregate(days Days, initialBalance int) models.Summary {
	summary := models.Summary{PerLocation: map[string]int{}}

	for _, rec := range days {
		switch rec.Type {
		case models.DayWork:
			summary.WorkDays++
			if rec.Location != "" {
				summary.PerLocation[rec.Location]++
			}
		case models.DayVacation:
			summary.VacationDays++
		case models.DaySick:
			summary.SickDays++
		}
	}

	summary.Balance = initialBalance + summary.WorkDays - summary.VacationDays
	return summary
}

// MonthGrid returns the weeks of a month, Monday first.
// Cells outside the month are zero.
func MonthGrid(year int, month time.Month) [][]int {
	first := dateutil.Date(year, month, 1)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday = 0 ... Sunday = 6
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}
