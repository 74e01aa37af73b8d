package daymap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/pkg/dateutil"
)

func d(year int, month time.Month, day int) time.Time {
	return dateutil.Date(year, month, day)
}

func TestClassify_Scenario(t *testing.T) {
	work := []models.WorkPeriod{{StartDate: d(2020, 1, 3), EndDate: d(2020, 1, 5), Location: "RigA"}}
	sick := []models.SickPeriod{{StartDate: d(2020, 1, 4), EndDate: d(2020, 1, 4)}}

	days := Classify(d(2020, 1, 1), d(2020, 1, 10), work, sick)
	require.Len(t, days, 10)

	expected := map[int]models.DayRecord{
		1:  {Type: models.DayVacation},
		2:  {Type: models.DayVacation},
		3:  {Type: models.DayWork, Location: "RigA"},
		4:  {Type: models.DaySick},
		5:  {Type: models.DayWork, Location: "RigA"},
		6:  {Type: models.DayVacation},
		7:  {Type: models.DayVacation},
		8:  {Type: models.DayVacation},
		9:  {Type: models.DayVacation},
		10: {Type: models.DayVacation},
	}
	for day, want := range expected {
		got, ok := days.Get(d(2020, 1, day))
		require.True(t, ok, "day %d missing", day)
		assert.Equal(t, want, got, "day %d", day)
	}

	summary := Aggregate(days, 3)
	assert.Equal(t, 2, summary.WorkDays)
	assert.Equal(t, 7, summary.VacationDays)
	assert.Equal(t, 1, summary.SickDays)
	assert.Equal(t, -2, summary.Balance)
	assert.Equal(t, map[string]int{"RigA": 2}, summary.PerLocation)
}

func TestClassify_EntryCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		today time.Time
	}{
		{"single day", d(2020, 1, 1), d(2020, 1, 1)},
		{"month", d(2020, 1, 1), d(2020, 1, 31)},
		{"leap year", d(2020, 1, 1), d(2020, 12, 31)},
		{"several years", d(2019, 11, 26), d(2026, 10, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Classify(tt.start, tt.today, nil, nil)
			assert.Len(t, days, dateutil.DaysInclusive(tt.start, tt.today))

			for _, rec := range days {
				assert.Equal(t, models.DayRecord{Type: models.DayVacation}, rec)
			}
		})
	}
}

func TestClassify_FutureStartIsEmpty(t *testing.T) {
	days := Classify(d(2020, 2, 1), d(2020, 1, 31), nil, nil)
	assert.Empty(t, days)

	summary := Aggregate(days, 5)
	assert.Equal(t, models.Summary{Balance: 5, PerLocation: map[string]int{}}, summary)
}

func TestClassify_StartEqualsToday(t *testing.T) {
	days := Classify(d(2020, 1, 1), d(2020, 1, 1), []models.WorkPeriod{}, []models.SickPeriod{})
	summary := Aggregate(days, 4)

	assert.Equal(t, 0, summary.WorkDays)
	assert.Equal(t, 1, summary.VacationDays)
	assert.Equal(t, 0, summary.SickDays)
	assert.Equal(t, 4, summary.Balance)
}

func TestClassify_SickOverridesWork(t *testing.T) {
	// sick added before work still wins
	work := []models.WorkPeriod{{StartDate: d(2020, 1, 1), EndDate: d(2020, 1, 5), Location: "RigA"}}
	sick := []models.SickPeriod{{StartDate: d(2020, 1, 2), EndDate: d(2020, 1, 3)}}

	days := Classify(d(2020, 1, 1), d(2020, 1, 5), work, sick)

	rec, _ := days.Get(d(2020, 1, 2))
	assert.Equal(t, models.DaySick, rec.Type)
	assert.Empty(t, rec.Location)
	rec, _ = days.Get(d(2020, 1, 4))
	assert.Equal(t, models.DayWork, rec.Type)
}

func TestClassify_LaterWorkPeriodWins(t *testing.T) {
	work := []models.WorkPeriod{
		{StartDate: d(2020, 1, 1), EndDate: d(2020, 1, 4), Location: "L1"},
		{StartDate: d(2020, 1, 3), EndDate: d(2020, 1, 6), Location: "L2"},
	}

	days := Classify(d(2020, 1, 1), d(2020, 1, 10), work, nil)

	rec, _ := days.Get(d(2020, 1, 2))
	assert.Equal(t, "L1", rec.Location)
	rec, _ = days.Get(d(2020, 1, 3))
	assert.Equal(t, "L2", rec.Location)
	rec, _ = days.Get(d(2020, 1, 4))
	assert.Equal(t, "L2", rec.Location)

	summary := Aggregate(days, 0)
	assert.Equal(t, map[string]int{"L1": 2, "L2": 4}, summary.PerLocation)
}

func TestClassify_ClipsToWindow(t *testing.T) {
	work := []models.WorkPeriod{
		{StartDate: d(2019, 12, 25), EndDate: d(2020, 1, 2), Location: "Before"},
		{StartDate: d(2020, 1, 9), EndDate: d(2020, 2, 20), Location: "After"},
		{StartDate: d(2021, 1, 1), EndDate: d(2021, 1, 3), Location: "Future"},
	}

	days := Classify(d(2020, 1, 1), d(2020, 1, 10), work, nil)
	require.Len(t, days, 10)

	_, ok := days.Get(d(2019, 12, 31))
	assert.False(t, ok)
	_, ok = days.Get(d(2020, 1, 11))
	assert.False(t, ok)

	summary := Aggregate(days, 0)
	assert.Equal(t, 4, summary.WorkDays)
	assert.Equal(t, map[string]int{"Before": 2, "After": 2}, summary.PerLocation)
}

func TestClassify_ZeroLengthPeriod(t *testing.T) {
	work := []models.WorkPeriod{{StartDate: d(2020, 1, 5), EndDate: d(2020, 1, 5)}}

	summary := Aggregate(Classify(d(2020, 1, 1), d(2020, 1, 10), work, nil), 0)

	assert.Equal(t, 1, summary.WorkDays)
	assert.Empty(t, summary.PerLocation, "empty location is not a location")
}

func TestClassify_Idempotent(t *testing.T) {
	work := []models.WorkPeriod{{StartDate: d(2020, 1, 3), EndDate: d(2020, 1, 5), Location: "RigA"}}
	sick := []models.SickPeriod{{StartDate: d(2020, 1, 4), EndDate: d(2020, 1, 4)}}
	workCopy := append([]models.WorkPeriod{}, work...)

	first := Classify(d(2020, 1, 1), d(2020, 1, 10), work, sick)
	second := Classify(d(2020, 1, 1), d(2020, 1, 10), work, sick)

	assert.Equal(t, first, second)
	assert.Equal(t, workCopy, work)
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2020, 1, 1, 18, 30, 0, 0, time.UTC)
	today := time.Date(2020, 1, 3, 7, 0, 0, 0, time.UTC)

	days := Classify(start, today, nil, nil)

	assert.Equal(t, []time.Time{d(2020, 1, 1), d(2020, 1, 2), d(2020, 1, 3)}, days.Dates())
}

func TestAggregate_CountsAndBalanceHold(t *testing.T) {
	work := []models.WorkPeriod{
		{StartDate: d(2020, 1, 1), EndDate: d(2020, 1, 20), Location: "RigA"},
		{StartDate: d(2020, 2, 10), EndDate: d(2020, 3, 5), Location: ""},
		{StartDate: d(2020, 3, 1), EndDate: d(2020, 3, 28), Location: "Workshop"},
	}
	sick := []models.SickPeriod{
		{StartDate: d(2020, 1, 15), EndDate: d(2020, 1, 25)},
		{StartDate: d(2020, 3, 27), EndDate: d(2020, 4, 2)},
	}

	for _, initial := range []int{-30, 0, 12} {
		days := Classify(d(2020, 1, 1), d(2020, 4, 30), work, sick)
		summary := Aggregate(days, initial)

		assert.Equal(t, len(days), summary.Total())
		assert.Equal(t, initial+summary.WorkDays-summary.VacationDays, summary.Balance)

		located := 0
		for _, n := range summary.PerLocation {
			located += n
		}
		assert.LessOrEqual(t, located, summary.WorkDays)
	}
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(Days{}, -7)

	assert.Zero(t, summary.WorkDays)
	assert.Zero(t, summary.VacationDays)
	assert.Zero(t, summary.SickDays)
	assert.Equal(t, -7, summary.Balance)
	assert.Empty(t, summary.PerLocation)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		weeks     int
		firstWeek []int
		lastWeek  []int
	}{
		{
			name:      "January 2020 starts on Wednesday",
			year:      2020,
			month:     time.January,
			weeks:     5,
			firstWeek: []int{0, 0, 1, 2, 3, 4, 5},
			lastWeek:  []int{27, 28, 29, 30, 31, 0, 0},
		},
		{
			name:      "February 2021 fits four weeks",
			year:      2021,
			month:     time.February,
			weeks:     4,
			firstWeek: []int{1, 2, 3, 4, 5, 6, 7},
			lastWeek:  []int{22, 23, 24, 25, 26, 27, 28},
		},
		{
			name:      "March 2020 starts on Sunday",
			year:      2020,
			month:     time.March,
			weeks:     6,
			firstWeek: []int{0, 0, 0, 0, 0, 0, 1},
			lastWeek:  []int{30, 31, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.year, tt.month)
			require.Len(t, grid, tt.weeks)
			assert.Equal(t, tt.firstWeek, grid[0])
			assert.Equal(t, tt.lastWeek, grid[len(grid)-1])
		})
	}
}
