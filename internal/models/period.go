// internal/models/period.go
package models

import (
	"time"

	"vacation-tracker-bot/pkg/dateutil"
)

// WorkPeriod - период работы на объекте (вахта)
type WorkPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Location  string    `json:"location"` // может быть пустой
}

// SickPeriod - период больничного
type SickPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Days возвращает длительность периода в днях (включительно)
func (p WorkPeriod) Days() int {
	return dateutil.DaysInclusive(p.StartDate, p.EndDate)
}

// IsValid проверяет, что начало не позже окончания
func (p WorkPeriod) IsValid() bool {
	return !p.EndDate.Before(p.StartDate)
}

func (p SickPeriod) Days() int {
	return dateutil.DaysInclusive(p.StartDate, p.EndDate)
}

func (p SickPeriod) IsValid() bool {
	return !p.EndDate.Before(p.StartDate)
}
