package models

import "sort"

// Summary - итоги по классифицированным дням
type Summary struct {
	WorkDays     int            `json:"work_days"`
	VacationDays int            `json:"vacation_days"`
	SickDays     int            `json:"sick_days"`
	Balance      int            `json:"balance"`
	PerLocation  map[string]int `json:"per_location"`
}

// LocationStat - количество рабочих дней на одном объекте
type LocationStat struct {
	Location string
	Days     int
}

// Total возвращает количество учтенных дней
func (s Summary) Total() int {
	return s.WorkDays + s.VacationDays + s.SickDays
}

// CompanyOwes - положительный баланс: компания должна дни сотруднику
func (s Summary) CompanyOwes() bool {
	return s.Balance >= 0
}

// LocationShare возвращает долю объекта от всех рабочих дней в процентах
func (s Summary) LocationShare(location string) float64 {
	if s.WorkDays == 0 {
		return 0
	}
	return float64(s.PerLocation[location]) / float64(s.WorkDays) * 100
}

// Locations возвращает объекты по убыванию количества дней, при равенстве - по имени
func (s Summary) Locations() []LocationStat {
	stats := make([]LocationStat, 0, len(s.PerLocation))
	for location, days := range s.PerLocation {
		stats = append(stats, LocationStat{Location: location, Days: days})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Days != stats[j].Days {
			return stats[i].Days > stats[j].Days
		}
		return stats[i].Location < stats[j].Location
	})

	return stats
}
