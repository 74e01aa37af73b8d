package models

// DayType - тип календарного дня
type DayType string

const (
	DayWork     DayType = "W" // рабочий день
	DayVacation DayType = "V" // отпуск / отдых (по умолчанию)
	DaySick     DayType = "S" // больничный
)

// DayRecord - классификация одного дня
type DayRecord struct {
	Type     DayType `json:"type"`
	Location string  `json:"location"`
}

// Label возвращает название типа дня для отображения
func (t DayType) Label() string {
	switch t {
	case DayWork:
		return "Рабочий день"
	case DayVacation:
		return "Отдых"
	case DaySick:
		return "Больничный"
	default:
		return string(t)
	}
}
