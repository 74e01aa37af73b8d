package service

import (
	"fmt"
	"strings"
	"time"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/pkg/dateutil"
)

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// MonthName возвращает название месяца по-русски
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return month.String()
	}
	return monthNames[month-1]
}

// FormatBalance описывает знак баланса словами
func FormatBalance(balance int) string {
	switch {
	case balance > 0:
		return fmt.Sprintf("компания должна вам %d дн.", balance)
	case balance < 0:
		return fmt.Sprintf("вы должны компании %d дн.", -balance)
	default:
		return "баланс нулевой"
	}
}

// FormatContract форматирует настройки договора
func FormatContract(state *models.State) string {
	if !state.HasContract() {
		return "📭 Договор не настроен. Используйте /setup"
	}

	return fmt.Sprintf(
		`📄 Договор

📅 Начало учета: %s
⚖️ Начальный баланс: %d
🛠️ Вахт: %d
🏥 Больничных: %d`,
		dateutil.FormatDisplay(*state.ContractStart),
		state.InitialBalance,
		len(state.WorkPeriods),
		len(state.SickPeriods),
	)
}

// FormatReport форматирует итоги для отображения
func FormatReport(report *Report) string {
	if report == nil {
		return "❌ Статистика не найдена"
	}

	s := report.Summary
	result := fmt.Sprintf(
		`📊 Статистика с %s по %s

🛠️ Рабочих дней: %d
🏖️ Дней отдыха: %d
🏥 Больничных дней: %d
📅 Всего дней: %d`,
		dateutil.FormatDisplay(report.ContractStart),
		dateutil.FormatDisplay(report.Today),
		s.WorkDays, s.VacationDays, s.SickDays, s.Total(),
	)

	icon := "📈"
	if !s.CompanyOwes() {
		icon = "📉"
	}
	result += fmt.Sprintf("\n\n⚖️ Баланс: %s %d (%s)", icon, s.Balance, FormatBalance(s.Balance))

	if report.InitialBalance != 0 {
		result += fmt.Sprintf("\n   с учетом начального баланса %d", report.InitialBalance)
	}

	return result
}

// FormatLocations форматирует распределение рабочих дней по объектам
func FormatLocations(summary models.Summary) string {
	stats := summary.Locations()
	if len(stats) == 0 {
		return "📭 Нет рабочих дней с указанным объектом"
	}

	var result strings.Builder
	result.WriteString("📍 Рабочие дни по объектам:\n\n")
	for i, stat := range stats {
		result.WriteString(fmt.Sprintf("%d. %s: %d дн. (%.1f%%)\n",
			i+1, stat.Location, stat.Days, summary.LocationShare(stat.Location)))
	}

	if unnamed := summary.WorkDays - sumDays(stats); unnamed > 0 {
		result.WriteString(fmt.Sprintf("\nБез объекта: %d дн.", unnamed))
	}

	return strings.TrimRight(result.String(), "\n")
}

func sumDays(stats []models.LocationStat) int {
	total := 0
	for _, stat := range stats {
		total += stat.Days
	}
	return total
}

// FormatWorkPeriods форматирует список вахт с номерами для удаления
func FormatWorkPeriods(periods []models.WorkPeriod) string {
	if len(periods) == 0 {
		return "📭 Вахты пока не добавлены"
	}

	var result strings.Builder
	result.WriteString("🛠️ Ваши вахты:\n\n")
	for i, p := range periods {
		result.WriteString(fmt.Sprintf("%d. %s - %s (%d дн.)",
			i+1, dateutil.FormatDisplay(p.StartDate), dateutil.FormatDisplay(p.EndDate), p.Days()))
		if p.Location != "" {
			result.WriteString(fmt.Sprintf(" 📍 %s", p.Location))
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// FormatSickPeriods форматирует список больничных с номерами для удаления
func FormatSickPeriods(periods []models.SickPeriod) string {
	if len(periods) == 0 {
		return "📭 Больничные пока не добавлены"
	}

	var result strings.Builder
	result.WriteString("🏥 Ваши больничные:\n\n")
	for i, p := range periods {
		result.WriteString(fmt.Sprintf("%d. %s - %s (%d дн.)\n",
			i+1, dateutil.FormatDisplay(p.StartDate), dateutil.FormatDisplay(p.EndDate), p.Days()))
	}

	return strings.TrimRight(result.String(), "\n")
}

var dayMarkers = map[models.DayType]string{
	models.DayWork:     "Р",
	models.DayVacation: "О",
	models.DaySick:     "Б",
}

// FormatCalendar - календарь для Telegram с заголовком и блоком кода
func FormatCalendar(c *MonthCalendar) string {
	return fmt.Sprintf("🗓️ %s %d\n```\n%s```", MonthName(c.Month), c.Year, CalendarGrid(c))
}

// CalendarGrid рисует сетку месяца моноширинным текстом.
// Каждая ячейка: число и отметка типа дня, дни вне учета без отметки.
func CalendarGrid(c *MonthCalendar) string {
	var grid strings.Builder
	grid.WriteString("Пн  Вт  Ср  Чт  Пт  Сб  Вс\n")

	counts := map[models.DayType]int{}
	locations := map[string]int{}

	for _, week := range c.Weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			if day == 0 {
				cells = append(cells, "   ")
				continue
			}

			marker := " "
			if rec, ok := c.DayAt(day); ok {
				marker = dayMarkers[rec.Type]
				counts[rec.Type]++
				if rec.Type == models.DayWork && rec.Location != "" {
					locations[rec.Location]++
				}
			}
			cells = append(cells, fmt.Sprintf("%2d%s", day, marker))
		}
		grid.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		grid.WriteString("\n")
	}

	grid.WriteString("\nР - работа, О - отдых, Б - больничный\n")
	grid.WriteString(fmt.Sprintf("Р: %d  О: %d  Б: %d\n",
		counts[models.DayWork], counts[models.DayVacation], counts[models.DaySick]))

	if len(locations) > 0 {
		monthly := models.Summary{WorkDays: counts[models.DayWork], PerLocation: locations}
		grid.WriteString("\n")
		for _, stat := range monthly.Locations() {
			grid.WriteString(fmt.Sprintf("%s: %d дн.\n", strings.ReplaceAll(stat.Location, "`", "'"), stat.Days))
		}
	}

	return grid.String()
}
