// internal/service/tracker.go
package service

import (
	"fmt"
	"strings"
	"time"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/internal/repository"
	"vacation-tracker-bot/pkg/dateutil"
	"vacation-tracker-bot/pkg/daymap"

	"github.com/sirupsen/logrus"
)

// TrackerService владеет состоянием трекера.
// Команды проверяют ввод, сохраняют новое состояние и только после успешного
// сохранения заменяют им текущее. Запросы каждый раз заново классифицируют дни.
type TrackerService struct {
	repo   repository.StateRepository
	state  *models.State
	logger *logrus.Logger
}

// Report - итоги на дату today
type Report struct {
	ContractStart  time.Time
	InitialBalance int
	Today          time.Time
	Days           daymap.Days
	Summary        models.Summary
}

// MonthCalendar - сетка месяца и классификация дней
type MonthCalendar struct {
	Year  int
	Month time.Month
	Weeks [][]int
	Days  daymap.Days
}

// DayAt возвращает классификацию дня месяца, если он учитывается
func (c *MonthCalendar) DayAt(day int) (models.DayRecord, bool) {
	return c.Days.Get(dateutil.Date(c.Year, c.Month, day))
}

// NewTrackerService загружает состояние из хранилища
func NewTrackerService(repo repository.StateRepository, logger *logrus.Logger) (*TrackerService, error) {
	if logger == nil {
		logger = logrus.New()
	}

	state, err := repo.Load()
	if err != nil {
		logger.WithError(err).Error("Failed to load tracker data")
		return nil, fmt.Errorf("failed to load tracker data: %w", err)
	}

	return &TrackerService{
		repo:   repo,
		state:  state,
		logger: logger,
	}, nil
}

// State возвращает копию текущего состояния
func (s *TrackerService) State() *models.State {
	return s.state.Clone()
}

func (s *TrackerService) HasContract() bool {
	return s.state.HasContract()
}

func (s *TrackerService) WorkPeriods() []models.WorkPeriod {
	return append([]models.WorkPeriod{}, s.state.WorkPeriods...)
}

func (s *TrackerService) SickPeriods() []models.SickPeriod {
	return append([]models.SickPeriod{}, s.state.SickPeriods...)
}

// SetupContract задает дату начала учета и начальный баланс (первый запуск)
func (s *TrackerService) SetupContract(start time.Time, initialBalance int) error {
	start = dateutil.Normalize(start)
	fields := logrus.Fields{
		"start":           dateutil.FormatISO(start),
		"initial_balance": initialBalance,
	}

	if s.state.HasContract() {
		s.logger.WithFields(fields).Warn("Contract already configured")
		return ErrContractExists
	}

	next := s.state.Clone()
	next.ContractStart = &start
	next.InitialBalance = initialBalance

	if err := s.commit(next); err != nil {
		return err
	}

	s.logger.WithFields(fields).Info("Contract configured")
	return nil
}

// ResetContract сбрасывает дату начала договора. Периоды сохраняются,
// но не показываются, пока договор не будет настроен заново.
func (s *TrackerService) ResetContract() error {
	if !s.state.HasContract() {
		return ErrNoContract
	}

	next := s.state.Clone()
	next.ContractStart = nil

	if err := s.commit(next); err != nil {
		return err
	}

	s.logger.Info("Contract reset")
	return nil
}

// AddWorkPeriod добавляет вахту в конец списка
func (s *TrackerService) AddWorkPeriod(start, end time.Time, location string) (models.WorkPeriod, error) {
	period := models.WorkPeriod{
		StartDate: dateutil.Normalize(start),
		EndDate:   dateutil.Normalize(end),
		Location:  strings.TrimSpace(location),
	}
	fields := logrus.Fields{
		"start":    dateutil.FormatISO(period.StartDate),
		"end":      dateutil.FormatISO(period.EndDate),
		"location": period.Location,
	}

	if err := s.validateRange(period.StartDate, period.EndDate); err != nil {
		s.logger.WithFields(fields).WithError(err).Warn("Work period rejected")
		return models.WorkPeriod{}, err
	}

	next := s.state.Clone()
	next.WorkPeriods = append(next.WorkPeriods, period)
	if err := s.commit(next); err != nil {
		return models.WorkPeriod{}, err
	}

	s.logger.WithFields(fields).Info("Work period added")
	return period, nil
}

// AddSickPeriod добавляет больничный в конец списка
func (s *TrackerService) AddSickPeriod(start, end time.Time) (models.SickPeriod, error) {
	period := models.SickPeriod{
		StartDate: dateutil.Normalize(start),
		EndDate:   dateutil.Normalize(end),
	}
	fields := logrus.Fields{
		"start": dateutil.FormatISO(period.StartDate),
		"end":   dateutil.FormatISO(period.EndDate),
	}

	if err := s.validateRange(period.StartDate, period.EndDate); err != nil {
		s.logger.WithFields(fields).WithError(err).Warn("Sick period rejected")
		return models.SickPeriod{}, err
	}

	next := s.state.Clone()
	next.SickPeriods = append(next.SickPeriods, period)
	if err := s.commit(next); err != nil {
		return models.SickPeriod{}, err
	}

	s.logger.WithFields(fields).Info("Sick period added")
	return period, nil
}

// DeleteWorkPeriod удаляет вахту по позиции (с нуля)
func (s *TrackerService) DeleteWorkPeriod(index int) (models.WorkPeriod, error) {
	if index < 0 || index >= len(s.state.WorkPeriods) {
		s.logger.WithField("index", index).Warn("Work period not found for deletion")
		return models.WorkPeriod{}, ErrPeriodNotFound
	}

	removed := s.state.WorkPeriods[index]
	next := s.state.Clone()
	next.WorkPeriods = append(next.WorkPeriods[:index], next.WorkPeriods[index+1:]...)
	if err := s.commit(next); err != nil {
		return models.WorkPeriod{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"index":    index,
		"start":    dateutil.FormatISO(removed.StartDate),
		"end":      dateutil.FormatISO(removed.EndDate),
		"location": removed.Location,
	}).Info("Work period deleted")
	return removed, nil
}

// DeleteSickPeriod удаляет больничный по позиции (с нуля)
func (s *TrackerService) DeleteSickPeriod(index int) (models.SickPeriod, error) {
	if index < 0 || index >= len(s.state.SickPeriods) {
		s.logger.WithField("index", index).Warn("Sick period not found for deletion")
		return models.SickPeriod{}, ErrPeriodNotFound
	}

	removed := s.state.SickPeriods[index]
	next := s.state.Clone()
	next.SickPeriods = append(next.SickPeriods[:index], next.SickPeriods[index+1:]...)
	if err := s.commit(next); err != nil {
		return models.SickPeriod{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"index": index,
		"start": dateutil.FormatISO(removed.StartDate),
		"end":   dateutil.FormatISO(removed.EndDate),
	}).Info("Sick period deleted")
	return removed, nil
}

// ClearPeriods удаляет все вахты и больничные, договор остается
func (s *TrackerService) ClearPeriods() error {
	fields := logrus.Fields{
		"work_periods": len(s.state.WorkPeriods),
		"sick_periods": len(s.state.SickPeriods),
	}
	next := s.state.Clone()
	next.WorkPeriods = []models.WorkPeriod{}
	next.SickPeriods = []models.SickPeriod{}

	if err := s.commit(next); err != nil {
		return err
	}

	s.logger.WithFields(fields).Info("All periods cleared")
	return nil
}

// Report классифицирует дни с начала договора по today и считает итоги
func (s *TrackerService) Report(today time.Time) (*Report, error) {
	if !s.state.HasContract() {
		return nil, ErrNoContract
	}

	start := *s.state.ContractStart
	today = dateutil.Normalize(today)
	days := daymap.Classify(start, today, s.state.WorkPeriods, s.state.SickPeriods)

	return &Report{
		ContractStart:  start,
		InitialBalance: s.state.InitialBalance,
		Today:          today,
		Days:           days,
		Summary:        daymap.Aggregate(days, s.state.InitialBalance),
	}, nil
}

// Calendar возвращает календарь месяца. Год ограничен периодом с начала договора по today.
func (s *TrackerService) Calendar(year int, month time.Month, today time.Time) (*MonthCalendar, error) {
	if !s.state.HasContract() {
		return nil, ErrNoContract
	}

	start := *s.state.ContractStart
	today = dateutil.Normalize(today)

	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: месяц должен быть от 1 до 12", ErrInvalidMonth)
	}
	lastYear := today.Year()
	if start.Year() > lastYear {
		lastYear = start.Year()
	}
	if year < start.Year() || year > lastYear {
		return nil, fmt.Errorf("%w: год должен быть от %d до %d", ErrInvalidMonth, start.Year(), lastYear)
	}

	return &MonthCalendar{
		Year:  year,
		Month: month,
		Weeks: daymap.MonthGrid(year, month),
		Days:  daymap.Classify(start, today, s.state.WorkPeriods, s.state.SickPeriods),
	}, nil
}

func (s *TrackerService) validateRange(start, end time.Time) error {
	if !s.state.HasContract() {
		return ErrNoContract
	}
	if end.Before(start) {
		return ErrInvalidRange
	}
	if start.Before(*s.state.ContractStart) {
		return ErrBeforeContract
	}
	return nil
}

// commit сохраняет next и делает его текущим состоянием
func (s *TrackerService) commit(next *models.State) error {
	if err := s.repo.Save(next); err != nil {
		s.logger.WithError(err).Error("Failed to persist tracker data")
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}
	s.state = next
	return nil
}
