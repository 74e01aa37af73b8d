package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/pkg/dateutil"

	"github.com/sirupsen/logrus"
)

// Версии формата файла:
//
//	1 - без поля version; запись вахты может быть [начало, конец] без объекта
//	2 - запись вахты всегда [начало, конец, объект]
const currentDocumentVersion = 2

// stateDocument - формат файла данных
type stateDocument struct {
	Version        int        `json:"version,omitempty"`
	ContractStart  *string    `json:"contract_start"`
	InitialBalance int        `json:"initial_balance"`
	WorkPeriods    [][]string `json:"work_periods"`
	SickPeriods    [][]string `json:"sick_periods"`
}

type JSONStateRepository struct {
	path   string
	logger *logrus.Logger
}

func NewJSONStateRepository(path string, logger *logrus.Logger) *JSONStateRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &JSONStateRepository{path: path, logger: logger}
}

func (r *JSONStateRepository) Path() string {
	return r.path
}

func (r *JSONStateRepository) Load() (*models.State, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.logger.WithField("path", r.path).Info("No tracker data file, starting with defaults")
		return models.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tracker data: %w", err)
	}

	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed("%s: %v", r.path, err)
	}

	fromVersion := doc.Version
	if err := upgradeDocument(&doc); err != nil {
		return nil, err
	}

	state, err := documentToState(&doc)
	if err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"path":         r.path,
		"version":      fromVersion,
		"work_periods": len(state.WorkPeriods),
		"sick_periods": len(state.SickPeriods),
	}).Info("Tracker data loaded")

	return state, nil
}

// Save пишет документ во временный файл и атомарно заменяет им основной
func (r *JSONStateRepository) Save(state *models.State) error {
	data, err := json.MarshalIndent(stateToDocument(state), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tracker data: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tempPath := r.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tracker data to temporary file: %w", err)
	}

	if err := os.Rename(tempPath, r.path); err != nil {
		return fmt.Errorf("failed to replace tracker data file: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"path":         r.path,
		"work_periods": len(state.WorkPeriods),
		"sick_periods": len(state.SickPeriods),
	}).Debug("Tracker data saved")

	return nil
}

func (r *JSONStateRepository) Close() error {
	return nil
}

// upgradeDocument приводит документ любой поддерживаемой версии к текущей
func upgradeDocument(doc *stateDocument) error {
	switch doc.Version {
	case 0, 1:
		for i, rec := range doc.WorkPeriods {
			if len(rec) == 2 {
				doc.WorkPeriods[i] = append(rec, "")
			}
		}
		doc.Version = currentDocumentVersion
	case currentDocumentVersion:
	default:
		return malformed("unsupported document version %d", doc.Version)
	}
	return nil
}

func documentToState(doc *stateDocument) (*models.State, error) {
	state := models.NewState()
	state.InitialBalance = doc.InitialBalance

	if doc.ContractStart != nil {
		start, err := dateutil.ParseISO(*doc.ContractStart)
		if err != nil {
			return nil, malformed("contract_start: %v", err)
		}
		state.ContractStart = &start
	}

	for i, rec := range doc.WorkPeriods {
		if len(rec) != 3 {
			return nil, malformed("work_periods[%d]: expected 3 fields, got %d", i, len(rec))
		}
		start, end, err := parseRange(rec[0], rec[1])
		if err != nil {
			return nil, malformed("work_periods[%d]: %v", i, err)
		}
		state.WorkPeriods = append(state.WorkPeriods, models.WorkPeriod{StartDate: start, EndDate: end, Location: rec[2]})
	}

	for i, rec := range doc.SickPeriods {
		if len(rec) != 2 {
			return nil, malformed("sick_periods[%d]: expected 2 fields, got %d", i, len(rec))
		}
		start, end, err := parseRange(rec[0], rec[1])
		if err != nil {
			return nil, malformed("sick_periods[%d]: %v", i, err)
		}
		state.SickPeriods = append(state.SickPeriods, models.SickPeriod{StartDate: start, EndDate: end})
	}

	return state, nil
}

func stateToDocument(state *models.State) *stateDocument {
	doc := &stateDocument{
		Version:        currentDocumentVersion,
		InitialBalance: state.InitialBalance,
		WorkPeriods:    [][]string{},
		SickPeriods:    [][]string{},
	}

	if state.ContractStart != nil {
		start := dateutil.FormatISO(*state.ContractStart)
		doc.ContractStart = &start
	}
	for _, p := range state.WorkPeriods {
		doc.WorkPeriods = append(doc.WorkPeriods, []string{dateutil.FormatISO(p.StartDate), dateutil.FormatISO(p.EndDate), p.Location})
	}
	for _, p := range state.SickPeriods {
		doc.SickPeriods = append(doc.SickPeriods, []string{dateutil.FormatISO(p.StartDate), dateutil.FormatISO(p.EndDate)})
	}

	return doc
}

func parseRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = dateutil.ParseISO(startStr)
	if err != nil {
		return start, end, err
	}
	end, err = dateutil.ParseISO(endStr)
	return start, end, err
}
