package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vacation-tracker-bot/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// exportDocument - копия данных для пользователя, даты в формате ДД.ММ.ГГГГ
type exportDocument struct {
	ContractStart  *string    `json:"contract_start" yaml:"contract_start"`
	InitialBalance int        `json:"initial_balance" yaml:"initial_balance"`
	WorkPeriods    [][]string `json:"work_periods" yaml:"work_periods"`
	SickPeriods    [][]string `json:"sick_periods" yaml:"sick_periods"`
}

// Export сериализует данные в выбранный формат и возвращает имя файла и содержимое
func (s *TrackerService) Export(format string, today time.Time) (string, []byte, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportJSON
	}
	if format == "yml" {
		format = ExportYAML
	}

	doc := exportDocument{
		InitialBalance: s.state.InitialBalance,
		WorkPeriods:    make([][]string, 0, len(s.state.WorkPeriods)),
		SickPeriods:    make([][]string, 0, len(s.state.SickPeriods)),
	}
	if s.state.ContractStart != nil {
		start := dateutil.FormatDisplay(*s.state.ContractStart)
		doc.ContractStart = &start
	}
	for _, p := range s.state.WorkPeriods {
		doc.WorkPeriods = append(doc.WorkPeriods, []string{
			dateutil.FormatDisplay(p.StartDate),
			dateutil.FormatDisplay(p.EndDate),
			p.Location,
		})
	}
	for _, p := range s.state.SickPeriods {
		doc.SickPeriods = append(doc.SickPeriods, []string{
			dateutil.FormatDisplay(p.StartDate),
			dateutil.FormatDisplay(p.EndDate),
		})
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case ExportJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case ExportYAML:
		data, err = yaml.Marshal(doc)
	default:
		s.logger.WithField("format", format).Warn("Unknown export format")
		return "", nil, ErrUnknownFormat
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode export: %w", err)
	}

	filename := fmt.Sprintf("tracker_backup_%s.%s", dateutil.FormatISO(today), format)
	s.logger.WithFields(logrus.Fields{
		"format": format,
		"bytes":  len(data),
	}).Info("Tracker data exported")

	return filename, data, nil
}
