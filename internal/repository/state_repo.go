package repository

import (
	"errors"
	"fmt"

	"vacation-tracker-bot/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrMalformedDocument - сохраненные данные не удалось разобрать.
// Загрузка в этом случае завершается ошибкой, данные по умолчанию не подставляются.
var ErrMalformedDocument = errors.New("malformed tracker data")

// StateRepository хранит состояние трекера целиком.
// Отсутствие сохраненных данных - не ошибка, а первый запуск.
type StateRepository interface {
	Load() (*models.State, error)
	Save(state *models.State) error
	Close() error
}

// NewStateRepository открывает хранилище выбранного типа
func NewStateRepository(backend, dataFile, databaseURL string, logger *logrus.Logger) (StateRepository, error) {
	switch backend {
	case "", BackendJSON:
		return NewJSONStateRepository(dataFile, logger), nil
	case BackendSQLite:
		repo, err := OpenGormStateRepository(databaseURL, logger)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}
