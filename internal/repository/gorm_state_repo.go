package repository

import (
	"errors"
	"fmt"
	"time"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contractID - договор всегда один, хранится одной строкой
const contractID = 1

type contractRecord struct {
	ID             uint      `gorm:"primaryKey"`
	StartDate      *string   `gorm:"type:varchar(10)"`
	InitialBalance int       `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (contractRecord) TableName() string {
	return "contracts"
}

type workPeriodRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Position  int    `gorm:"not null;index"`
	StartDate string `gorm:"type:varchar(10);not null"`
	EndDate   string `gorm:"type:varchar(10);not null"`
	Location  string `gorm:"not null"`
}

func (workPeriodRecord) TableName() string {
	return "work_periods"
}

type sickPeriodRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Position  int    `gorm:"not null;index"`
	StartDate string `gorm:"type:varchar(10);not null"`
	EndDate   string `gorm:"type:varchar(10);not null"`
}

func (sickPeriodRecord) TableName() string {
	return "sick_periods"
}

type GormStateRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// OpenGormStateRepository открывает базу SQLite и создает таблицы
func OpenGormStateRepository(databaseURL string, logger *logrus.Logger) (*GormStateRepository, error) {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewGormStateRepository(db, logger)
}

func NewGormStateRepository(db *gorm.DB, logger *logrus.Logger) (*GormStateRepository, error) {
	if logger == nil {
		logger = logrus.New()
	}

	// Автомиграция
	if err := db.AutoMigrate(&contractRecord{}, &workPeriodRecord{}, &sickPeriodRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate tracker tables")
		return nil, err
	}

	logger.Info("SQLite state repository initialized")

	return &GormStateRepository{db: db, logger: logger}, nil
}

func (r *GormStateRepository) Load() (*models.State, error) {
	state := models.NewState()

	var contract contractRecord
	result := r.db.First(&contract, contractID)
	switch {
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		r.logger.Info("No contract stored, starting with defaults")
	case result.Error != nil:
		r.logger.WithError(result.Error).Error("Failed to load contract")
		return nil, result.Error
	default:
		state.InitialBalance = contract.InitialBalance
		if contract.StartDate != nil {
			start, err := dateutil.ParseISO(*contract.StartDate)
			if err != nil {
				return nil, malformed("contracts.start_date: %v", err)
			}
			state.ContractStart = &start
		}
	}

	var works []workPeriodRecord
	if err := r.db.Order("position ASC").Find(&works).Error; err != nil {
		r.logger.WithError(err).Error("Failed to load work periods")
		return nil, err
	}
	for _, rec := range works {
		start, end, err := parseRange(rec.StartDate, rec.EndDate)
		if err != nil {
			return nil, malformed("work_periods id %d: %v", rec.ID, err)
		}
		state.WorkPeriods = append(state.WorkPeriods, models.WorkPeriod{StartDate: start, EndDate: end, Location: rec.Location})
	}

	var sicks []sickPeriodRecord
	if err := r.db.Order("position ASC").Find(&sicks).Error; err != nil {
		r.logger.WithError(err).Error("Failed to load sick periods")
		return nil, err
	}
	for _, rec := range sicks {
		start, end, err := parseRange(rec.StartDate, rec.EndDate)
		if err != nil {
			return nil, malformed("sick_periods id %d: %v", rec.ID, err)
		}
		state.SickPeriods = append(state.SickPeriods, models.SickPeriod{StartDate: start, EndDate: end})
	}

	r.logger.WithFields(logrus.Fields{
		"work_periods": len(state.WorkPeriods),
		"sick_periods": len(state.SickPeriods),
	}).Info("Tracker data loaded")

	return state, nil
}

// Save заменяет все сохраненные данные в одной транзакции
func (r *GormStateRepository) Save(state *models.State) error {
	contract := contractRecord{ID: contractID, InitialBalance: state.InitialBalance}
	if state.ContractStart != nil {
		start := dateutil.FormatISO(*state.ContractStart)
		contract.StartDate = &start
	}

	works := make([]workPeriodRecord, 0, len(state.WorkPeriods))
	for i, p := range state.WorkPeriods {
		works = append(works, workPeriodRecord{
			Position:  i,
			StartDate: dateutil.FormatISO(p.StartDate),
			EndDate:   dateutil.FormatISO(p.EndDate),
			Location:  p.Location,
		})
	}

	sicks := make([]sickPeriodRecord, 0, len(state.SickPeriods))
	for i, p := range state.SickPeriods {
		sicks = append(sicks, sickPeriodRecord{
			Position:  i,
			StartDate: dateutil.FormatISO(p.StartDate),
			EndDate:   dateutil.FormatISO(p.EndDate),
		})
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&contract).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM work_periods").Error; err != nil {
			return err
		}
		if len(works) > 0 {
			if err := tx.Create(&works).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM sick_periods").Error; err != nil {
			return err
		}
		if len(sicks) > 0 {
			if err := tx.Create(&sicks).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.WithError(err).Error("Failed to save tracker data")
		return fmt.Errorf("failed to save tracker data: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"work_periods": len(works),
		"sick_periods": len(sicks),
	}).Debug("Tracker data saved")

	return nil
}

func (r *GormStateRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
