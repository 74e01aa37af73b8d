package main

import (
	"fmt"
	"os"
	"time"

	"vacation-tracker-bot/internal/config"
	"vacation-tracker-bot/internal/repository"
	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	"github.com/spf13/cobra"
)

// app - общее состояние команд: открытое хранилище и сервис
type app struct {
	store    string
	dataFile string
	dbURL    string
	logLevel string
	todayArg string

	repo    repository.StateRepository
	tracker *service.TrackerService
	today   time.Time
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "trackerctl",
		Short:         "Учет рабочих дней, дней отдыха и больничных",
		Long:          "Локальный доступ к данным трекера: итоги, календарь, экспорт и редактирование периодов",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.store, "store", "", "Storage backend: json or sqlite (default from STORE_BACKEND)")
	flags.StringVar(&a.dataFile, "data", "", "JSON data file (default from DATA_FILE)")
	flags.StringVar(&a.dbURL, "db", "", "SQLite database path (default from DATABASE_URL)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level")
	flags.StringVar(&a.todayArg, "today", "", "Count days up to this date instead of today")

	rootCmd.AddCommand(
		reportCmd(a),
		calendarCmd(a),
		exportCmd(a),
		periodsCmd(a),
		setupCmd(a),
		resetCmd(a),
		workCmd(a),
		sickCmd(a),
		clearCmd(a),
	)

	return rootCmd
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.store != "" {
		cfg.StoreBackend = a.store
	}
	if a.dataFile != "" {
		cfg.DataFile = a.dataFile
	}
	if a.dbURL != "" {
		cfg.DatabaseURL = a.dbURL
	}

	a.today = dateutil.Today()
	if a.todayArg != "" {
		if a.today, err = dateutil.Parse(a.todayArg, a.today); err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
	}

	logger := config.NewLogger(a.logLevel)
	logger.SetOutput(cmd.ErrOrStderr())

	a.repo, err = repository.NewStateRepository(cfg.StoreBackend, cfg.DataFile, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	a.tracker, err = service.NewTrackerService(a.repo, logger)
	if err != nil {
		_ = a.repo.Close()
		a.repo = nil
		return err
	}

	return nil
}

func (a *app) close() error {
	if a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}
