package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"vacation-tracker-bot/internal/config"
	"vacation-tracker-bot/internal/handler"
	"vacation-tracker-bot/internal/repository"
	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logger := config.NewLogger(cfg.LogLevel)
	logger.Info("Config initialized...")

	repo, err := repository.NewStateRepository(cfg.StoreBackend, cfg.DataFile, cfg.DatabaseURL, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open tracker storage")
	}

	// Поврежденные данные не перезаписываем, бот не стартует
	tracker, err := service.NewTrackerService(repo, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load tracker data")
	}

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken, cfg.Debug)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Telegram client")
	}

	logger.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, tracker, cfg, logger)

	// Настраиваем канал обновлений
	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Обновления обрабатываются по одному в этой горутине
	done := make(chan struct{})
	go func() {
		botHandler.HandleUpdates(updates)
		close(done)
	}()

	logger.WithField("store", cfg.StoreBackend).Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Bot.StopReceivingUpdates()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.Warn("Update loop did not stop in time")
	}

	if err := repo.Close(); err != nil {
		logger.WithError(err).Error("Error closing storage")
	}

	logger.Info("Bot stopped gracefully")
}
