package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultDataFile    = "tracker_data.json"
	defaultDatabaseURL = "tracker.db"
)

type BotConfig struct {
	TelegramToken string
	OwnerChatID   int64
	StoreBackend  string
	DataFile      string
	DatabaseURL   string
	LogLevel      string
	Debug         bool
}

var instance *BotConfig
var once sync.Once

// GetBotConfig загружает конфиг бота один раз и завершает процесс, если он неполный
func GetBotConfig() *BotConfig {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logrus.Fatalf("error loading env variables: %s", err.Error())
		}

		if err := cfg.ValidateForBot(); err != nil {
			logrus.Fatal(err)
		}

		instance = cfg
	})

	return instance
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*BotConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &BotConfig{
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		OwnerChatID:   getEnvAsInt("OWNER_CHAT_ID", 0),
		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", "json")),
		DataFile:      getEnv("DATA_FILE", defaultDataFile),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Debug:         getEnvAsBool("BOT_DEBUG", false),
	}

	switch cfg.StoreBackend {
	case "json", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// ValidateForBot проверяет настройки, без которых бот не запустится
func (c *BotConfig) ValidateForBot() error {
	if c.TelegramToken == "" {
		return errors.New("could not get bot token")
	}
	if c.OwnerChatID == 0 {
		return errors.New("could not get owner chat id")
	}
	return nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
