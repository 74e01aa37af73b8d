package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "OWNER_CHAT_ID", "STORE_BACKEND", "DATA_FILE", "DATABASE_URL", "LOG_LEVEL", "BOT_DEBUG"} {
		t.Setenv(key, "")
	}
	t.Setenv("STORE_BACKEND", "json")
	t.Setenv("DATA_FILE", defaultDataFile)
	t.Setenv("DATABASE_URL", defaultDatabaseURL)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.StoreBackend)
	assert.Equal(t, "tracker_data.json", cfg.DataFile)
	assert.Equal(t, "tracker.db", cfg.DatabaseURL)
	assert.Zero(t, cfg.OwnerChatID)
	assert.False(t, cfg.Debug)
	assert.Error(t, cfg.ValidateForBot())
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_CHAT_ID", "-100500")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("DATA_FILE", "/tmp/data.json")
	t.Setenv("DATABASE_URL", "/tmp/tracker.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BOT_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &BotConfig{
		TelegramToken: "123:abc",
		OwnerChatID:   -100500,
		StoreBackend:  "sqlite",
		DataFile:      "/tmp/data.json",
		DatabaseURL:   "/tmp/tracker.db",
		LogLevel:      "debug",
		Debug:         true,
	}, cfg)
	assert.NoError(t, cfg.ValidateForBot())
}

func TestLoad_UnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateForBot(t *testing.T) {
	assert.EqualError(t, (&BotConfig{OwnerChatID: 1}).ValidateForBot(), "could not get bot token")
	assert.EqualError(t, (&BotConfig{TelegramToken: "t"}).ValidateForBot(), "could not get owner chat id")
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("loud").GetLevel())
}
