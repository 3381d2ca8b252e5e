package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// DefaultUpdateURL is the release manifest published with the desktop builds.
const DefaultUpdateURL = "https://lcarotenuto.github.io/questionario-ampasilava/latest.json"

// Config holds all application settings, populated from environment variables.
type Config struct {
	DBPath          string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Record sync to Kafka.
	SyncEnabled        bool
	KafkaBrokers       []string
	KafkaTopic         string
	BatchSize          int
	BatchFlushInterval time.Duration

	// Update check.
	UpdateURL     string
	UpdateTimeout time.Duration
	UpdateDir     string
}

// LoadDotEnv reads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	updateTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("UPDATE_TIMEOUT", "20s"))
	if err != nil || updateTimeout <= 0 {
		return nil, errors.New("invalid UPDATE_TIMEOUT")
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = sharedcfg.ParseBrokers(raw)
	}
	syncEnabled := len(brokers) > 0
	if v := os.Getenv("SYNC_ENABLED"); v != "" {
		syncEnabled = v == "true"
	}

	cfg := &Config{
		DBPath:          sharedcfg.EnvOrDefault("DB_PATH", "questionario.sqlite3"),
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		SyncEnabled:        syncEnabled,
		KafkaBrokers:       brokers,
		KafkaTopic:         sharedcfg.EnvOrDefault("KAFKA_TOPIC", "survey-records"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		UpdateURL:     sharedcfg.EnvOrDefault("UPDATE_URL", DefaultUpdateURL),
		UpdateTimeout: updateTimeout,
		UpdateDir:     sharedcfg.EnvOrDefault("UPDATE_DIR", defaultUpdateDir()),
	}

	if cfg.DBPath == "" {
		return nil, errors.New("DB_PATH is required")
	}
	if cfg.SyncEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("SYNC_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.SyncEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when sync is enabled")
	}

	return cfg, nil
}

func defaultUpdateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "Questionario_updates")
	}
	return filepath.Join(home, "Downloads", "Questionario_updates")
}
