package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	Storage StorageConfig
	Sync    SyncConfig
	Logging LoggingConfig
}

type APIConfig struct {
	BaseURL        string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

type StorageConfig struct {
	DataDir   string `validate:"required"`
	TokenFile string `validate:"required"`
}

type SyncConfig struct {
	Interval    time.Duration `validate:"gt=0"`
	MinInterval time.Duration `validate:"gt=0"`
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	syncInterval, err := time.ParseDuration(getEnv("SYNC_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}

	minInterval, err := time.ParseDuration(getEnv("MIN_SYNC_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_SYNC_INTERVAL: %w", err)
	}

	dataDir := getEnv("FASTLANE_DATA_DIR", defaultDataDir())

	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnv("FASTLANE_API_URL", "http://localhost:8080"),
			RequestTimeout: requestTimeout,
		},
		Storage: StorageConfig{
			DataDir:   dataDir,
			TokenFile: getEnv("FASTLANE_TOKEN_FILE", filepath.Join(dataDir, "token")),
		},
		Sync: SyncConfig{
			Interval:    syncInterval,
			MinInterval: minInterval,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fastlane"
	}
	return filepath.Join(home, ".fastlane")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
