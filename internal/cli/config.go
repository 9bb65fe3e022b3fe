package cli

import (
	"os"
	"path/filepath"
	"time"
)

// Store backends accepted by --store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config holds the flags shared by every command.
type Config struct {
	Store     string
	StorePath string
	RedisURL  string
	Tick      time.Duration // overrides the block drop interval when non-zero
	LogLevel  string
	LogFormat string
	LogFile   string // terminal play logs here; empty discards
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Store:     getEnvOrDefault("ARCADE_STORE", StoreFile),
		StorePath: getEnvOrDefault("ARCADE_STORE_PATH", defaultStorePath()),
		RedisURL:  getEnvOrDefault("ARCADE_REDIS_URL", "redis://localhost:6379/0"),
		LogLevel:  getEnvOrDefault("ARCADE_LOG_LEVEL", "info"),
		LogFormat: "text",
		LogFile:   os.Getenv("ARCADE_LOG_FILE"),
	}
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scores.json"
	}
	return filepath.Join(dir, "blockfall", "scores.json")
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
