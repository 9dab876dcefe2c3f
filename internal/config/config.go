package config

import (
	"fmt"
	"os"
	"time"

	"wot-tracker/internal/constants"
	"wot-tracker/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type Config struct {
	WGAppID    string
	WGBaseURL  string
	DBPath     string
	ServerPort string
	LogLevel   string
	CacheTTL   time.Duration
}

func Load() (*Config, error) {
	// Bootstrap logger; the leveled app logger is built from LogLevel once
	// the config is loaded.
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		WGAppID:    getEnv("WG_APP_ID", ""),
		WGBaseURL:  getEnv("WG_API_BASE_URL", "https://api.worldoftanks.eu"),
		DBPath:     getEnv("DB_PATH", "wot.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CacheTTL:   getDurationEnv("STATS_CACHE_TTL", constants.StatsCacheTTL),
	}

	if cfg.WGAppID == "" {
		return nil, fmt.Errorf("WG_APP_ID is required")
	}

	log.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("wg_base_url", cfg.WGBaseURL).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

var Module = fx.Provide(Load)
