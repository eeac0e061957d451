package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	GeoJSONPath string `env:"GEOJSON_PATH" default:"urss.geojson"`

	ScraperBaseURL string        `env:"SCRAPER_BASE_URL" default:"https://prozhito.org"`
	ScraperTimeout time.Duration `env:"SCRAPER_TIMEOUT" default:"10s"`

	CacheTTL time.Duration `env:"CACHE_TTL" default:"24h"`

	// MLBatchSize is carried for the scoring pipeline; the rule-based
	// scorer does not batch, so it only shows up in startup logging.
	MLBatchSize int `env:"ML_BATCH_SIZE" default:"10"`

	CORSOrigins string `env:"CORS_ORIGINS" default:"http://localhost:5173,http://localhost:4173"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.ScraperTimeout <= 0 {
		return fmt.Errorf("SCRAPER_TIMEOUT must be positive")
	}
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if cfg.MLBatchSize <= 0 {
		return fmt.Errorf("ML_BATCH_SIZE must be positive")
	}
	return nil
}

// CORSOriginList splits the configured origins on commas, dropping
// empty segments.
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
