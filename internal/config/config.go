package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nomadweather/weather-dashboard/internal/store"
	"github.com/nomadweather/weather-dashboard/internal/weather/providers"
)

type AppConfig struct {
	// HTTPTimeout bounds every outbound provider call; the pipeline imposes
	// no timeout of its own beyond the transport's.
	HTTPTimeout time.Duration

	// DefaultCity is searched implicitly on startup.
	DefaultCity string

	// DefaultTheme stands in for the client's system light/dark preference
	// when no theme has been persisted yet.
	DefaultTheme store.Theme

	// ThemeFile is where the persisted theme flag lives.
	ThemeFile string

	// PreviewRefreshInterval controls how often destination previews are
	// reloaded in the background.
	PreviewRefreshInterval time.Duration

	// Upstream endpoints; overridable mainly for tests.
	GeocodingBaseURL string
	ForecastBaseURL  string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	refreshStr := getenvDefault("PREVIEW_REFRESH_INTERVAL", "15m")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PREVIEW_REFRESH_INTERVAL: %w", err)
	}
	cfg.PreviewRefreshInterval = refresh

	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "Paris")
	cfg.ThemeFile = getenvDefault("THEME_FILE", "theme.json")

	theme := store.Theme(getenvDefault("DEFAULT_THEME", string(store.ThemeLight)))
	if !theme.Valid() {
		return nil, fmt.Errorf("invalid DEFAULT_THEME: %q (want light or dark)", theme)
	}
	cfg.DefaultTheme = theme

	cfg.GeocodingBaseURL = getenvDefault("GEOCODING_BASE_URL", providers.DefaultGeocodingBaseURL)
	cfg.ForecastBaseURL = getenvDefault("FORECAST_BASE_URL", providers.DefaultForecastBaseURL)

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
