package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Locator modes.
const (
	LocatorIP     = "ip"
	LocatorStatic = "static"
	LocatorNone   = "none"
)

type AppConfig struct {
	// API credentials. Never logged; see String.
	OpenCageAPIKey       string
	OpenWeatherAPIKey    string
	GoogleGeocoderAPIKey string

	// WeatherLang is the language of condition descriptions.
	WeatherLang string

	// HTTPTimeout bounds each outbound call at the transport level.
	HTTPTimeout time.Duration

	// Locator selects the positioning capability: ip, static or none.
	Locator   string
	StaticLat float64
	StaticLon float64

	// View session retention.
	ViewMaxCount  int           // max number of live views (0 = unlimited)
	ViewMaxAge    time.Duration // idle views older than this are swept
	SweepInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenCageAPIKey = os.Getenv("OPENCAGE_API_KEY")
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GoogleGeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")
	cfg.WeatherLang = getenvDefault("WEATHER_LANG", "pt_br")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.ViewMaxAge, err = getenvDuration("VIEW_MAX_AGE", "1h"); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getenvDuration("SWEEP_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	cfg.ViewMaxCount = getenvInt("VIEW_MAX_COUNT", 1000)
	cfg.Port = getenvDefault("PORT", "8080")

	if err := loadLocator(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadLocator(cfg *AppConfig) error {
	cfg.Locator = strings.ToLower(getenvDefault("LOCATOR", LocatorIP))

	switch cfg.Locator {
	case LocatorIP, LocatorNone:
		return nil
	case LocatorStatic:
		lat, err := getenvFloat("LOCATION_LAT", -90, 90)
		if err != nil {
			return err
		}
		lon, err := getenvFloat("LOCATION_LON", -180, 180)
		if err != nil {
			return err
		}
		cfg.StaticLat, cfg.StaticLon = lat, lon
		return nil
	default:
		return fmt.Errorf("invalid LOCATOR %q: want ip, static or none", cfg.Locator)
	}
}

// String describes the configuration with credentials redacted.
func (c *AppConfig) String() string {
	return fmt.Sprintf(
		"locator=%s lang=%s timeout=%s views(max=%d age=%s sweep=%s) port=%s opencage=%s openweather=%s google=%s",
		c.Locator, c.WeatherLang, c.HTTPTimeout, c.ViewMaxCount, c.ViewMaxAge, c.SweepInterval, c.Port,
		redact(c.OpenCageAPIKey), redact(c.OpenWeatherAPIKey), redact(c.GoogleGeocoderAPIKey),
	)
}

func redact(secret string) string {
	if secret == "" {
		return "unset"
	}
	return "set"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvFloat(key string, min, max float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required when LOCATOR=static", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < min || f > max {
		return 0, fmt.Errorf("invalid %s: %v out of range [%v, %v]", key, f, min, max)
	}
	return f, nil
}
