package app

import (
	"log"
	"net/http"

	"github.com/i474232898/weather-card/internal/config"
	"github.com/i474232898/weather-card/internal/weather"
	"github.com/i474232898/weather-card/internal/weather/providers"
)

// NewWeatherService wires the configured providers into a weather.Service.
func NewWeatherService(cfg *config.AppConfig, opts ...weather.Option) *weather.Service {
	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder := providers.NewOpenCageProvider(httpClient, cfg.OpenCageAPIKey)
	forecaster := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.WeatherLang)

	if cfg.GoogleGeocoderAPIKey != "" {
		opts = append(opts, weather.WithPlaceSearcher(providers.NewGooglePlaceSearcher(cfg.GoogleGeocoderAPIKey)))
	} else {
		log.Printf("INFO: GOOGLE_GEOCODER_API_KEY not set; place search disabled")
	}

	return weather.NewService(newLocator(cfg), geocoder, forecaster, opts...)
}

func newLocator(cfg *config.AppConfig) weather.Locator {
	switch cfg.Locator {
	case config.LocatorStatic:
		return providers.NewStaticLocator(cfg.StaticLat, cfg.StaticLon)
	case config.LocatorIP:
		return providers.NewIPLocator(cfg.HTTPTimeout)
	default:
		// No positioning capability.
		return nil
	}
}
