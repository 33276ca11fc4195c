package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENCAGE_API_KEY", "oc-secret")
	t.Setenv("OPENWEATHER_API_KEY", "ow-secret")
	t.Setenv("LOCATOR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WeatherLang != "pt_br" {
		t.Errorf("WeatherLang = %q, want pt_br", cfg.WeatherLang)
	}
	if cfg.Locator != LocatorIP {
		t.Errorf("Locator = %q, want %q", cfg.Locator, LocatorIP)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.ViewMaxAge != time.Hour || cfg.SweepInterval != 5*time.Minute {
		t.Errorf("retention = %v / %v", cfg.ViewMaxAge, cfg.SweepInterval)
	}

	s := cfg.String()
	if strings.Contains(s, "oc-secret") || strings.Contains(s, "ow-secret") {
		t.Errorf("String() leaks credentials: %s", s)
	}
}

func TestLoad_StaticLocator(t *testing.T) {
	t.Setenv("LOCATOR", "static")
	t.Setenv("LOCATION_LAT", "-23.55")
	t.Setenv("LOCATION_LON", "-46.63")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StaticLat != -23.55 || cfg.StaticLon != -46.63 {
		t.Errorf("static position = %v,%v", cfg.StaticLat, cfg.StaticLon)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown locator", env: map[string]string{"LOCATOR": "gps"}},
		{name: "static without position", env: map[string]string{"LOCATOR": "static", "LOCATION_LAT": "", "LOCATION_LON": ""}},
		{name: "latitude out of range", env: map[string]string{"LOCATOR": "static", "LOCATION_LAT": "91", "LOCATION_LON": "0"}},
		{name: "bad timeout", env: map[string]string{"LOCATOR": "none", "HTTP_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
