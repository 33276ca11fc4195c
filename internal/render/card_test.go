package render

import (
	"strings"
	"testing"

	"github.com/i474232898/weather-card/internal/weather"
)

func TestCard(t *testing.T) {
	v := weather.NewViewState("view")
	v.PlaceName = "New York, NY, New York"
	v.Snapshot = &weather.WeatherSnapshot{
		Unit: weather.Celsius,
		Current: weather.CurrentConditions{
			Temp: 22, Humidity: 64, Pressure: 1015, WindSpeed: 4.1,
			WindDirection: "E", ConditionDescription: "nublado", Condition: "Clouds",
		},
		Tomorrow: weather.DayOutlook{Temp: 25, Condition: "Rain"},
		DayAfter: weather.DayOutlook{Temp: 17, Condition: "Clear"},
	}

	out := Card(v)
	for _, want := range []string{"New York, NY, New York", "22°C", "nublado", "E", "25°C", "17°C"} {
		if !strings.Contains(out, want) {
			t.Errorf("card is missing %q:\n%s", want, out)
		}
	}
}

func TestCard_WithoutSnapshot(t *testing.T) {
	out := Card(weather.NewViewState("view"))
	if strings.Contains(out, "°") {
		t.Errorf("card without snapshot shows temperatures:\n%s", out)
	}
}

func TestConditionIcon(t *testing.T) {
	tests := map[string]string{
		"Thunderstorm": "⛈",
		"Drizzle":      "☂",
		"Snow":         "❄",
		"Clouds":       "☁",
		"Clear":        "☀",
		"Mist":         "≋",
		"":             "·",
	}
	for condition, want := range tests {
		if got := conditionIcon(condition); got != want {
			t.Errorf("conditionIcon(%q) = %q, want %q", condition, got, want)
		}
	}
}
