package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-card/internal/weather"
	"github.com/sony/gobreaker"
)

const (
	openWeatherBaseURL = "http://api.openweathermap.org/data/2.5/onecall"
	defaultLang        = "pt_br"
)

// OpenWeatherProvider implements weather.Forecaster with the OpenWeatherMap
// One Call API.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	lang    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates a provider; an empty lang means pt_br.
func NewOpenWeatherProvider(client *http.Client, apiKey, lang string) *OpenWeatherProvider {
	if lang == "" {
		lang = defaultLang
	}

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		lang:    lang,
		baseURL: openWeatherBaseURL,
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

// WithBaseURL points the provider at another endpoint, e.g. a test server.
func (p *OpenWeatherProvider) WithBaseURL(u string) *OpenWeatherProvider {
	p.baseURL = u
	return p
}

// Name identifies the provider in logs and errors.
func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type oneCallWeather struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type oneCallResponse struct {
	Current *struct {
		Temp      *float64         `json:"temp"`
		Humidity  *float64         `json:"humidity"`
		Pressure  *float64         `json:"pressure"`
		WindSpeed *float64         `json:"wind_speed"`
		WindDeg   *float64         `json:"wind_deg"`
		Weather   []oneCallWeather `json:"weather"`
	} `json:"current"`
	Daily []struct {
		Temp *struct {
			Day *float64 `json:"day"`
		} `json:"temp"`
		Weather []oneCallWeather `json:"weather"`
	} `json:"daily"`
}

// Forecast fetches current conditions and the next two days in Celsius.
// Any transport error or missing field yields weather.ErrFetchFailed.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, coords weather.Coordinates) (weather.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: openweather %v", weather.ErrFetchFailed, errMissingKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", formatCoord(coords.Latitude))
		values.Set("lon", formatCoord(coords.Longitude))
		values.Set("appid", p.apiKey)
		values.Set("lang", p.lang)
		values.Set("units", "metric")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %s: %v", weather.ErrFetchFailed, p.name, err)
	}
	defer resp.Body.Close()

	var payload oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %s: decode response: %v", weather.ErrFetchFailed, p.name, err)
	}

	snapshot, err := normalizeOneCall(payload)
	if err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %s: %v", weather.ErrFetchFailed, p.name, err)
	}
	return snapshot, nil
}

// normalizeOneCall builds a complete snapshot or fails; it never returns a
// partially filled one.
func normalizeOneCall(payload oneCallResponse) (weather.WeatherSnapshot, error) {
	cur := payload.Current
	if cur == nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("missing current conditions")
	}
	if len(cur.Weather) == 0 {
		return weather.WeatherSnapshot{}, fmt.Errorf("missing current weather condition")
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"temp", cur.Temp},
		{"humidity", cur.Humidity},
		{"pressure", cur.Pressure},
		{"wind_speed", cur.WindSpeed},
		{"wind_deg", cur.WindDeg},
	} {
		if f.value == nil {
			return weather.WeatherSnapshot{}, fmt.Errorf("missing current %s", f.name)
		}
	}

	tomorrow, err := dayOutlook(payload, 1)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}
	dayAfter, err := dayOutlook(payload, 2)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}

	return weather.WeatherSnapshot{
		Unit: weather.Celsius,
		Current: weather.CurrentConditions{
			Temp:                 weather.RoundTemp(*cur.Temp),
			Humidity:             *cur.Humidity,
			Pressure:             *cur.Pressure,
			WindSpeed:            *cur.WindSpeed,
			WindDirection:        weather.CompassDirection(*cur.WindDeg),
			ConditionDescription: cur.Weather[0].Description,
			Condition:            cur.Weather[0].Main,
		},
		Tomorrow: tomorrow,
		DayAfter: dayAfter,
	}, nil
}

func dayOutlook(payload oneCallResponse, index int) (weather.DayOutlook, error) {
	if len(payload.Daily) <= index {
		return weather.DayOutlook{}, fmt.Errorf("daily forecast has %d entries, need day %d", len(payload.Daily), index)
	}

	day := payload.Daily[index]
	if day.Temp == nil || day.Temp.Day == nil {
		return weather.DayOutlook{}, fmt.Errorf("missing temperature for day %d", index)
	}
	if len(day.Weather) == 0 {
		return weather.DayOutlook{}, fmt.Errorf("missing weather condition for day %d", index)
	}

	return weather.DayOutlook{
		Temp:      weather.RoundTemp(*day.Temp.Day),
		Condition: day.Weather[0].Main,
	}, nil
}
