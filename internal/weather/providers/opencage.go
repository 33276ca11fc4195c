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

// API Docs: https://opencagedata.com/api
// Sample request: https://api.opencagedata.com/geocode/v1/json?q=40.7128+-74.006&key=KEY
const openCageBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCageProvider implements weather.ReverseGeocoder with OpenCage.
type OpenCageProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenCageProvider creates a reverse geocoder using apiKey.
func NewOpenCageProvider(client *http.Client, apiKey string) *OpenCageProvider {
	return &OpenCageProvider{
		name:    "opencage",
		apiKey:  apiKey,
		baseURL: openCageBaseURL,
		client:  client,
		circuit: newCircuitBreaker("opencage"),
	}
}

// WithBaseURL points the provider at another endpoint, e.g. a test server.
func (p *OpenCageProvider) WithBaseURL(u string) *OpenCageProvider {
	p.baseURL = u
	return p
}

// Name identifies the provider in logs and errors.
func (p *OpenCageProvider) Name() string {
	return p.name
}

type openCageComponents struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	StateCode    string `json:"state_code"`
	State        string `json:"state"`
}

type openCageResponse struct {
	Results []struct {
		Components openCageComponents `json:"components"`
	} `json:"results"`
}

// Reverse returns "{city}, {state_code}, {state}" for coords.
func (p *OpenCageProvider) Reverse(ctx context.Context, coords weather.Coordinates) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%w: opencage %v", weather.ErrLookupFailed, errMissingKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		// Encodes as "lat+lng".
		values.Set("q", formatCoord(coords.Latitude)+" "+formatCoord(coords.Longitude))
		values.Set("key", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", weather.ErrLookupFailed, p.name, err)
	}
	defer resp.Body.Close()

	var payload openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %s: decode response: %v", weather.ErrLookupFailed, p.name, err)
	}

	if len(payload.Results) == 0 {
		return "", fmt.Errorf("%w: %s: no results", weather.ErrLookupFailed, p.name)
	}

	name, err := formatPlaceName(payload.Results[0].Components)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", weather.ErrLookupFailed, p.name, err)
	}
	return name, nil
}

func formatPlaceName(c openCageComponents) (string, error) {
	locality := firstNonEmpty(c.City, c.Town, c.Village, c.Municipality)
	if locality == "" {
		return "", fmt.Errorf("result has no locality")
	}
	if c.StateCode == "" || c.State == "" {
		return "", fmt.Errorf("result has no state")
	}
	return fmt.Sprintf("%s, %s, %s", locality, c.StateCode, c.State), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
