package providers

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/i474232898/weather-card/internal/weather"
)

// StaticLocator always reports the same configured position.
type StaticLocator struct {
	coords weather.Coordinates
}

// NewStaticLocator creates a locator fixed at the given position.
func NewStaticLocator(latitude, longitude float64) *StaticLocator {
	return &StaticLocator{coords: weather.Coordinates{Latitude: latitude, Longitude: longitude}}
}

// Locate always returns the configured position.
func (l *StaticLocator) Locate(ctx context.Context) (weather.Coordinates, error) {
	return l.coords, nil
}

// API Docs: https://ip-api.com/docs/api:json
const ipAPIBaseURL = "http://ip-api.com"

// IPLocator positions the caller by IP address using ip-api.com.
type IPLocator struct {
	client *resty.Client
}

func NewIPLocator(timeout time.Duration) *IPLocator {
	client := resty.New().
		SetBaseURL(ipAPIBaseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &IPLocator{client: client}
}

// WithBaseURL points the locator at another endpoint, e.g. a test server.
func (l *IPLocator) WithBaseURL(u string) *IPLocator {
	l.client.SetBaseURL(u)
	return l
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate resolves the client IP on ctx. Loopback and private addresses are
// not routable, so the lookup falls back to the server's own public address.
func (l *IPLocator) Locate(ctx context.Context) (weather.Coordinates, error) {
	ip := weather.ClientIP(ctx)
	if isLocalIP(ip) {
		ip = ""
	}

	var payload ipAPIResponse
	resp, err := l.client.R().
		SetContext(ctx).
		SetPathParam("ip", ip).
		SetQueryParam("fields", "status,message,lat,lon").
		SetResult(&payload).
		Get("/json/{ip}")
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: ip lookup: %v", weather.ErrCapabilityUnavailable, err)
	}
	if resp.IsError() {
		return weather.Coordinates{}, fmt.Errorf("%w: ip lookup returned status %d", weather.ErrCapabilityUnavailable, resp.StatusCode())
	}
	if payload.Status != "success" {
		return weather.Coordinates{}, fmt.Errorf("%w: ip lookup: %s", weather.ErrCapabilityUnavailable, payload.Message)
	}

	return weather.Coordinates{Latitude: payload.Lat, Longitude: payload.Lon}, nil
}

func isLocalIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast() || parsed.IsUnspecified()
}
