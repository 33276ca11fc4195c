package weather

import (
	"context"
	"errors"
)

var (
	// ErrCapabilityUnavailable is returned when no position can be obtained.
	ErrCapabilityUnavailable = errors.New("positioning capability unavailable")
	// ErrLookupFailed is returned when a place cannot be resolved.
	ErrLookupFailed = errors.New("place lookup failed")
	// ErrFetchFailed is returned when weather cannot be fetched or normalized.
	ErrFetchFailed = errors.New("weather fetch failed")
)

// User-facing messages, in the language the card is displayed in.
const (
	msgCapabilityUnavailable = "Não foi possível verificar sua localização. Por favor, atualize seu navegador."
	msgGenericFailure        = "Ocorreu um erro. Tente novamente."
)

// Locator is the host's positioning capability.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// ReverseGeocoder maps coordinates to a "city, state code, state" place name.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coords Coordinates) (string, error)
}

// Forecaster fetches current weather plus a two-day outlook, in Celsius.
type Forecaster interface {
	Forecast(ctx context.Context, coords Coordinates) (WeatherSnapshot, error)
}

// PlaceSearcher resolves a free-text place query to coordinates.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) (Coordinates, error)
}

type clientIPKey struct{}

// WithClientIP attaches the IP address of the party being located, for
// locators that position by IP.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the IP attached with WithClientIP, or "".
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// NoticeFor returns the user notice for a pipeline error.
func NoticeFor(err error) Notice {
	switch {
	case errors.Is(err, ErrCapabilityUnavailable):
		return Notice{Kind: NoticeCapabilityUnavailable, Message: msgCapabilityUnavailable}
	case errors.Is(err, ErrLookupFailed):
		return Notice{Kind: NoticeLookupFailed, Message: msgGenericFailure}
	default:
		return Notice{Kind: NoticeFetchFailed, Message: msgGenericFailure}
	}
}
