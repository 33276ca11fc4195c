package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-card/internal/weather"
)

// GooglePlaceSearcher implements weather.PlaceSearcher with the Google
// Geocoding API.
type GooglePlaceSearcher struct {
	geocode func(geocoder.Address) (geocoder.Location, error)
}

// NewGooglePlaceSearcher configures the geocoder package with apiKey.
// The key is package-global in the geocoder library, so only one searcher
// should be created per process.
func NewGooglePlaceSearcher(apiKey string) *GooglePlaceSearcher {
	geocoder.ApiKey = apiKey
	return &GooglePlaceSearcher{geocode: geocoder.Geocoding}
}

// Search resolves a free-text place such as "Curitiba, PR" to coordinates.
func (s *GooglePlaceSearcher) Search(ctx context.Context, query string) (weather.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.Coordinates{}, fmt.Errorf("%w: query cannot be empty", weather.ErrLookupFailed)
	}
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrLookupFailed, err)
	}

	// The whole query goes in City; the library joins the address parts
	// into a single free-text "address" parameter.
	loc, err := s.geocode(geocoder.Address{City: query})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: google geocoding %q: %v", weather.ErrLookupFailed, query, err)
	}

	return weather.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
}
