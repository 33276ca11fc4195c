package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-card/internal/weather"
)

func TestGooglePlaceSearcher_Search(t *testing.T) {
	var gotAddress geocoder.Address
	s := &GooglePlaceSearcher{geocode: func(a geocoder.Address) (geocoder.Location, error) {
		gotAddress = a
		return geocoder.Location{Latitude: -25.43, Longitude: -49.27}, nil
	}}

	got, err := s.Search(context.Background(), "  Curitiba, PR ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (weather.Coordinates{Latitude: -25.43, Longitude: -49.27}) {
		t.Errorf("Search() = %+v", got)
	}
	if gotAddress.City != "Curitiba, PR" {
		t.Errorf("geocoded address = %+v", gotAddress)
	}
}

func TestGooglePlaceSearcher_SearchFailures(t *testing.T) {
	s := &GooglePlaceSearcher{geocode: func(a geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, errors.New("ZERO_RESULTS")
	}}

	if _, err := s.Search(context.Background(), "nowhere"); !errors.Is(err, weather.ErrLookupFailed) {
		t.Errorf("err = %v, want ErrLookupFailed", err)
	}
	if _, err := s.Search(context.Background(), "   "); !errors.Is(err, weather.ErrLookupFailed) {
		t.Errorf("empty query: err = %v, want ErrLookupFailed", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Search(ctx, "Curitiba"); !errors.Is(err, weather.ErrLookupFailed) {
		t.Errorf("cancelled: err = %v, want ErrLookupFailed", err)
	}
}
