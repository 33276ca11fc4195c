package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// Observer receives intermediate view states while a transition is in
// flight, e.g. to expose loading indicators to concurrent readers.
type Observer func(ViewState)

// Option configures optional Service collaborators.
type Option func(*Service)

// WithPlaceSearcher enables free-text place search.
func WithPlaceSearcher(p PlaceSearcher) Option {
	return func(s *Service) {
		s.searcher = p
	}
}

// WithObserver registers an observer for intermediate states.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// Service runs the location -> place name + weather pipeline for a view.
type Service struct {
	locator    Locator
	geocoder   ReverseGeocoder
	forecaster Forecaster
	searcher   PlaceSearcher
	observer   Observer
}

// NewService creates a new Service. A nil locator means the host has no
// positioning capability.
func NewService(locator Locator, geocoder ReverseGeocoder, forecaster Forecaster, opts ...Option) *Service {
	s := &Service{
		locator:    locator,
		geocoder:   geocoder,
		forecaster: forecaster,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CanSearchPlaces reports whether SearchPlace is configured.
func (s *Service) CanSearchPlaces() bool {
	return s.searcher != nil
}

// Load acquires the current position once and refreshes the view for it.
// When no position can be obtained no outbound lookup is attempted.
func (s *Service) Load(ctx context.Context, v ViewState) ViewState {
	v.Phase = PhaseAcquiringLocation
	v.Notices = nil
	v.UpdatedAt = time.Now().UTC()
	s.publish(v)

	if s.locator == nil {
		return s.capabilityUnavailable(v, ErrCapabilityUnavailable)
	}

	coords, err := s.locator.Locate(ctx)
	if err != nil {
		if !errors.Is(err, ErrCapabilityUnavailable) {
			err = fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
		}
		return s.capabilityUnavailable(v, err)
	}

	return s.refresh(ctx, v, coords)
}

// Search refreshes the view for explicit coordinates without repositioning.
func (s *Service) Search(ctx context.Context, v ViewState, coords Coordinates) ViewState {
	v.Notices = nil
	return s.refresh(ctx, v, coords)
}

// SearchPlace resolves query to coordinates and refreshes the view for them.
// On failure the returned state is v plus a lookup notice.
func (s *Service) SearchPlace(ctx context.Context, v ViewState, query string) (ViewState, error) {
	v.Notices = nil

	if s.searcher == nil {
		err := fmt.Errorf("%w: place search is not configured", ErrLookupFailed)
		return v.withNotice(NoticeFor(err)), err
	}

	coords, err := s.searcher.Search(ctx, query)
	if err != nil {
		if !errors.Is(err, ErrLookupFailed) {
			err = fmt.Errorf("%w: %v", ErrLookupFailed, err)
		}
		log.Printf("place search failed for %q: %v", query, err)
		return v.withNotice(NoticeFor(err)), err
	}

	return s.refresh(ctx, v, coords), nil
}

func (s *Service) capabilityUnavailable(v ViewState, err error) ViewState {
	log.Printf("view %s: %v", v.ID, err)

	v.Phase = PhaseCapabilityUnavailable
	v.InitialLoading = false
	v.UpdatedAt = time.Now().UTC()
	v = v.withNotice(NoticeFor(err))
	s.publish(v)
	return v
}

// refresh looks up the place name and the weather for coords concurrently.
// The two calls share nothing; each writes its own result slot and the new
// state is composed after both finish.
func (s *Service) refresh(ctx context.Context, v ViewState, coords Coordinates) (out ViewState) {
	v.Phase = PhaseFetchingWeather
	v.Coordinates = &coords
	v.LoadingCity = true
	v.UpdatedAt = time.Now().UTC()
	s.publish(v)

	out = v
	defer func() {
		out.LoadingCity = false
		out.UpdatedAt = time.Now().UTC()
		s.publish(out)
	}()

	var (
		wg       sync.WaitGroup
		place    string
		placeErr error
		snapshot WeatherSnapshot
		fetchErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		place, placeErr = s.lookupPlace(ctx, coords)
	}()

	go func() {
		defer wg.Done()
		snapshot, fetchErr = s.fetchWeather(ctx, coords)
	}()

	wg.Wait()

	if placeErr != nil {
		log.Printf("view %s: %v", v.ID, placeErr)
		out.PlaceName = ""
		out.PlaceStatus = PlaceLookupFailed
		out = out.withNotice(NoticeFor(placeErr))
	} else {
		out.PlaceName = place
		out.PlaceStatus = PlaceResolved
	}

	// Weather terminating, successfully or not, ends the initial load.
	out.InitialLoading = false

	if fetchErr != nil {
		log.Printf("view %s: %v", v.ID, fetchErr)
		out.Phase = PhaseFetchFailed
		out.Snapshot = nil
		out = out.withNotice(NoticeFor(fetchErr))
		return out
	}

	converted := snapshot.InUnit(out.Unit)
	out.Snapshot = &converted
	out.Phase = PhaseReady
	return out
}

func (s *Service) lookupPlace(ctx context.Context, coords Coordinates) (string, error) {
	if s.geocoder == nil {
		return "", fmt.Errorf("%w: no reverse geocoder configured", ErrLookupFailed)
	}

	place, err := s.geocoder.Reverse(ctx, coords)
	if err != nil {
		if !errors.Is(err, ErrLookupFailed) {
			err = fmt.Errorf("%w: %v", ErrLookupFailed, err)
		}
		return "", err
	}
	if place == "" {
		return "", fmt.Errorf("%w: empty place name", ErrLookupFailed)
	}
	return place, nil
}

func (s *Service) fetchWeather(ctx context.Context, coords Coordinates) (WeatherSnapshot, error) {
	if s.forecaster == nil {
		return WeatherSnapshot{}, fmt.Errorf("%w: no forecaster configured", ErrFetchFailed)
	}

	snapshot, err := s.forecaster.Forecast(ctx, coords)
	if err != nil {
		if !errors.Is(err, ErrFetchFailed) {
			err = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return WeatherSnapshot{}, err
	}
	if snapshot.Unit == "" {
		snapshot.Unit = Celsius
	}
	return snapshot, nil
}

func (s *Service) publish(v ViewState) {
	if s.observer != nil {
		s.observer(v)
	}
}
