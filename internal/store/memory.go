package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/i474232898/weather-card/internal/weather"
)

var (
	// ErrNotFound is returned when no view exists for a given ID.
	ErrNotFound = errors.New("view not found")
)

// MemoryStore is a concurrency-safe in-memory store of view states. Views
// live only as long as a client keeps using them; nothing is persisted.
type MemoryStore struct {
	mu sync.RWMutex

	// key: view ID
	views map[string]weather.ViewState

	// retention configuration
	maxViews int           // max number of live views (0 = unlimited)
	maxAge   time.Duration // views idle for longer are swept (0 = unlimited)
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxViews is <= 0, it is treated as unlimited.
func NewMemoryStore(maxViews int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		views:    make(map[string]weather.ViewState),
		maxViews: maxViews,
		maxAge:   maxAge,
	}
}

// Save stores v under its ID, replacing any previous state, and evicts the
// least recently updated views when over capacity.
func (s *MemoryStore) Save(v weather.ViewState) {
	if v.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.views[v.ID] = v

	if s.maxViews > 0 && len(s.views) > s.maxViews {
		s.evictOldestLocked(len(s.views) - s.maxViews)
	}
}

// Update replaces the state of an existing view. It reports false, storing
// nothing, when the view has been deleted or swept in the meantime.
func (s *MemoryStore) Update(v weather.ViewState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[v.ID]; !ok {
		return false
	}
	s.views[v.ID] = v
	return true
}

// Get returns the current state of a view.
func (s *MemoryStore) Get(id string) (weather.ViewState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.views[id]
	if !ok {
		return weather.ViewState{}, ErrNotFound
	}
	return v, nil
}

// Delete removes a view.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[id]; !ok {
		return ErrNotFound
	}
	delete(s.views, id)
	return nil
}

// Len returns the number of live views.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// Sweep removes views not updated since now-maxAge and returns how many
// were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	if s.maxAge <= 0 {
		return 0
	}

	cutoff := now.Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, v := range s.views {
		if v.UpdatedAt.Before(cutoff) {
			delete(s.views, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) evictOldestLocked(n int) {
	ids := make([]string, 0, len(s.views))
	for id := range s.views {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.views[ids[i]].UpdatedAt.Before(s.views[ids[j]].UpdatedAt)
	})

	for _, id := range ids[:n] {
		delete(s.views, id)
	}
}
