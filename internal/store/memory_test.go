package store

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/weather-card/internal/weather"
)

func viewAt(id string, updated time.Time) weather.ViewState {
	v := weather.NewViewState(id)
	v.UpdatedAt = updated
	return v
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryStore(10, time.Hour)
	now := time.Now().UTC()

	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: err = %v, want ErrNotFound", err)
	}

	s.Save(viewAt("a", now))
	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "a" {
		t.Errorf("Get() returned view %q", got.ID)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_UpdateDoesNotResurrect(t *testing.T) {
	s := NewMemoryStore(0, 0)
	v := viewAt("a", time.Now())

	if s.Update(v) {
		t.Fatal("Update stored a view that was never saved")
	}

	s.Save(v)
	v.PlaceName = "New York, NY, New York"
	if !s.Update(v) {
		t.Fatal("Update of an existing view failed")
	}
	got, _ := s.Get("a")
	if got.PlaceName != v.PlaceName {
		t.Errorf("PlaceName = %q, want %q", got.PlaceName, v.PlaceName)
	}

	_ = s.Delete("a")
	if s.Update(v) || s.Len() != 0 {
		t.Error("Update brought a deleted view back")
	}
}

func TestMemoryStore_EvictsOldestOverCapacity(t *testing.T) {
	s := NewMemoryStore(2, 0)
	base := time.Now().UTC()

	s.Save(viewAt("old", base))
	s.Save(viewAt("mid", base.Add(time.Minute)))
	s.Save(viewAt("new", base.Add(2*time.Minute)))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if _, err := s.Get("old"); !errors.Is(err, ErrNotFound) {
		t.Errorf("oldest view was not evicted")
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	now := time.Now().UTC()

	s.Save(viewAt("stale", now.Add(-2*time.Hour)))
	s.Save(viewAt("fresh", now.Add(-10*time.Minute)))

	if removed := s.Sweep(now); removed != 1 {
		t.Errorf("Sweep() removed %d, want 1", removed)
	}
	if _, err := s.Get("fresh"); err != nil {
		t.Errorf("fresh view swept: %v", err)
	}

	unlimited := NewMemoryStore(0, 0)
	unlimited.Save(viewAt("stale", now.Add(-48*time.Hour)))
	if removed := unlimited.Sweep(now); removed != 0 {
		t.Errorf("Sweep() without max age removed %d", removed)
	}
}
