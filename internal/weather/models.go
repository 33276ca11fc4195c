package weather

import (
	"time"
)

// Unit is the temperature display unit selected for a view.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// Coordinates is a transient position used to drive one refresh of a view.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentConditions is the normalized "right now" part of a snapshot.
type CurrentConditions struct {
	Temp                 int     `json:"temp"`
	Humidity             float64 `json:"humidity"`
	Pressure             float64 `json:"pressure"`
	WindSpeed            float64 `json:"windSpeed"`
	WindDirection        string  `json:"windDirection"`
	ConditionDescription string  `json:"conditionDescription"`
	Condition            string  `json:"condition"`
}

// DayOutlook is the short forecast shown for a future day.
type DayOutlook struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

// WeatherSnapshot is the display-ready weather for one location.
// All three temps are expressed in Unit.
type WeatherSnapshot struct {
	Unit     Unit              `json:"unit"`
	Current  CurrentConditions `json:"current"`
	Tomorrow DayOutlook        `json:"tomorrow"`
	DayAfter DayOutlook        `json:"dayAfter"`
}

// Phase is the step of the view state machine a view is in.
type Phase string

const (
	PhaseUninitialized         Phase = "uninitialized"
	PhaseAcquiringLocation     Phase = "acquiring_location"
	PhaseCapabilityUnavailable Phase = "capability_unavailable"
	PhaseFetchingWeather       Phase = "fetching_weather"
	PhaseReady                 Phase = "ready"
	PhaseFetchFailed           Phase = "fetch_failed"
)

// PlaceStatus tracks the outcome of the last reverse geocoding lookup.
type PlaceStatus string

const (
	PlaceUnknown      PlaceStatus = "unknown"
	PlaceResolved     PlaceStatus = "resolved"
	PlaceLookupFailed PlaceStatus = "lookup_failed"
)

// NoticeKind classifies a user-visible notice.
type NoticeKind string

const (
	NoticeCapabilityUnavailable NoticeKind = "capability_unavailable"
	NoticeLookupFailed          NoticeKind = "lookup_failed"
	NoticeFetchFailed           NoticeKind = "fetch_failed"
)

// Notice is a message the presentation layer should show to the user.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// ViewState is everything a weather card displays. It is passed by value:
// transitions return a new ViewState and never modify their input. Snapshot
// is shared between copies and must be treated as immutable.
type ViewState struct {
	ID             string           `json:"id"`
	Phase          Phase            `json:"phase"`
	PlaceName      string           `json:"placeName"`
	PlaceStatus    PlaceStatus      `json:"placeStatus"`
	Coordinates    *Coordinates     `json:"coordinates,omitempty"`
	Snapshot       *WeatherSnapshot `json:"snapshot,omitempty"`
	Unit           Unit             `json:"unit"`
	InitialLoading bool             `json:"initialLoading"`
	LoadingCity    bool             `json:"loadingCity"`
	Notices        []Notice         `json:"notices,omitempty"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// NewViewState returns the state of a view that has not loaded anything yet.
func NewViewState(id string) ViewState {
	return ViewState{
		ID:             id,
		Phase:          PhaseUninitialized,
		PlaceStatus:    PlaceUnknown,
		Unit:           Celsius,
		InitialLoading: true,
		UpdatedAt:      time.Now().UTC(),
	}
}

// withNotice returns a copy of v with n appended to its notices.
func (v ViewState) withNotice(n Notice) ViewState {
	notices := make([]Notice, 0, len(v.Notices)+1)
	notices = append(notices, v.Notices...)
	v.Notices = append(notices, n)
	return v
}
