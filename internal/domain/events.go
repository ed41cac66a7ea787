package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted         EventType = "SearchStarted"
	EventSearchCompleted       EventType = "SearchCompleted"
	EventSearchFailed          EventType = "SearchFailed"
	EventFiltersChanged        EventType = "FiltersChanged"
	EventPageChanged           EventType = "PageChanged"
	EventSuggestionsReady      EventType = "SuggestionsReady"
	EventVehicleLoaded         EventType = "VehicleLoaded"
	EventVehicleNotFound       EventType = "VehicleNotFound"
	EventSimilarLoaded         EventType = "SimilarLoaded"
	EventFeaturedLoaded        EventType = "FeaturedLoaded"
	EventFavoriteToggled       EventType = "FavoriteToggled"
	EventRecentSearchesChanged EventType = "RecentSearchesChanged"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
	EventError                 EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when the controller issues a new evaluation
type SearchStartedEvent struct {
	Seq      uint64
	TraceID  string
	Criteria FilterCriteria
	Page     int
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when the latest evaluation finishes.
// Results carries a snapshot; subscribers must not mutate it.
type SearchCompletedEvent struct {
	Seq      uint64
	TraceID  string
	Criteria FilterCriteria
	Results  ResultPage
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when an evaluation fails upstream. The
// previous result page, if any, remains valid for display.
type SearchFailedEvent struct {
	Seq     uint64
	TraceID string
	Message string
	Err     error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// FiltersChangedEvent is emitted after any criteria mutation
type FiltersChangedEvent struct {
	Criteria FilterCriteria
	Page     int
}

func (e FiltersChangedEvent) Type() EventType { return EventFiltersChanged }

// PageChangedEvent is emitted when only the page number moves
type PageChangedEvent struct {
	Page int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// SuggestionsReadyEvent carries autocomplete entries for a query
type SuggestionsReadyEvent struct {
	Query       string
	Suggestions []Suggestion
}

func (e SuggestionsReadyEvent) Type() EventType { return EventSuggestionsReady }

// VehicleLoadedEvent is emitted when a detail lookup succeeds
type VehicleLoadedEvent struct {
	Vehicle Vehicle
}

func (e VehicleLoadedEvent) Type() EventType { return EventVehicleLoaded }

// VehicleNotFoundEvent is emitted when a detail lookup finds nothing.
// Absence is a valid outcome, not an error.
type VehicleNotFoundEvent struct {
	ID string
}

func (e VehicleNotFoundEvent) Type() EventType { return EventVehicleNotFound }

// SimilarLoadedEvent carries listings related to a detail view
type SimilarLoadedEvent struct {
	VehicleID string
	Similar   []Vehicle
}

func (e SimilarLoadedEvent) Type() EventType { return EventSimilarLoaded }

// FeaturedLoadedEvent carries the home screen's featured listings
type FeaturedLoadedEvent struct {
	Featured []Vehicle
}

func (e FeaturedLoadedEvent) Type() EventType { return EventFeaturedLoaded }

// FavoriteToggledEvent is emitted after a favorite marker flips
type FavoriteToggledEvent struct {
	VehicleID  string
	IsFavorite bool
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }

// RecentSearchesChangedEvent is emitted when the recent-search list changes
type RecentSearchesChangedEvent struct {
	Searches []string
}

func (e RecentSearchesChangedEvent) Type() EventType { return EventRecentSearchesChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	RecentSearches []string
	Favorites      []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs outside a search round-trip
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
