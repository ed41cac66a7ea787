package state

import (
	"sort"

	"carbitrage/internal/domain"
)

// Screen identifies which top-level view is shown
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSearch
	ScreenDetail
)

// AppState contains all the application state
type AppState struct {
	// Navigation
	Screen       Screen
	PrevScreen   Screen
	SelectedIndex int // highlighted result on the search screen

	// Result data
	Results     *domain.ResultPage // nil before the first search completes
	Featured    []domain.Vehicle   // home screen listings
	LastTraceID string

	// Detail data
	Detail        *domain.Vehicle
	DetailMissing string // id that came back not found, "" otherwise
	Similar       []domain.Vehicle

	// Autocomplete state
	SearchInput      string // text the user has typed so far
	Suggestions      []domain.Suggestion
	SuggestionIndex  int  // -1 when nothing is highlighted
	AutocompleteOpen bool

	// Filter panel state
	FilterPanelOpen  bool
	FilterFieldIndex int

	// Sort picker state
	SortOptionIndex int

	// Favorites and recents
	Favorites      map[string]bool
	RecentSearches []string

	// UI state
	ViewMode       string // "grid" or "list"
	ViewportOffset int
	Width          int
	Height         int
	ShowHelp       bool
	Searching      bool // a round trip is in flight
	LoadingDetail  bool
	StatusMessage  string
	ErrorMessage   string // shown alongside the previous results
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Screen:          ScreenHome,
		SuggestionIndex: -1,
		Favorites:       make(map[string]bool),
		RecentSearches:  make([]string, 0),
		ViewMode:        "grid",
		Height:          24,
		Width:           80,
	}
}

// ResultCount returns how many records the current page holds
func (s *AppState) ResultCount() int {
	if s.Results == nil {
		return 0
	}
	return len(s.Results.Vehicles)
}

// SelectedVehicle returns the highlighted record on the search screen
func (s *AppState) SelectedVehicle() (domain.Vehicle, bool) {
	if s.Results == nil || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results.Vehicles) {
		return domain.Vehicle{}, false
	}
	return s.Results.Vehicles[s.SelectedIndex], true
}

// ClampSelection keeps the highlight inside the current page
func (s *AppState) ClampSelection() {
	if n := s.ResultCount(); s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// ToggleFavorite flips the favorite marker and reports the new value
func (s *AppState) ToggleFavorite(id string) bool {
	if s.Favorites[id] {
		delete(s.Favorites, id)
		return false
	}
	s.Favorites[id] = true
	return true
}

// FavoriteIDs returns favorites in a deterministic order for persistence
func (s *AppState) FavoriteIDs() []string {
	out := make([]string, 0, len(s.Favorites))
	for id := range s.Favorites {
		out = append(out, id)
	}
	// map order is random; keep the persisted file stable
	sort.Strings(out)
	return out
}

// CloseOverlays dismisses the autocomplete, filter panel and help
func (s *AppState) CloseOverlays() {
	s.AutocompleteOpen = false
	s.SuggestionIndex = -1
	s.FilterPanelOpen = false
	s.ShowHelp = false
}
