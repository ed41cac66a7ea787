package viewmodels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"carbitrage/internal/domain"
	"carbitrage/internal/ui/input/modes"
	"carbitrage/internal/ui/state"
	"carbitrage/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	width     int
	height    int
	spinner   string
	textInput *textinput.Model
	criteria  domain.FilterCriteria
	sortOpen  bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState) *ViewModel {
	return &ViewModel{state: appState}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetTextInput attaches the search box, nil when inactive
func (vm *ViewModel) SetTextInput(ti *textinput.Model) {
	vm.textInput = ti
}

// SetCriteria sets the criteria shown in the summary line and panel
func (vm *ViewModel) SetCriteria(c domain.FilterCriteria) {
	vm.criteria = c
}

// SetSortPickerOpen toggles the sort picker overlay
func (vm *ViewModel) SetSortPickerOpen(open bool) {
	vm.sortOpen = open
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	return views.ViewState{
		Width:  vm.width,
		Height: vm.height,
		Screen: views.Screen(s.Screen),

		Featured:       s.Featured,
		RecentSearches: s.RecentSearches,

		Results:          s.Results,
		Criteria:         vm.criteria,
		SelectedIndex:    s.SelectedIndex,
		ViewMode:         s.ViewMode,
		Searching:        s.Searching,
		Spinner:          vm.spinner,
		ErrorMessage:     s.ErrorMessage,
		FilterPanelOpen:  s.FilterPanelOpen,
		FilterFieldIndex: s.FilterFieldIndex,
		FilterFields:     vm.buildFilterFields(),
		SortPickerOpen:   vm.sortOpen,
		SortOptionIndex:  s.SortOptionIndex,
		SortOptions:      buildSortOptions(),

		Detail:        s.Detail,
		DetailMissing: s.DetailMissing,
		Similar:       s.Similar,
		LoadingDetail: s.LoadingDetail,

		SearchActive:     vm.textInput != nil,
		SearchInput:      vm.textInput,
		Suggestions:      s.Suggestions,
		SuggestionIndex:  s.SuggestionIndex,
		AutocompleteOpen: s.AutocompleteOpen,

		Favorites:     s.Favorites,
		StatusMessage: s.StatusMessage,
		ShowHelp:      s.ShowHelp,
		HelpText:      helpText,
	}
}

// buildFilterFields renders the current constraint of every panel field
func (vm *ViewModel) buildFilterFields() []views.FilterFieldView {
	c := vm.criteria
	facets := domain.Facets{}
	if vm.state.Results != nil {
		facets = vm.state.Results.Facets
	}

	out := make([]views.FilterFieldView, 0, len(modes.FilterFields))
	for _, f := range modes.FilterFields {
		var value string
		switch f.Key {
		case "make":
			value = setOrAll(c.Makes, facetValues(facets.Makes))
		case "bodyType":
			value = setOrAll(c.BodyTypes, facetValues(facets.BodyTypes))
		case "condition":
			value = setOrAll(c.Conditions, facetValues(facets.Conditions))
		case "fuelType":
			value = setOrAll(c.FuelTypes, facetValues(facets.FuelTypes))
		case "priceMax":
			value = boundOrAny(c.PriceMax, "$")
		case "yearMin":
			value = boundOrAny(c.YearMin, "")
		case "mileageMax":
			value = boundOrAny(c.MileageMax, "")
		}
		out = append(out, views.FilterFieldView{Name: f.Name, Value: value})
	}
	return out
}

func buildSortOptions() []views.SortOptionView {
	out := make([]views.SortOptionView, 0, len(modes.SortOptions))
	for _, o := range modes.SortOptions {
		out = append(out, views.SortOptionView{Name: o.Name, Description: o.Description})
	}
	return out
}

func setOrAll(selected, available []string) string {
	if len(selected) > 0 {
		return strings.Join(selected, ", ")
	}
	if len(available) > 0 {
		return "any (" + strings.Join(available, "/") + ")"
	}
	return "any"
}

func facetValues(fv []domain.FacetValue) []string {
	out := make([]string, 0, len(fv))
	for _, f := range fv {
		out = append(out, f.Value)
	}
	return out
}

func boundOrAny(n int, prefix string) string {
	if n <= 0 {
		return "any"
	}
	return fmt.Sprintf("%s%d", prefix, n)
}

const helpText = `Keys
  /        search box (type, ↑↓ pick a suggestion, enter submit)
  f        filter panel     s  sort         v  grid/list
  n / p    next/prev page   c  clear filters
  ↑↓ j k   move             enter  open listing
  *        toggle favorite  b/esc  back     H  home
  r        re-run search    q  quit`
