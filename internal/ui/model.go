// Package ui is the terminal front end: a bubbletea model that turns
// key presses into search state mutations and domain events into
// rendered screens.
package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"carbitrage/internal/catalog"
	"carbitrage/internal/config"
	"carbitrage/internal/domain"
	"carbitrage/internal/eventbus"
	"carbitrage/internal/query"
	"carbitrage/internal/search"
	"carbitrage/internal/suggest"
	"carbitrage/internal/ui/input"
	"carbitrage/internal/ui/input/modes"
	"carbitrage/internal/ui/input/types"
	"carbitrage/internal/ui/state"
	"carbitrage/internal/ui/viewmodels"
	"carbitrage/internal/ui/views"
)

// SuggestDebounce is how long typing must pause before suggestions update
const SuggestDebounce = 300 * time.Millisecond

const (
	featuredLimit = 6
	similarLimit  = 4
	detailTimeout = 5 * time.Second
)

// Deps are the collaborators the model needs
type Deps struct {
	Bus        eventbus.EventBus
	Controller *search.Controller
	Client     *catalog.Client
	Store      *catalog.Store
	Index      *suggest.Index
	Recents    *suggest.Recents
	ConfigSvc  config.ConfigService
	Config     *config.Config
}

// Model is the bubbletea model for the whole application
type Model struct {
	deps     Deps
	state    *state.AppState
	handler  *input.Handler
	vm       *viewmodels.ViewModel
	renderer *views.Renderer
	spinner  spinner.Model

	catalogFacets domain.Facets
	debounceSeq   uint64
}

// NewModel creates the model and seeds state from the loaded config
func NewModel(deps Deps) *Model {
	s := state.NewAppState()
	// A deep link lands the user straight on the results screen
	if deps.Controller != nil && !deps.Controller.Criteria().IsZero() {
		s.Screen = state.ScreenSearch
	}
	if deps.Config != nil {
		s.ViewMode = deps.Config.UISettings.ViewMode
		s.RecentSearches = deps.Recents.List()
		for _, id := range deps.Config.Favorites {
			s.Favorites[id] = true
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		deps:          deps,
		state:         s,
		handler:       input.New(),
		vm:            viewmodels.NewViewModel(s),
		renderer:      views.NewRenderer(),
		spinner:       sp,
		catalogFacets: query.ComputeFacets(deps.Store.All()),
	}
}

// Init starts the spinner and kicks off the home screen load
func (m *Model) Init() tea.Cmd {
	m.loadFeatured()
	return m.spinner.Tick
}

// Update is the single message loop
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounceMsg:
		return m.handleDebounce(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case quitMsg:
		if msg.saveConfig {
			m.saveConfig()
		}
		return m, tea.Quit
	}

	if cmd := m.handler.Update(msg); cmd != nil {
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := &input.ModelContext{
		State:       m.state,
		CurrentSort: string(m.deps.Controller.Criteria().SortBy),
	}

	wasSearch := m.handler.CurrentMode() == types.ModeSearch
	actions, cmd := m.handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if c := m.processAction(action); c != nil {
			cmds = append(cmds, c)
		}
	}

	// Entering search mode opens the dropdown with recent searches
	isSearch := m.handler.CurrentMode() == types.ModeSearch
	if isSearch && !wasSearch {
		m.state.SearchInput = ""
		m.state.AutocompleteOpen = true
		m.state.SuggestionIndex = -1
		m.state.Suggestions = m.deps.Recents.Suggestions(suggest.RecentLimit)
	}
	if !isSearch && wasSearch {
		m.state.AutocompleteOpen = false
		m.state.SuggestionIndex = -1
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.navigate(a.Direction)

	case types.UpdateTextAction:
		return m.onSearchTextChanged(a.Text)

	case types.SubmitTextAction:
		m.submitSearch(a.Text)

	case types.CancelTextAction:
		m.state.AutocompleteOpen = false
		m.state.SuggestionIndex = -1

	case types.SuggestionNavigateAction:
		m.moveSuggestion(a.Direction)

	case types.AcceptSuggestionAction:
		return m.acceptSuggestion()

	case types.OpenSearchAction:
		m.state.Screen = state.ScreenSearch

	case types.OpenDetailAction:
		m.openDetail(a.VehicleID)

	case types.GoBackAction:
		m.goBack()

	case types.GoHomeAction:
		m.state.CloseOverlays()
		m.state.Screen = state.ScreenHome
		m.state.SelectedIndex = 0
		if len(m.state.Featured) == 0 {
			m.loadFeatured()
		}

	case types.NextPageAction:
		m.deps.Controller.NextPage()

	case types.PrevPageAction:
		m.deps.Controller.PrevPage()

	case types.ToggleViewModeAction:
		if m.state.ViewMode == "grid" {
			m.state.ViewMode = "list"
		} else {
			m.state.ViewMode = "grid"
		}

	case types.ToggleFavoriteAction:
		m.toggleFavorite(a.VehicleID)

	case types.ToggleFilterPanelAction:
		m.state.FilterPanelOpen = !m.state.FilterPanelOpen
		m.state.FilterFieldIndex = 0

	case types.FilterFieldNavigateAction:
		m.moveFilterField(a.Direction)

	case types.FilterAdjustAction:
		m.adjustFilter(a.Direction)

	case types.FilterToggleValueAction:
		m.adjustFilter("right")

	case types.ClearFiltersAction:
		m.deps.Controller.ClearFilters()
		m.state.SelectedIndex = 0

	case types.SortByAction:
		m.applySort(a.Key)

	case types.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case types.RefreshAction:
		m.deps.Controller.Search()

	case types.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case types.ClearRecentsAction:
		m.deps.Recents.Clear()
		m.state.RecentSearches = nil
		m.deps.Bus.Publish(eventbus.RecentSearchesChangedEvent{Searches: nil})

	case types.QuitAction:
		if a.Force {
			return tea.Quit
		}
		save := m.deps.Config != nil && m.deps.Config.UISettings.AutosaveOnExit
		return func() tea.Msg { return quitMsg{saveConfig: save} }
	}
	return nil
}

// navigate moves the highlight on whichever screen is active
func (m *Model) navigate(direction string) {
	var count int
	step := 1
	switch m.state.Screen {
	case state.ScreenHome:
		count = len(m.state.Featured)
	case state.ScreenSearch:
		count = m.state.ResultCount()
		if m.state.ViewMode == "grid" {
			step = 2
		}
	case state.ScreenDetail:
		count = len(m.state.Similar)
	}
	if count == 0 {
		return
	}

	switch direction {
	case "up":
		m.state.SelectedIndex -= step
	case "down":
		m.state.SelectedIndex += step
	case "left":
		m.state.SelectedIndex--
	case "right":
		m.state.SelectedIndex++
	case "home":
		m.state.SelectedIndex = 0
	case "end":
		m.state.SelectedIndex = count - 1
	}

	if m.state.SelectedIndex < 0 {
		m.state.SelectedIndex = 0
	}
	if m.state.SelectedIndex >= count {
		m.state.SelectedIndex = count - 1
	}
}

// onSearchTextChanged arms the suggestion debounce for the new text
func (m *Model) onSearchTextChanged(text string) tea.Cmd {
	m.state.SearchInput = text
	m.state.AutocompleteOpen = true
	m.state.SuggestionIndex = -1

	if text == "" {
		m.state.Suggestions = m.deps.Recents.Suggestions(suggest.RecentLimit)
		return nil
	}

	m.debounceSeq++
	seq := m.debounceSeq
	return tea.Tick(SuggestDebounce, func(time.Time) tea.Msg {
		return debounceMsg{Seq: seq, Input: text}
	})
}

// handleDebounce computes suggestions once typing has paused. Timers
// armed by earlier keystrokes carry a stale Seq and are dropped.
func (m *Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.debounceSeq {
		return m, nil
	}
	suggestions := m.deps.Index.Suggest(msg.Input, suggest.DefaultLimit)
	m.deps.Bus.Publish(eventbus.SuggestionsReadyEvent{
		Query:       msg.Input,
		Suggestions: suggestions,
	})
	return m, nil
}

func (m *Model) moveSuggestion(direction string) {
	n := len(m.state.Suggestions)
	if n == 0 {
		return
	}
	if direction == "up" {
		m.state.SuggestionIndex--
		if m.state.SuggestionIndex < -1 {
			m.state.SuggestionIndex = n - 1
		}
	} else {
		m.state.SuggestionIndex++
		if m.state.SuggestionIndex >= n {
			m.state.SuggestionIndex = -1 // back to the typed text
		}
	}
}

// acceptSuggestion fills the box with the highlighted entry. When the
// mode already flipped back to normal the pick doubles as a submit.
func (m *Model) acceptSuggestion() tea.Cmd {
	i := m.state.SuggestionIndex
	if i < 0 || i >= len(m.state.Suggestions) {
		return nil
	}
	text := m.state.Suggestions[i].Text

	if m.handler.CurrentMode() == types.ModeSearch {
		m.handler.SetText(text)
		return m.onSearchTextChanged(text)
	}

	m.submitSearch(text)
	return nil
}

// submitSearch records the query and hands it to the controller
func (m *Model) submitSearch(text string) {
	m.state.CloseOverlays()
	m.state.Screen = state.ScreenSearch
	m.state.SelectedIndex = 0

	if text != "" {
		m.deps.Recents.Add(text)
		m.state.RecentSearches = m.deps.Recents.List()
		m.deps.Bus.Publish(eventbus.RecentSearchesChangedEvent{Searches: m.state.RecentSearches})
	}

	q := text
	m.deps.Controller.UpdateFilters(domain.FilterPatch{Query: &q})
}

func (m *Model) openDetail(id string) {
	if id == "" {
		switch m.state.Screen {
		case state.ScreenHome:
			if m.state.SelectedIndex < len(m.state.Featured) {
				id = m.state.Featured[m.state.SelectedIndex].ID
			}
		case state.ScreenSearch:
			if v, ok := m.state.SelectedVehicle(); ok {
				id = v.ID
			}
		case state.ScreenDetail:
			if m.state.SelectedIndex < len(m.state.Similar) {
				id = m.state.Similar[m.state.SelectedIndex].ID
			}
		}
	}
	if id == "" {
		return
	}

	if m.state.Screen != state.ScreenDetail {
		m.state.PrevScreen = m.state.Screen
	}
	m.state.CloseOverlays()
	m.state.Screen = state.ScreenDetail
	m.state.Detail = nil
	m.state.DetailMissing = ""
	m.state.Similar = nil
	m.state.SelectedIndex = 0
	m.state.LoadingDetail = true
	m.loadVehicle(id)
}

func (m *Model) goBack() {
	m.state.CloseOverlays()
	switch m.state.Screen {
	case state.ScreenDetail:
		m.state.Screen = m.state.PrevScreen
	case state.ScreenSearch:
		m.state.Screen = state.ScreenHome
	}
	m.state.SelectedIndex = 0
}

func (m *Model) toggleFavorite(id string) {
	if id == "" {
		switch m.state.Screen {
		case state.ScreenHome:
			if m.state.SelectedIndex < len(m.state.Featured) {
				id = m.state.Featured[m.state.SelectedIndex].ID
			}
		case state.ScreenSearch:
			if v, ok := m.state.SelectedVehicle(); ok {
				id = v.ID
			}
		case state.ScreenDetail:
			if m.state.Detail != nil {
				id = m.state.Detail.ID
			}
		}
	}
	if id == "" {
		return
	}

	isFav := m.state.ToggleFavorite(id)
	m.deps.Bus.Publish(eventbus.FavoriteToggledEvent{VehicleID: id, IsFavorite: isFav})
}

func (m *Model) moveFilterField(direction string) {
	n := len(modes.FilterFields)
	if direction == "up" {
		m.state.FilterFieldIndex--
		if m.state.FilterFieldIndex < 0 {
			m.state.FilterFieldIndex = n - 1
		}
	} else {
		m.state.FilterFieldIndex++
		if m.state.FilterFieldIndex >= n {
			m.state.FilterFieldIndex = 0
		}
	}
}

// adjustFilter steps the highlighted panel field. Set-valued fields
// cycle through the catalog facets; numeric bounds step in fixed
// increments. Every change goes through the controller so paging and
// subscribers stay consistent.
func (m *Model) adjustFilter(direction string) {
	if m.state.FilterFieldIndex >= len(modes.FilterFields) {
		return
	}
	c := m.deps.Controller.Criteria()
	forward := direction == "right"

	switch modes.FilterFields[m.state.FilterFieldIndex].Key {
	case "make":
		next := cycleSet(c.Makes, m.catalogFacets.Makes, forward)
		m.deps.Controller.UpdateFilters(domain.FilterPatch{Makes: &next})
	case "bodyType":
		next := cycleSet(c.BodyTypes, m.catalogFacets.BodyTypes, forward)
		m.deps.Controller.UpdateFilters(domain.FilterPatch{BodyTypes: &next})
	case "condition":
		next := cycleSet(c.Conditions, m.catalogFacets.Conditions, forward)
		m.deps.Controller.UpdateFilters(domain.FilterPatch{Conditions: &next})
	case "fuelType":
		next := cycleSet(c.FuelTypes, m.catalogFacets.FuelTypes, forward)
		m.deps.Controller.UpdateFilters(domain.FilterPatch{FuelTypes: &next})
	case "priceMax":
		next := stepBound(c.PriceMax, 5000, m.catalogFacets.PriceRange.Max+5000, forward)
		m.deps.Controller.UpdateFilters(domain.FilterPatch{PriceMax: &next})
	case "yearMin":
		next := stepBound(c.YearMin, 1, m.catalogFacets.YearRange.Max, forward)
		if next != 0 && next < m.catalogFacets.YearRange.Min {
			next = m.catalogFacets.YearRange.Min
		}
		m.deps.Controller.UpdateFilters(domain.FilterPatch{YearMin: &next})
	case "mileageMax":
		next := stepBound(c.MileageMax, 5000, 100000, forward)
		m.deps.Controller.UpdateFilters(domain.FilterPatch{MileageMax: &next})
	}
	m.state.SelectedIndex = 0
}

// cycleSet walks none -> first value -> ... -> last value -> none
func cycleSet(current []string, facets []domain.FacetValue, forward bool) []string {
	if len(facets) == 0 {
		return nil
	}
	pos := -1
	if len(current) == 1 {
		for i, f := range facets {
			if f.Value == current[0] {
				pos = i
				break
			}
		}
	}

	if forward {
		pos++
	} else {
		pos--
	}
	if pos >= len(facets) || pos < -1 {
		return nil // wrap back to unconstrained
	}
	if pos == -1 {
		return nil
	}
	return []string{facets[pos].Value}
}

// stepBound steps a numeric bound, clamping at zero (unconstrained)
func stepBound(current, step, max int, forward bool) int {
	if forward {
		current += step
		if current > max {
			return 0
		}
		return current
	}
	current -= step
	if current < 0 {
		return 0
	}
	return current
}

// applySort maps a sort key onto criteria with its natural direction
func (m *Model) applySort(key string) {
	sortBy := domain.SortKey(key)
	order := domain.SortAsc
	switch sortBy {
	case domain.SortByArbitrage, domain.SortByYear:
		order = domain.SortDesc
	}
	m.deps.Controller.UpdateFilters(domain.FilterPatch{SortBy: &sortBy, SortOrder: &order})
	m.state.SelectedIndex = 0
}

// handleEvent folds a domain event into the UI state
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.SearchStartedEvent:
		m.state.Searching = true
		m.state.ErrorMessage = ""

	case eventbus.SearchCompletedEvent:
		m.state.Searching = false
		results := e.Results
		m.state.Results = &results
		m.state.ErrorMessage = ""
		m.state.ClampSelection()

	case eventbus.SearchFailedEvent:
		// Keep the previous results on screen alongside the notice
		m.state.Searching = false
		m.state.ErrorMessage = e.Message

	case eventbus.SuggestionsReadyEvent:
		// Only apply if the box still holds the text these answer
		if m.state.AutocompleteOpen && e.Query == m.state.SearchInput {
			m.state.Suggestions = e.Suggestions
			m.state.SuggestionIndex = -1
		}

	case eventbus.VehicleLoadedEvent:
		m.state.LoadingDetail = false
		v := e.Vehicle
		m.state.Detail = &v
		m.state.DetailMissing = ""

	case eventbus.VehicleNotFoundEvent:
		m.state.LoadingDetail = false
		m.state.Detail = nil
		m.state.DetailMissing = e.ID

	case eventbus.SimilarLoadedEvent:
		if m.state.Detail != nil && m.state.Detail.ID == e.VehicleID {
			m.state.Similar = e.Similar
		}

	case eventbus.FeaturedLoadedEvent:
		m.state.Searching = false
		m.state.Featured = e.Featured

	case eventbus.FiltersChangedEvent:
		m.state.SelectedIndex = 0

	case eventbus.RecentSearchesChangedEvent:
		m.state.RecentSearches = e.Searches

	case eventbus.ErrorEvent:
		m.state.StatusMessage = e.Message
	}
	return m, nil
}

// loadFeatured fetches the home screen listings in the background
func (m *Model) loadFeatured() {
	m.state.Searching = true
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detailTimeout)
		defer cancel()
		featured, err := m.deps.Client.Featured(ctx, featuredLimit)
		if err != nil {
			slog.Warn("ui: featured load failed", "error", err)
			m.deps.Bus.Publish(eventbus.ErrorEvent{Message: "could not load featured deals", Err: err})
			return
		}
		m.deps.Bus.Publish(eventbus.FeaturedLoadedEvent{Featured: featured})
	}()
}

// loadVehicle fetches the detail record and its related listings
func (m *Model) loadVehicle(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detailTimeout)
		defer cancel()

		v, ok, err := m.deps.Client.VehicleByID(ctx, id)
		if err != nil {
			slog.Warn("ui: detail load failed", "id", id, "error", err)
			m.deps.Bus.Publish(eventbus.ErrorEvent{Message: "could not load vehicle", Err: err})
			return
		}
		if !ok {
			m.deps.Bus.Publish(eventbus.VehicleNotFoundEvent{ID: id})
			return
		}
		m.deps.Bus.Publish(eventbus.VehicleLoadedEvent{Vehicle: v})

		similar, err := m.deps.Client.Similar(ctx, id, similarLimit)
		if err != nil {
			return
		}
		m.deps.Bus.Publish(eventbus.SimilarLoadedEvent{VehicleID: id, Similar: similar})
	}()
}

func (m *Model) saveConfig() {
	if m.deps.Config == nil || m.deps.ConfigSvc == nil {
		return
	}
	m.deps.Config.RecentSearches = m.deps.Recents.List()
	m.deps.Config.Favorites = m.state.FavoriteIDs()
	m.deps.Config.UISettings.ViewMode = m.state.ViewMode
	if err := m.deps.ConfigSvc.Save(m.deps.Config); err != nil {
		slog.Error("ui: config save failed", "error", err)
	}
}

// View renders the current state
func (m *Model) View() string {
	m.vm.SetDimensions(m.state.Width, m.state.Height)
	m.vm.SetSpinner(m.spinner.View())
	m.vm.SetCriteria(m.deps.Controller.Criteria())
	m.vm.SetTextInput(m.handler.TextInput())
	m.vm.SetSortPickerOpen(m.handler.CurrentMode() == types.ModeSort)
	return m.renderer.Render(m.vm.BuildViewState())
}
