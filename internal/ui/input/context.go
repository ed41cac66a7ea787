package input

import (
	"carbitrage/internal/ui/input/modes"
	"carbitrage/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State       *state.AppState
	CurrentSort string
}

func (c *ModelContext) OnHomeScreen() bool {
	return c.State.Screen == state.ScreenHome
}

func (c *ModelContext) OnSearchScreen() bool {
	return c.State.Screen == state.ScreenSearch
}

func (c *ModelContext) OnDetailScreen() bool {
	return c.State.Screen == state.ScreenDetail
}

func (c *ModelContext) ResultCount() int {
	return c.State.ResultCount()
}

func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

func (c *ModelContext) HasResults() bool {
	return c.State.ResultCount() > 0
}

func (c *ModelContext) HasNextPage() bool {
	return c.State.Screen == state.ScreenSearch &&
		c.State.Results != nil && c.State.Results.HasNextPage()
}

func (c *ModelContext) HasPrevPage() bool {
	return c.State.Screen == state.ScreenSearch &&
		c.State.Results != nil && c.State.Results.HasPrevPage()
}

func (c *ModelContext) SuggestionCount() int {
	return len(c.State.Suggestions)
}

func (c *ModelContext) SuggestionIndex() int {
	return c.State.SuggestionIndex
}

func (c *ModelContext) AutocompleteOpen() bool {
	return c.State.AutocompleteOpen
}

func (c *ModelContext) FilterFieldCount() int {
	return len(modes.FilterFields)
}

func (c *ModelContext) CurrentSortKey() string {
	return c.CurrentSort
}
