package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Autocomplete actions
type SuggestionNavigateAction struct {
	Direction string // "up" or "down"
}

func (a SuggestionNavigateAction) Type() string { return "suggestion_navigate" }

type AcceptSuggestionAction struct {
	Index int // -1 for the highlighted one
}

func (a AcceptSuggestionAction) Type() string { return "accept_suggestion" }

// Screen actions
type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

type OpenDetailAction struct {
	VehicleID string // "" for the highlighted result
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type GoBackAction struct{}

func (a GoBackAction) Type() string { return "go_back" }

type GoHomeAction struct{}

func (a GoHomeAction) Type() string { return "go_home" }

// Result actions
type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

type ToggleViewModeAction struct{}

func (a ToggleViewModeAction) Type() string { return "toggle_view_mode" }

type ToggleFavoriteAction struct {
	VehicleID string // "" for the highlighted result
}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

// Filter actions
type ToggleFilterPanelAction struct{}

func (a ToggleFilterPanelAction) Type() string { return "toggle_filter_panel" }

type FilterFieldNavigateAction struct {
	Direction string // "up" or "down"
}

func (a FilterFieldNavigateAction) Type() string { return "filter_field_navigate" }

type FilterAdjustAction struct {
	Direction string // "left" or "right"
}

func (a FilterAdjustAction) Type() string { return "filter_adjust" }

type FilterToggleValueAction struct{}

func (a FilterToggleValueAction) Type() string { return "filter_toggle_value" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Sort actions
type SortByAction struct {
	Key string
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ClearRecentsAction struct{}

func (a ClearRecentsAction) Type() string { return "clear_recents" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
