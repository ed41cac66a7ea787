package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"carbitrage/internal/ui/input/types"
)

// SearchMode is the search box with the autocomplete dropdown attached.
// Arrow keys move through suggestions; enter accepts the highlighted one
// or submits the typed text.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up":
		if ctx.AutocompleteOpen() && ctx.SuggestionCount() > 0 {
			return []types.Action{types.SuggestionNavigateAction{Direction: "up"}}, true
		}
		return nil, true // consume so the cursor stays in the box

	case "down":
		if ctx.AutocompleteOpen() && ctx.SuggestionCount() > 0 {
			return []types.Action{types.SuggestionNavigateAction{Direction: "down"}}, true
		}
		return nil, true

	case "tab":
		// Tab completes the highlighted suggestion without submitting
		if ctx.AutocompleteOpen() && ctx.SuggestionIndex() >= 0 {
			return []types.Action{types.AcceptSuggestionAction{Index: -1}}, true
		}
		return nil, true

	case "enter":
		if ctx.AutocompleteOpen() && ctx.SuggestionIndex() >= 0 {
			return []types.Action{
				types.AcceptSuggestionAction{Index: -1},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
		return []types.Action{
			types.SubmitTextAction{Text: m.Value(), Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return m.TextInputMode.HandleKey(msg, ctx)
}
