package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"carbitrage/internal/ui/input/types"
)

// FilterFields is the panel layout, top to bottom
var FilterFields = []struct {
	Key  string
	Name string
}{
	{"make", "Make"},
	{"bodyType", "Body Type"},
	{"condition", "Condition"},
	{"fuelType", "Fuel Type"},
	{"priceMax", "Max Price"},
	{"yearMin", "Min Year"},
	{"mileageMax", "Max Mileage"},
}

// FilterMode navigates the filter panel. It is not a text mode; fields
// are toggled or stepped with the arrow keys.
type FilterMode struct {
	fieldIndex int
}

func NewFilterMode() *FilterMode {
	return &FilterMode{}
}

func (m *FilterMode) Name() string {
	return "filter"
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	m.fieldIndex = 0
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "f", "q":
		return []types.Action{
			types.ToggleFilterPanelAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		return []types.Action{types.FilterFieldNavigateAction{Direction: "up"}}, true

	case "down", "j":
		return []types.Action{types.FilterFieldNavigateAction{Direction: "down"}}, true

	case "left", "h":
		return []types.Action{types.FilterAdjustAction{Direction: "left"}}, true

	case "right", "l":
		return []types.Action{types.FilterAdjustAction{Direction: "right"}}, true

	case " ", "enter":
		return []types.Action{types.FilterToggleValueAction{}}, true

	case "c":
		return []types.Action{types.ClearFiltersAction{}}, true
	}

	return nil, false
}
