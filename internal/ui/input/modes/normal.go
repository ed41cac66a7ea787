package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carbitrage/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyPgDown:
		if ctx.HasNextPage() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true

	case tea.KeyPgUp:
		if ctx.HasPrevPage() {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true

	case tea.KeyEnter:
		if ctx.OnSearchScreen() && ctx.HasResults() {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		if ctx.OnHomeScreen() {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false

	case tea.KeyEsc:
		if ctx.OnDetailScreen() || ctx.OnSearchScreen() {
			return []types.Action{types.GoBackAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "f", "F":
		if ctx.OnSearchScreen() {
			return []types.Action{types.ToggleFilterPanelAction{}, types.ChangeModeAction{Mode: types.ModeFilter}}, true
		}
		return nil, false

	case "s":
		if ctx.OnSearchScreen() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true
		}
		return nil, false

	case "v":
		if ctx.OnSearchScreen() {
			return []types.Action{types.ToggleViewModeAction{}}, true
		}
		return nil, false

	case "*", " ":
		if ctx.HasResults() || ctx.OnDetailScreen() || ctx.OnHomeScreen() {
			return []types.Action{types.ToggleFavoriteAction{}}, true
		}
		return nil, false

	case "c":
		if ctx.OnSearchScreen() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, false

	case "n":
		if ctx.HasNextPage() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true

	case "p":
		if ctx.HasPrevPage() {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "b":
		if !ctx.OnHomeScreen() {
			return []types.Action{types.GoBackAction{}}, true
		}
		return nil, false

	case "H":
		if !ctx.OnHomeScreen() {
			return []types.Action{types.GoHomeAction{}}, true
		}
		return nil, false

	case "X":
		if ctx.OnHomeScreen() {
			return []types.Action{types.ClearRecentsAction{}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg within the timeout jumps to the top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
