package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"carbitrage/internal/domain"
)

// Screen mirrors the model's screen enum without importing it
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSearch
	ScreenDetail
)

// ViewState carries everything the render pass needs
type ViewState struct {
	Width  int
	Height int
	Screen Screen

	// Home
	Featured       []domain.Vehicle
	RecentSearches []string

	// Search
	Results         *domain.ResultPage
	Criteria        domain.FilterCriteria
	SelectedIndex   int
	ViewMode        string // "grid" or "list"
	Searching       bool
	Spinner         string
	ErrorMessage    string
	FilterPanelOpen bool
	FilterFieldIndex int
	FilterFields    []FilterFieldView
	SortPickerOpen  bool
	SortOptionIndex int
	SortOptions     []SortOptionView

	// Detail
	Detail        *domain.Vehicle
	DetailMissing string
	Similar       []domain.Vehicle
	LoadingDetail bool

	// Autocomplete
	SearchActive     bool
	SearchInput      *textinput.Model
	Suggestions      []domain.Suggestion
	SuggestionIndex  int
	AutocompleteOpen bool

	Favorites     map[string]bool
	StatusMessage string
	ShowHelp      bool
	HelpText      string
}

// FilterFieldView is one rendered row of the filter panel
type FilterFieldView struct {
	Name  string
	Value string
}

// SortOptionView is one rendered row of the sort picker
type SortOptionView struct {
	Name        string
	Description string
}

// Renderer draws the whole UI from a ViewState
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render draws the active screen plus any overlays
func (r *Renderer) Render(vs ViewState) string {
	var b strings.Builder

	switch vs.Screen {
	case ScreenHome:
		b.WriteString(r.renderHome(vs))
	case ScreenSearch:
		b.WriteString(r.renderSearch(vs))
	case ScreenDetail:
		b.WriteString(r.renderDetail(vs))
	}

	if vs.ShowHelp {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(vs.HelpText))
	}

	if vs.StatusMessage != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Status.Render(vs.StatusMessage))
	}

	return r.styles.Main.Render(b.String())
}

// renderSearchBox draws the search input with the dropdown under it
func (r *Renderer) renderSearchBox(vs ViewState) string {
	var b strings.Builder

	if vs.SearchActive && vs.SearchInput != nil {
		b.WriteString(r.styles.SearchBox.Render("Search: " + vs.SearchInput.View()))
	} else if q := vs.Criteria.Query; q != "" {
		b.WriteString(r.styles.SearchBox.Render("Search: " + q + r.styles.Dim.Render("  (/ to edit)")))
	} else {
		b.WriteString(r.styles.SearchBox.Render(r.styles.Dim.Render("Press / to search makes, models, locations")))
	}

	if vs.SearchActive && vs.AutocompleteOpen && len(vs.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(r.renderSuggestions(vs))
	}

	return b.String()
}

func (r *Renderer) renderSuggestions(vs ViewState) string {
	var rows []string
	for i, s := range vs.Suggestions {
		label := s.Text
		switch s.Type {
		case domain.SuggestionRecent:
			label = "↻ " + label
		case domain.SuggestionLocation:
			label = "⚲ " + label
		}
		if s.Subtitle != "" {
			label += " " + r.styles.Subtitle.Render("("+s.Subtitle+")")
		}
		if s.Count > 0 {
			label += " " + r.styles.FacetCount.Render(fmt.Sprintf("· %d", s.Count))
		}
		if i == vs.SuggestionIndex {
			label = r.styles.DropdownSel.Render("> " + label)
		} else {
			label = "  " + label
		}
		rows = append(rows, label)
	}
	return r.styles.Dropdown.Render(strings.Join(rows, "\n"))
}

// summarizeCriteria renders the active constraints in one line
func summarizeCriteria(c domain.FilterCriteria) string {
	var parts []string
	if c.Query != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Query))
	}
	if len(c.Makes) > 0 {
		parts = append(parts, "make: "+strings.Join(c.Makes, "/"))
	}
	if len(c.Models) > 0 {
		parts = append(parts, "model: "+strings.Join(c.Models, "/"))
	}
	if len(c.BodyTypes) > 0 {
		parts = append(parts, "body: "+strings.Join(c.BodyTypes, "/"))
	}
	if len(c.Conditions) > 0 {
		parts = append(parts, "condition: "+strings.Join(c.Conditions, "/"))
	}
	if len(c.FuelTypes) > 0 {
		parts = append(parts, "fuel: "+strings.Join(c.FuelTypes, "/"))
	}
	if c.PriceMin > 0 || c.PriceMax > 0 {
		parts = append(parts, fmt.Sprintf("price: %s-%s", money(c.PriceMin), money(c.PriceMax)))
	}
	if c.YearMin > 0 || c.YearMax > 0 {
		parts = append(parts, fmt.Sprintf("year: %d-%d", c.YearMin, c.YearMax))
	}
	if c.MileageMax > 0 {
		parts = append(parts, fmt.Sprintf("mileage: ≤%d", c.MileageMax))
	}
	return strings.Join(parts, "  ")
}

// money formats whole currency units with thousands separators
func money(n int) string {
	if n == 0 {
		return "$0"
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return "$" + string(out)
}
