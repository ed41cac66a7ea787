package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style

	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	Price         lipgloss.Style
	Savings       lipgloss.Style
	Score         lipgloss.Style
	ScoreHigh     lipgloss.Style
	Favorite      lipgloss.Style
	SearchBox     lipgloss.Style
	Dropdown      lipgloss.Style
	DropdownSel   lipgloss.Style
	Panel         lipgloss.Style
	PanelField    lipgloss.Style
	PanelFieldSel lipgloss.Style
	FacetCount    lipgloss.Style
	Pager         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Price:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),  // green
		Savings:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),             // blue
		ScoreHigh: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),  // green
		Favorite:  lipgloss.NewStyle().Foreground(lipgloss.Color("213")),            // pink
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		DropdownSel: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1).
			MarginRight(2),
		PanelField:    lipgloss.NewStyle(),
		PanelFieldSel: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		FacetCount:    lipgloss.NewStyle().Faint(true),
		Pager:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// ScoreColor returns the style for an arbitrage score
func (s *Styles) ScoreColor(score int) lipgloss.Style {
	if score >= 85 {
		return s.ScoreHigh
	}
	return s.Score
}
