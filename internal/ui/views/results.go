package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carbitrage/internal/domain"
)

// renderSearch draws the results screen: search box, optional filter
// panel, the result grid or list, and the pager line.
func (r *Renderer) renderSearch(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.renderSearchBox(vs))
	b.WriteString("\n")

	if summary := summarizeCriteria(vs.Criteria); summary != "" {
		b.WriteString(r.styles.Subtitle.Render(summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if vs.ErrorMessage != "" {
		b.WriteString(r.styles.StatusError.Render("⚠ " + vs.ErrorMessage))
		b.WriteString("\n\n")
	}

	body := r.renderResultsBody(vs)
	if vs.FilterPanelOpen {
		panel := r.renderFilterPanel(vs)
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, body)
	}
	b.WriteString(body)

	if vs.SortPickerOpen {
		b.WriteString("\n")
		b.WriteString(r.renderSortPicker(vs))
	}

	if vs.Results != nil {
		b.WriteString("\n")
		b.WriteString(r.renderPager(vs.Results))
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("/ search · f filters · s sort · v view · n/p page · enter open · esc back"))
	return b.String()
}

func (r *Renderer) renderResultsBody(vs ViewState) string {
	if vs.Searching && vs.Results == nil {
		return r.styles.StatusLoading.Render(vs.Spinner + " searching...")
	}
	if vs.Results == nil {
		return r.styles.Dim.Render("Type a search or open the filters to get started.")
	}
	if len(vs.Results.Vehicles) == 0 {
		return r.styles.Dim.Render("No vehicles match. Try widening the filters (c clears them).")
	}

	if vs.ViewMode == "grid" {
		return r.renderGrid(vs)
	}
	return r.renderList(vs)
}

// renderGrid lays cards out two per row
func (r *Renderer) renderGrid(vs ViewState) string {
	var rows []string
	var cards []string
	for i, v := range vs.Results.Vehicles {
		cards = append(cards, r.vehicleCard(v, i == vs.SelectedIndex, vs.Favorites[v.ID]))
		if len(cards) == 2 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
			cards = nil
		}
	}
	if len(cards) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderList(vs ViewState) string {
	var b strings.Builder
	for i, v := range vs.Results.Vehicles {
		b.WriteString(r.vehicleLine(v, i == vs.SelectedIndex, vs.Favorites[v.ID]))
		b.WriteString("\n")
	}
	return b.String()
}

// vehicleCard renders one record as a bordered grid cell
func (r *Renderer) vehicleCard(v domain.Vehicle, selected, favorite bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
	if favorite {
		title = r.styles.Favorite.Render("★ ") + title
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(r.styles.Price.Render(money(v.Price)))
	if s := v.Savings(); s > 0 {
		b.WriteString("  " + r.styles.Savings.Render("save "+money(s)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d mi · %s · %s\n", v.Mileage, v.BodyType, v.FuelType))
	b.WriteString(r.styles.Dim.Render(v.Location.City + ", " + v.Location.State))
	b.WriteString("  score ")
	b.WriteString(r.styles.ScoreColor(v.ArbitrageScore).Render(fmt.Sprintf("%d", v.ArbitrageScore)))

	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}
	return style.Width(34).Render(b.String())
}

func (r *Renderer) renderPager(page *domain.ResultPage) string {
	if page.Total == 0 {
		return r.styles.Pager.Render("0 vehicles")
	}
	text := fmt.Sprintf("%d vehicles · page %d/%d", page.Total, page.Page, page.TotalPages)
	if page.HasPrevPage() {
		text = "← p  " + text
	}
	if page.HasNextPage() {
		text += "  n →"
	}
	return r.styles.Pager.Render(text)
}

// renderFilterPanel draws the sidebar with one row per field, with the
// catalog facets shown next to the set dimensions.
func (r *Renderer) renderFilterPanel(vs ViewState) string {
	var rows []string
	rows = append(rows, r.styles.Title.Render("Filters"))
	for i, f := range vs.FilterFields {
		row := fmt.Sprintf("%-12s %s", f.Name, f.Value)
		if i == vs.FilterFieldIndex {
			row = r.styles.PanelFieldSel.Render("> " + row)
		} else {
			row = r.styles.PanelField.Render("  " + row)
		}
		rows = append(rows, row)
	}
	rows = append(rows, "")
	rows = append(rows, r.styles.Help.Render("↑↓ field · ←→/space change · c clear · esc close"))
	return r.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderSortPicker(vs ViewState) string {
	var rows []string
	rows = append(rows, r.styles.Title.Render("Sort by"))
	for i, o := range vs.SortOptions {
		row := fmt.Sprintf("%-12s %s", o.Name, r.styles.Dim.Render(o.Description))
		if i == vs.SortOptionIndex {
			row = r.styles.DropdownSel.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return r.styles.Panel.Render(strings.Join(rows, "\n"))
}
