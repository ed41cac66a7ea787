package views

import (
	"fmt"
	"strings"

	"carbitrage/internal/domain"
)

// renderHome draws the landing screen: search box, featured deals and
// recent searches.
func (r *Renderer) renderHome(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Carbitrage"))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render("Find underpriced cars before anyone else"))
	b.WriteString("\n\n")

	b.WriteString(r.renderSearchBox(vs))
	b.WriteString("\n\n")

	if len(vs.Featured) > 0 {
		b.WriteString(r.styles.Title.Render("Featured Deals"))
		b.WriteString("\n")
		for i, v := range vs.Featured {
			line := r.vehicleLine(v, i == vs.SelectedIndex && !vs.SearchActive, vs.Favorites[v.ID])
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else if vs.Searching {
		b.WriteString(r.styles.StatusLoading.Render(vs.Spinner + " loading featured deals..."))
		b.WriteString("\n")
	}

	if len(vs.RecentSearches) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Subtitle.Render("Recent searches: "))
		b.WriteString(r.styles.Dim.Render(strings.Join(vs.RecentSearches, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("/ search · enter open · * favorite · ? help · q quit"))
	return b.String()
}

// vehicleLine renders one record as a compact list row
func (r *Renderer) vehicleLine(v domain.Vehicle, selected, favorite bool) string {
	name := fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
	line := fmt.Sprintf("%-28s %10s  %6d mi  score %s",
		name, r.styles.Price.Render(money(v.Price)),
		v.Mileage, r.styles.ScoreColor(v.ArbitrageScore).Render(fmt.Sprintf("%d", v.ArbitrageScore)))
	if s := v.Savings(); s > 0 {
		line += "  " + r.styles.Savings.Render("save "+money(s))
	}
	if favorite {
		line = r.styles.Favorite.Render("★ ") + line
	} else {
		line = "  " + line
	}
	if selected {
		line = r.styles.DropdownSel.Render("> " + line)
	} else {
		line = "  " + line
	}
	return line
}
