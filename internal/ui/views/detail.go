package views

import (
	"fmt"
	"strings"
)

// renderDetail draws the full listing page for one vehicle
func (r *Renderer) renderDetail(vs ViewState) string {
	if vs.LoadingDetail {
		return r.styles.StatusLoading.Render(vs.Spinner + " loading vehicle...")
	}
	if vs.DetailMissing != "" {
		return r.styles.StatusError.Render("Vehicle "+vs.DetailMissing+" was not found.") +
			"\n\n" + r.styles.Help.Render("esc back · H home")
	}
	if vs.Detail == nil {
		return r.styles.Dim.Render("Nothing selected.")
	}

	v := vs.Detail
	var b strings.Builder

	title := fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
	if vs.Favorites[v.ID] {
		title = r.styles.Favorite.Render("★ ") + title
	}
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(r.styles.Price.Render(money(v.Price)))
	if s := v.Savings(); s > 0 {
		b.WriteString(fmt.Sprintf("  %s %s",
			r.styles.Dim.Render("was "+money(v.OriginalPrice)),
			r.styles.Savings.Render("save "+money(s))))
	}
	b.WriteString("  score ")
	b.WriteString(r.styles.ScoreColor(v.ArbitrageScore).Render(fmt.Sprintf("%d", v.ArbitrageScore)))
	if v.MarketValue > 0 {
		b.WriteString(r.styles.Dim.Render("  market " + money(v.MarketValue)))
	}
	b.WriteString("\n\n")

	specs := [][2]string{
		{"Mileage", fmt.Sprintf("%d mi", v.Mileage)},
		{"Condition", string(v.Condition)},
		{"Body", v.BodyType},
		{"Fuel", v.FuelType},
		{"Transmission", v.Transmission},
		{"Drivetrain", v.Drivetrain},
		{"Engine", v.Engine},
		{"Exterior", v.ExteriorColor},
		{"Interior", v.InteriorColor},
		{"VIN", v.VIN},
	}
	for _, s := range specs {
		if s[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%-14s %s\n", s[0], s[1]))
	}

	if v.Description != "" {
		b.WriteString("\n")
		b.WriteString(v.Description)
		b.WriteString("\n")
	}

	if len(v.Features) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Subtitle.Render("Features: "))
		b.WriteString(strings.Join(v.Features, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render("Dealer"))
	b.WriteString("\n")
	dealer := v.Dealer.Name
	if v.Dealer.Verified {
		dealer += " ✓"
	}
	b.WriteString(fmt.Sprintf("%s · %.1f/5\n", dealer, v.Dealer.Rating))
	if v.Dealer.Phone != "" {
		b.WriteString(r.styles.Dim.Render(v.Dealer.Phone + " · " + v.Dealer.Address))
		b.WriteString("\n")
	}

	if len(vs.Similar) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Title.Render("Similar Vehicles"))
		b.WriteString("\n")
		for i, sv := range vs.Similar {
			b.WriteString(r.vehicleLine(sv, !vs.SearchActive && i == vs.SelectedIndex, vs.Favorites[sv.ID]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("↑↓ similar · enter open · * favorite · esc back · H home"))
	return b.String()
}
