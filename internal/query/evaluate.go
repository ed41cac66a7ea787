// Package query evaluates filter criteria against a vehicle catalog:
// filtering, sorting, pagination and facet computation in one pass.
package query

import (
	"errors"
	"sort"
	"strings"

	"carbitrage/internal/domain"
)

// ErrInvalidPageSize is returned when a caller asks for a non-positive
// page size. Unlike an out-of-range page number, this cannot be clamped
// to anything sensible.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Evaluate runs the full query pipeline over the given records and
// returns one page of results. The input slice is never mutated. Page
// numbers below 1 are clamped to 1; a page past the end yields an empty
// page with intact totals. Facets are computed over the unfiltered
// record set.
func Evaluate(vehicles []domain.Vehicle, criteria domain.FilterCriteria, page, pageSize int) (domain.ResultPage, error) {
	if pageSize <= 0 {
		return domain.ResultPage{}, ErrInvalidPageSize
	}
	if page < 1 {
		page = 1
	}

	matched := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matches(v, criteria) {
			matched = append(matched, v)
		}
	}

	sortVehicles(matched, criteria.SortBy, criteria.SortOrder)

	total := len(matched)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	var pageSlice []domain.Vehicle
	if start >= total {
		pageSlice = []domain.Vehicle{}
	} else {
		if end > total {
			end = total
		}
		pageSlice = matched[start:end]
	}

	return domain.ResultPage{
		Vehicles:   pageSlice,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Facets:     ComputeFacets(vehicles),
	}, nil
}

// matches reports whether one record passes every constrained dimension
func matches(v domain.Vehicle, c domain.FilterCriteria) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		mk := strings.ToLower(v.Make)
		model := strings.ToLower(v.Model)
		if !strings.Contains(mk, q) && !strings.Contains(model, q) &&
			!strings.Contains(mk+" "+model, q) {
			return false
		}
	}

	if !containsFold(c.Makes, v.Make) {
		return false
	}
	if !containsFold(c.Models, v.Model) {
		return false
	}
	if !containsExact(c.Conditions, string(v.Condition)) {
		return false
	}
	if !containsExact(c.BodyTypes, v.BodyType) {
		return false
	}
	if !containsExact(c.FuelTypes, v.FuelType) {
		return false
	}
	if !containsExact(c.Transmissions, v.Transmission) {
		return false
	}

	if c.PriceMin > 0 && v.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && v.Price > c.PriceMax {
		return false
	}
	if c.YearMin > 0 && v.Year < c.YearMin {
		return false
	}
	if c.YearMax > 0 && v.Year > c.YearMax {
		return false
	}
	if c.MileageMax > 0 && v.Mileage > c.MileageMax {
		return false
	}

	return true
}

// containsFold is a set membership test ignoring case. An empty set
// means the dimension is unconstrained.
func containsFold(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// containsExact is a case-sensitive set membership test. An empty set
// means the dimension is unconstrained.
func containsExact(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// sortVehicles orders records in place. Unknown sort keys, and keys
// with no computable value such as distance, fall back to arbitrage
// score. The sort is stable so equal keys keep catalog order.
func sortVehicles(vehicles []domain.Vehicle, key domain.SortKey, order domain.SortOrder) {
	var less func(a, b domain.Vehicle) bool

	switch key {
	case domain.SortByPrice:
		less = func(a, b domain.Vehicle) bool { return a.Price < b.Price }
	case domain.SortByYear:
		less = func(a, b domain.Vehicle) bool { return a.Year < b.Year }
	case domain.SortByMileage:
		less = func(a, b domain.Vehicle) bool { return a.Mileage < b.Mileage }
	default:
		less = func(a, b domain.Vehicle) bool { return a.ArbitrageScore < b.ArbitrageScore }
	}

	// Descending is the default direction for every key
	if order != domain.SortAsc {
		asc := less
		less = func(a, b domain.Vehicle) bool { return asc(b, a) }
	}
	sort.SliceStable(vehicles, func(i, j int) bool {
		return less(vehicles[i], vehicles[j])
	})
}
