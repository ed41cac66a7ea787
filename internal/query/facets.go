package query

import (
	"sort"

	"carbitrage/internal/domain"
)

// ComputeFacets tallies the filterable dimensions over the full record
// set. Values are ordered alphabetically so the sidebar renders
// deterministically.
func ComputeFacets(vehicles []domain.Vehicle) domain.Facets {
	makes := map[string]int{}
	models := map[string]int{}
	bodyTypes := map[string]int{}
	conditions := map[string]int{}
	fuelTypes := map[string]int{}
	transmissions := map[string]int{}

	facets := domain.Facets{}
	for i, v := range vehicles {
		makes[v.Make]++
		models[v.Model]++
		bodyTypes[v.BodyType]++
		conditions[string(v.Condition)]++
		fuelTypes[v.FuelType]++
		transmissions[v.Transmission]++

		if i == 0 {
			facets.PriceRange = domain.Range{Min: v.Price, Max: v.Price}
			facets.YearRange = domain.Range{Min: v.Year, Max: v.Year}
			continue
		}
		if v.Price < facets.PriceRange.Min {
			facets.PriceRange.Min = v.Price
		}
		if v.Price > facets.PriceRange.Max {
			facets.PriceRange.Max = v.Price
		}
		if v.Year < facets.YearRange.Min {
			facets.YearRange.Min = v.Year
		}
		if v.Year > facets.YearRange.Max {
			facets.YearRange.Max = v.Year
		}
	}

	facets.Makes = toFacetValues(makes)
	facets.Models = toFacetValues(models)
	facets.BodyTypes = toFacetValues(bodyTypes)
	facets.Conditions = toFacetValues(conditions)
	facets.FuelTypes = toFacetValues(fuelTypes)
	facets.Transmissions = toFacetValues(transmissions)
	return facets
}

func toFacetValues(counts map[string]int) []domain.FacetValue {
	out := make([]domain.FacetValue, 0, len(counts))
	for value, count := range counts {
		out = append(out, domain.FacetValue{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out
}
