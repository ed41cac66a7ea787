package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbitrage/internal/domain"
)

// testVehicles is the five-record sample inventory, trimmed to the
// fields the evaluator reads. A local copy keeps this package free of a
// catalog import, which would cycle back into query.
func testVehicles() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: "1", Make: "Toyota", Model: "Camry", Year: 2023, Price: 28500, Mileage: 15000,
			Condition: domain.ConditionUsed, BodyType: "sedan", FuelType: "gasoline",
			Transmission: "automatic", ArbitrageScore: 85},
		{ID: "2", Make: "Honda", Model: "Accord", Year: 2022, Price: 26800, Mileage: 22000,
			Condition: domain.ConditionUsed, BodyType: "sedan", FuelType: "gasoline",
			Transmission: "automatic", ArbitrageScore: 78},
		{ID: "3", Make: "Ford", Model: "F-150", Year: 2023, Price: 42500, Mileage: 8500,
			Condition: domain.ConditionUsed, BodyType: "truck", FuelType: "gasoline",
			Transmission: "automatic", ArbitrageScore: 92},
		{ID: "4", Make: "Tesla", Model: "Model 3", Year: 2024, Price: 38900, Mileage: 2500,
			Condition: domain.ConditionUsed, BodyType: "sedan", FuelType: "electric",
			Transmission: "automatic", ArbitrageScore: 88},
		{ID: "5", Make: "BMW", Model: "X5", Year: 2022, Price: 52000, Mileage: 18000,
			Condition: domain.ConditionUsed, BodyType: "suv", FuelType: "gasoline",
			Transmission: "automatic", ArbitrageScore: 76},
	}
}

func ids(vehicles []domain.Vehicle) []string {
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.ID)
	}
	return out
}

func TestEvaluateDefaultOrderIsArbitrageDesc(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{}, 1, 12)
	require.NoError(t, err)

	// F-150 (92), Model 3 (88), Camry (85), Accord (78), X5 (76)
	assert.Equal(t, []string{"3", "4", "1", "2", "5"}, ids(page.Vehicles))
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestEvaluatePriceMax(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{PriceMax: 30000}, 1, 12)
	require.NoError(t, err)

	// Camry 28500 (score 85) then Accord 26800 (score 78)
	assert.Equal(t, []string{"1", "2"}, ids(page.Vehicles))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestEvaluatePriceRangeIsInclusive(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{PriceMin: 28500, PriceMax: 28500}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(page.Vehicles))
}

func TestEvaluateBodyType(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{BodyTypes: []string{"suv"}}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, ids(page.Vehicles))
	assert.Equal(t, 1, page.Total)
}

func TestEvaluateSetFiltersOrWithinAndAcross(t *testing.T) {
	// Two body types OR together
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{
		BodyTypes: []string{"truck", "suv"},
	}, 1, 12)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"3", "5"}, ids(page.Vehicles))

	// A second dimension ANDs with the first
	page, err = Evaluate(testVehicles(), domain.FilterCriteria{
		BodyTypes: []string{"truck", "suv"},
		Makes:     []string{"BMW"},
	}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, ids(page.Vehicles))
}

func TestEvaluateMakeIsCaseInsensitive(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{Makes: []string{"toyota"}}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(page.Vehicles))
}

func TestEvaluateTextQuery(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"camry", []string{"1"}},
		{"CAMRY", []string{"1"}},
		{"toyota camry", []string{"1"}},
		{"tesla", []string{"4"}},
		{"f-150", []string{"3"}},
		{"zzz", nil},
	}
	for _, tc := range cases {
		page, err := Evaluate(testVehicles(), domain.FilterCriteria{Query: tc.query}, 1, 12)
		require.NoError(t, err, tc.query)
		assert.ElementsMatch(t, tc.want, ids(page.Vehicles), "query %q", tc.query)
	}
}

func TestEvaluateYearRange(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{YearMin: 2023, YearMax: 2023}, 1, 12)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3"}, ids(page.Vehicles))
}

func TestEvaluateMileageMaxIsUpperBound(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{MileageMax: 15000}, 1, 12)
	require.NoError(t, err)
	// Camry 15000 (inclusive), F-150 8500, Model 3 2500
	assert.ElementsMatch(t, []string{"1", "3", "4"}, ids(page.Vehicles))
}

func TestEvaluateSortByPriceAsc(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{
		SortBy: domain.SortByPrice, SortOrder: domain.SortAsc,
	}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "4", "3", "5"}, ids(page.Vehicles))
}

func TestEvaluateSortByYearDesc(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{
		SortBy: domain.SortByYear, SortOrder: domain.SortDesc,
	}, 1, 12)
	require.NoError(t, err)

	// 2024 Model 3 first; the 2023s and 2022s keep catalog order (stable sort)
	assert.Equal(t, []string{"4", "1", "3", "2", "5"}, ids(page.Vehicles))
}

func TestEvaluateArbitrageAscending(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{
		SortBy: domain.SortByArbitrage, SortOrder: domain.SortAsc,
	}, 1, 12)
	require.NoError(t, err)

	// X5 (76), Accord (78), Camry (85), Model 3 (88), F-150 (92)
	assert.Equal(t, []string{"5", "2", "1", "4", "3"}, ids(page.Vehicles))
}

func TestEvaluateExplicitKeyDefaultsToDescending(t *testing.T) {
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{SortBy: domain.SortByPrice}, 1, 12)
	require.NoError(t, err)

	// No order given means descending, for every key
	assert.Equal(t, []string{"5", "3", "4", "1", "2"}, ids(page.Vehicles))
}

func TestEvaluateUnknownSortKeyFallsBack(t *testing.T) {
	def, err := Evaluate(testVehicles(), domain.FilterCriteria{}, 1, 12)
	require.NoError(t, err)

	unknown, err := Evaluate(testVehicles(), domain.FilterCriteria{SortBy: "horsepower"}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, ids(def.Vehicles), ids(unknown.Vehicles))

	// distance is accepted but not computable, so it behaves the same
	distance, err := Evaluate(testVehicles(), domain.FilterCriteria{SortBy: domain.SortByDistance}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, ids(def.Vehicles), ids(distance.Vehicles))
}

func TestSortKeyDoesNotChangeTotals(t *testing.T) {
	criteria := domain.FilterCriteria{Conditions: []string{"used"}}
	base, err := Evaluate(testVehicles(), criteria, 1, 12)
	require.NoError(t, err)

	for _, key := range []domain.SortKey{domain.SortByPrice, domain.SortByYear, domain.SortByMileage, domain.SortByDistance} {
		criteria.SortBy = key
		page, err := Evaluate(testVehicles(), criteria, 1, 12)
		require.NoError(t, err)
		assert.Equal(t, base.Total, page.Total, "sort key %q changed the total", key)
		assert.ElementsMatch(t, ids(base.Vehicles), ids(page.Vehicles))
	}
}

func TestEvaluatePagination(t *testing.T) {
	page1, err := Evaluate(testVehicles(), domain.FilterCriteria{}, 1, 3)
	require.NoError(t, err)
	assert.Len(t, page1.Vehicles, 3)
	assert.Equal(t, 5, page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	assert.True(t, page1.HasNextPage())
	assert.False(t, page1.HasPrevPage())

	page2, err := Evaluate(testVehicles(), domain.FilterCriteria{}, 2, 3)
	require.NoError(t, err)
	assert.Len(t, page2.Vehicles, 2)
	assert.True(t, page2.HasPrevPage())
	assert.False(t, page2.HasNextPage())

	// The two pages cover each record exactly once
	all := append(ids(page1.Vehicles), ids(page2.Vehicles)...)
	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5"}, all)
}

func TestEvaluatePageClamping(t *testing.T) {
	// Page below 1 clamps to 1
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Vehicles, 3)

	page, err = Evaluate(testVehicles(), domain.FilterCriteria{}, -7, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)

	// A page past the end is empty but keeps the totals
	page, err = Evaluate(testVehicles(), domain.FilterCriteria{}, 99, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Vehicles)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 99, page.Page)
}

func TestEvaluateRejectsNonPositivePageSize(t *testing.T) {
	_, err := Evaluate(testVehicles(), domain.FilterCriteria{}, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = Evaluate(testVehicles(), domain.FilterCriteria{}, 1, -5)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	page, err := Evaluate(nil, domain.FilterCriteria{Query: "camry"}, 1, 12)
	require.NoError(t, err)
	assert.Empty(t, page.Vehicles)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	vehicles := testVehicles()
	before := ids(vehicles)

	_, err := Evaluate(vehicles, domain.FilterCriteria{
		SortBy: domain.SortByPrice, SortOrder: domain.SortDesc,
	}, 1, 12)
	require.NoError(t, err)

	assert.Equal(t, before, ids(vehicles))
}

func TestFacetsComputedOverFullCatalog(t *testing.T) {
	// Even a narrow filter reports facets for the whole catalog
	page, err := Evaluate(testVehicles(), domain.FilterCriteria{BodyTypes: []string{"suv"}}, 1, 12)
	require.NoError(t, err)

	assert.Len(t, page.Facets.Makes, 5)
	total := 0
	for _, f := range page.Facets.BodyTypes {
		total += f.Count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 26800, page.Facets.PriceRange.Min)
	assert.Equal(t, 52000, page.Facets.PriceRange.Max)
	assert.Equal(t, 2022, page.Facets.YearRange.Min)
	assert.Equal(t, 2024, page.Facets.YearRange.Max)
}

func TestFacetValuesOrderedByName(t *testing.T) {
	facets := ComputeFacets(testVehicles())

	require.Len(t, facets.BodyTypes, 3)
	assert.Equal(t, domain.FacetValue{Value: "sedan", Count: 3}, facets.BodyTypes[0])
	assert.Equal(t, domain.FacetValue{Value: "suv", Count: 1}, facets.BodyTypes[1])
	assert.Equal(t, domain.FacetValue{Value: "truck", Count: 1}, facets.BodyTypes[2])

	makes := make([]string, 0, len(facets.Makes))
	for _, f := range facets.Makes {
		makes = append(makes, f.Value)
	}
	assert.Equal(t, []string{"BMW", "Ford", "Honda", "Tesla", "Toyota"}, makes)
}
