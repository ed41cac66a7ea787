package query

import (
	"net/url"
	"strconv"
	"strings"

	"carbitrage/internal/domain"
)

// ParseLink converts a deep-link query string into filter criteria.
// Unknown keys are dropped, comma-separated values become sets, and
// values that fail to parse as integers are ignored rather than
// reported. A malformed string yields zero criteria.
func ParseLink(link string) domain.FilterCriteria {
	link = strings.TrimPrefix(strings.TrimSpace(link), "?")
	values, err := url.ParseQuery(link)
	if err != nil {
		return domain.FilterCriteria{}
	}
	return ParseQueryParams(values)
}

// ParseQueryParams converts URL query parameters into filter criteria
func ParseQueryParams(values url.Values) domain.FilterCriteria {
	c := domain.FilterCriteria{
		Query:         strings.TrimSpace(values.Get("q")),
		Makes:         splitList(values.Get("make")),
		Models:        splitList(values.Get("model")),
		Conditions:    splitList(values.Get("condition")),
		BodyTypes:     splitList(values.Get("bodyType")),
		FuelTypes:     splitList(values.Get("fuelType")),
		Transmissions: splitList(values.Get("transmission")),
		PriceMin:      parseInt(values.Get("priceMin")),
		PriceMax:      parseInt(values.Get("priceMax")),
		YearMin:       parseInt(values.Get("yearMin")),
		YearMax:       parseInt(values.Get("yearMax")),
		MileageMax:    parseInt(values.Get("mileageMax")),
	}

	if sortBy := values.Get("sortBy"); sortBy != "" {
		c.SortBy = domain.SortKey(sortBy)
	}
	switch values.Get("sortOrder") {
	case "asc":
		c.SortOrder = domain.SortAsc
	case "desc":
		c.SortOrder = domain.SortDesc
	}

	return c
}

// splitList turns "a,b, c" into {"a","b","c"}, dropping empty entries
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseInt returns 0 for anything that is not a positive integer
func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
