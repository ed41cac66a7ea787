package domain

// Condition describes how a vehicle was used before listing
type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionUsed      Condition = "used"
	ConditionCertified Condition = "certified"
)

// Location is where a vehicle is physically listed
type Location struct {
	City      string
	State     string
	ZipCode   string
	Latitude  float64 // 0 when unknown
	Longitude float64 // 0 when unknown
}

// Dealer identifies the selling dealership
type Dealer struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	Address  string
	Rating   float64 // 0-5
	Verified bool
}

// Vehicle is one listing record. Immutable within a session.
type Vehicle struct {
	ID            string
	Make          string
	Model         string
	Year          int
	Price         int // current asking price, whole currency units
	OriginalPrice int // 0 when not discounted; >= Price otherwise
	Mileage       int
	Condition     Condition
	BodyType      string
	FuelType      string
	Transmission  string
	Drivetrain    string
	ExteriorColor string
	InteriorColor string
	Engine        string
	VIN           string
	Description   string
	Features      []string
	Location      Location
	Dealer        Dealer

	// Precomputed deal-quality figures; this program never derives them.
	ArbitrageScore int // 0-100
	MarketValue    int
	CreatedAt      string
	UpdatedAt      string
}

// Savings is OriginalPrice - Price, floored at zero. Zero when the
// listing carries no original price.
func (v Vehicle) Savings() int {
	if v.OriginalPrice == 0 {
		return 0
	}
	if s := v.OriginalPrice - v.Price; s > 0 {
		return s
	}
	return 0
}

// SortKey selects the field results are ordered by
type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByYear      SortKey = "year"
	SortByMileage   SortKey = "mileage"
	SortByArbitrage SortKey = "arbitrage"
	SortByDistance  SortKey = "distance" // accepted but not computable; falls back to default order
)

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterCriteria is a partially specified query. Zero values and empty
// slices mean "no constraint on this dimension".
type FilterCriteria struct {
	Query         string
	Makes         []string
	Models        []string
	Conditions    []string
	BodyTypes     []string
	FuelTypes     []string
	Transmissions []string
	PriceMin      int
	PriceMax      int
	YearMin       int
	YearMax       int
	MileageMax    int
	SortBy        SortKey
	SortOrder     SortOrder
}

// IsZero reports whether no dimension is constrained and no sort is chosen
func (c FilterCriteria) IsZero() bool {
	return c.Query == "" &&
		len(c.Makes) == 0 && len(c.Models) == 0 && len(c.Conditions) == 0 &&
		len(c.BodyTypes) == 0 && len(c.FuelTypes) == 0 && len(c.Transmissions) == 0 &&
		c.PriceMin == 0 && c.PriceMax == 0 &&
		c.YearMin == 0 && c.YearMax == 0 && c.MileageMax == 0 &&
		c.SortBy == "" && c.SortOrder == ""
}

// Clone returns a deep copy so subscribers never share slices with the owner
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	out.Makes = append([]string(nil), c.Makes...)
	out.Models = append([]string(nil), c.Models...)
	out.Conditions = append([]string(nil), c.Conditions...)
	out.BodyTypes = append([]string(nil), c.BodyTypes...)
	out.FuelTypes = append([]string(nil), c.FuelTypes...)
	out.Transmissions = append([]string(nil), c.Transmissions...)
	return out
}

// FilterPatch is a partial update for FilterCriteria. Nil fields leave the
// current value alone; a pointer to the zero value clears that dimension.
type FilterPatch struct {
	Query         *string
	Makes         *[]string
	Models        *[]string
	Conditions    *[]string
	BodyTypes     *[]string
	FuelTypes     *[]string
	Transmissions *[]string
	PriceMin      *int
	PriceMax      *int
	YearMin       *int
	YearMax       *int
	MileageMax    *int
	SortBy        *SortKey
	SortOrder     *SortOrder
}

// Apply merges the patch into a copy of the given criteria
func (p FilterPatch) Apply(c FilterCriteria) FilterCriteria {
	out := c.Clone()
	if p.Query != nil {
		out.Query = *p.Query
	}
	if p.Makes != nil {
		out.Makes = append([]string(nil), *p.Makes...)
	}
	if p.Models != nil {
		out.Models = append([]string(nil), *p.Models...)
	}
	if p.Conditions != nil {
		out.Conditions = append([]string(nil), *p.Conditions...)
	}
	if p.BodyTypes != nil {
		out.BodyTypes = append([]string(nil), *p.BodyTypes...)
	}
	if p.FuelTypes != nil {
		out.FuelTypes = append([]string(nil), *p.FuelTypes...)
	}
	if p.Transmissions != nil {
		out.Transmissions = append([]string(nil), *p.Transmissions...)
	}
	if p.PriceMin != nil {
		out.PriceMin = *p.PriceMin
	}
	if p.PriceMax != nil {
		out.PriceMax = *p.PriceMax
	}
	if p.YearMin != nil {
		out.YearMin = *p.YearMin
	}
	if p.YearMax != nil {
		out.YearMax = *p.YearMax
	}
	if p.MileageMax != nil {
		out.MileageMax = *p.MileageMax
	}
	if p.SortBy != nil {
		out.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		out.SortOrder = *p.SortOrder
	}
	return out
}

// FacetValue is one distinct value of a filterable dimension with its
// occurrence count across the full catalog
type FacetValue struct {
	Value string
	Count int
}

// Range is a closed numeric interval
type Range struct {
	Min int
	Max int
}

// Facets describes the filterable dimensions of the whole catalog. It is
// computed over the unfiltered record set so counts do not collapse to
// zero while the user narrows a search.
type Facets struct {
	Makes         []FacetValue
	Models        []FacetValue
	BodyTypes     []FacetValue
	Conditions    []FacetValue
	FuelTypes     []FacetValue
	Transmissions []FacetValue
	PriceRange    Range
	YearRange     Range
}

// ResultPage is the output of one query evaluation
type ResultPage struct {
	Vehicles   []Vehicle
	Total      int // matches across all pages
	Page       int // 1-based
	PageSize   int
	TotalPages int
	Facets     Facets
}

// HasNextPage reports whether a later page exists
func (r ResultPage) HasNextPage() bool { return r.Page < r.TotalPages }

// HasPrevPage reports whether an earlier page exists
func (r ResultPage) HasPrevPage() bool { return r.Page > 1 }

// SuggestionType tags where an autocomplete entry came from
type SuggestionType string

const (
	SuggestionMake     SuggestionType = "make"
	SuggestionModel    SuggestionType = "model"
	SuggestionLocation SuggestionType = "location"
	SuggestionRecent   SuggestionType = "recent"
)

// Suggestion is one autocomplete entry
type Suggestion struct {
	Type     SuggestionType
	Text     string
	Subtitle string // optional, e.g. body style for a model
	Count    int    // optional occurrence count, 0 when unknown
}
