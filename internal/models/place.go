package models

// Category is the fixed taxonomy a place belongs to. Interests in a trip
// request use the same values.
type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryCulture     Category = "culture"
	CategoryHistory     Category = "history"
	CategoryFood        Category = "food"
	CategoryNature      Category = "nature"
	CategoryShopping    Category = "shopping"
	CategoryNightlife   Category = "nightlife"
	CategoryRelaxation  Category = "relaxation"
	CategoryAdventure   Category = "adventure"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategorySightseeing,
	CategoryCulture,
	CategoryHistory,
	CategoryFood,
	CategoryNature,
	CategoryShopping,
	CategoryNightlife,
	CategoryRelaxation,
	CategoryAdventure,
}

// ValidCategory reports whether c is part of the taxonomy.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Place is a candidate point of interest or eatery. Immutable once fetched;
// selection state lives in the solver's pool, not here.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    Category `json:"category"`
	Rating      float64  `json:"rating"`       // 0-5
	RatingCount int      `json:"rating_count"` // number of user ratings
	CostMin     float64  `json:"cost_min"`
	CostMax     float64  `json:"cost_max"`
	DurationMin int      `json:"duration_min"` // estimated visit length in minutes
	MustVisit   bool     `json:"must_visit"`
}

// AvgCost is the cost charged against the budget when the place is scheduled.
func (p Place) AvgCost() float64 {
	return (p.CostMin + p.CostMax) / 2
}
