package constants

// Budget allocation weights. These are tunables, not structural rules: the
// solver only ever reads the derived BudgetPlan, never the weights themselves.
// They must sum to 1.0.
const (
	BudgetWeightAccommodation = 0.35
	BudgetWeightFood          = 0.25
	BudgetWeightActivities    = 0.30
	BudgetWeightTransport     = 0.10
)

// Scoring weights for the composite activity score. Each component is
// normalized to [0, 1] before weighting, so a composite score never
// exceeds 1.0. Must-visit placement is handled by tiered ranking, not by a
// score bonus.
const (
	ScoreWeightInterest   = 0.4
	ScoreWeightRating     = 0.3
	ScoreWeightBudgetFit  = 0.2
	ScoreWeightPopularity = 0.1
)

const (
	// MaxPerCategoryPerDay is the soft diversity cap: a category may appear
	// at most this many times among one day's non-meal activities before
	// candidates of that category are skipped.
	MaxPerCategoryPerDay = 2

	// ProximityWeight is the ranking penalty per kilometer of distance from
	// the previously placed entry. A tie-break nudge, never a hard filter.
	ProximityWeight = 0.05

	// BudgetFitCeiling is the multiple of the per-activity budget share at
	// which the budget-fit score component reaches zero.
	BudgetFitCeiling = 2.0
)

func init() {
	// Runtime validation: the weight tables must each sum to 1.0
	if BudgetWeightAccommodation+BudgetWeightFood+BudgetWeightActivities+BudgetWeightTransport != 1.0 {
		panic("budget allocation weights must sum to 1.0")
	}
	if ScoreWeightInterest+ScoreWeightRating+ScoreWeightBudgetFit+ScoreWeightPopularity != 1.0 {
		panic("scoring weights must sum to 1.0")
	}
}
