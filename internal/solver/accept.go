package solver

import (
	"wayfarer/internal/constants"
	"wayfarer/internal/models"
	"wayfarer/internal/scoring"
)

// RejectReason explains why a candidate was not accepted for a slot.
type RejectReason string

const (
	RejectUsed      RejectReason = "already_used"
	RejectMealVenue RejectReason = "meal_venue"
	RejectDuration  RejectReason = "does_not_fit_slot"
	RejectCost      RejectReason = "over_budget"
	RejectDiversity RejectReason = "category_repeated"

	acceptOK RejectReason = ""
)

// acceptance is one link in the candidate-acceptance chain. Hard filters
// come first; a soft filter may be waived by the caller.
type acceptance struct {
	reason RejectReason
	soft   bool
	check  func(c scoring.Ranked, s *dayState) bool
}

// acceptanceChain is the ordered filter list applied to every candidate for
// every open slot. Keeping the policy here, separate from the greedy walk,
// means each rule is testable on its own.
var acceptanceChain = []acceptance{
	{
		reason: RejectUsed,
		check: func(c scoring.Ranked, s *dayState) bool {
			return !s.pool.Used(c.Index)
		},
	},
	{
		// Eateries are meal venues, not schedulable activities.
		reason: RejectMealVenue,
		check: func(c scoring.Ranked, s *dayState) bool {
			return c.Place.Category != models.CategoryFood
		},
	},
	{
		reason: RejectDuration,
		check: func(c scoring.Ranked, s *dayState) bool {
			return c.Place.DurationMin > 0 && s.cursor+c.Place.DurationMin <= s.segmentEnd
		},
	},
	{
		reason: RejectCost,
		check: func(c scoring.Ranked, s *dayState) bool {
			cost := c.Place.AvgCost()
			return cost <= s.activityBudget && cost <= s.remainingBudget
		},
	},
	{
		reason: RejectDiversity,
		soft:   true,
		check: func(c scoring.Ranked, s *dayState) bool {
			return s.categoryCounts[c.Place.Category] < constants.MaxPerCategoryPerDay
		},
	},
}

// evaluate runs the chain for one candidate. When waiveSoft is set, soft
// filters are skipped; this happens only after a full pass found no diverse
// candidate, so a day is never left sparse just to honor variety.
func evaluate(c scoring.Ranked, s *dayState, waiveSoft bool) (bool, RejectReason) {
	for _, rule := range acceptanceChain {
		if rule.soft && waiveSoft {
			continue
		}
		if !rule.check(c, s) {
			return false, rule.reason
		}
	}
	return true, acceptOK
}
