// Package scoring assigns composite desirability scores to candidate places
// and produces the deterministic ranking the solver consumes.
package scoring

import (
	"math"
	"sort"
	"strings"

	"wayfarer/internal/constants"
	"wayfarer/internal/models"
)

// Ranked pairs a place with its score and its position in the input list.
// Must-visit places occupy a higher tier than any scored place, so a ranking
// never depends on a numeric sentinel value.
type Ranked struct {
	Index     int // position in the candidate input, used as the final tie-break
	Place     models.Place
	Score     float64
	MustVisit bool
}

// Score computes the composite desirability of a place for a trip request.
// perActivityShare is the budget available per planned activity; it feeds the
// budget-fit component. All components are normalized to [0, 1] so the
// composite never exceeds 1.0. Pure function.
func Score(place models.Place, req models.TripRequest, perActivityShare float64) float64 {
	score := constants.ScoreWeightInterest * interestMatch(place, req)
	score += constants.ScoreWeightRating * (place.Rating / 5.0)
	score += constants.ScoreWeightBudgetFit * budgetFit(place.AvgCost(), perActivityShare)
	score += constants.ScoreWeightPopularity * popularity(place.RatingCount)
	return score
}

// Rank scores every candidate once and returns them in selection order:
// must-visit tier first, then by score descending. Ties break by rating
// descending, then by stable input order. The input slice is not modified.
func Rank(places []models.Place, req models.TripRequest, perActivityShare float64) []Ranked {
	ranked := make([]Ranked, 0, len(places))
	for i, place := range places {
		ranked = append(ranked, Ranked{
			Index:     i,
			Place:     place,
			Score:     Score(place, req, perActivityShare),
			MustVisit: IsMustVisit(place, req),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MustVisit != ranked[j].MustVisit {
			return ranked[i].MustVisit
		}
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Place.Rating != ranked[j].Place.Rating {
			return ranked[i].Place.Rating > ranked[j].Place.Rating
		}
		return ranked[i].Index < ranked[j].Index
	})

	return ranked
}

// IsMustVisit reports whether the place is flagged must-visit or matches a
// requested must-visit name. Matching is case-insensitive and bidirectional
// on substrings, so "shaniwar wada" matches "Shaniwar Wada Fort".
func IsMustVisit(place models.Place, req models.TripRequest) bool {
	if place.MustVisit {
		return true
	}
	name := strings.ToLower(place.Name)
	for _, wanted := range req.MustVisit {
		wanted = strings.ToLower(strings.TrimSpace(wanted))
		if wanted == "" {
			continue
		}
		if strings.Contains(name, wanted) || strings.Contains(wanted, name) {
			return true
		}
	}
	return false
}

func interestMatch(place models.Place, req models.TripRequest) float64 {
	for _, interest := range req.Interests {
		if place.Category == interest {
			return 1.0
		}
	}
	return 0.0
}

// budgetFit is 1.0 while the place's average cost stays within the
// per-activity share and degrades linearly to 0 at the configured ceiling.
func budgetFit(avgCost, share float64) float64 {
	if avgCost <= 0 {
		return 1.0 // free is always a fit
	}
	if share <= 0 {
		return 0.0
	}
	if avgCost <= share {
		return 1.0
	}
	ceiling := share * constants.BudgetFitCeiling
	if avgCost >= ceiling {
		return 0.0
	}
	return (ceiling - avgCost) / (ceiling - share)
}

func popularity(ratingCount int) float64 {
	if ratingCount <= 0 {
		return 0.0
	}
	return math.Min(1.0, math.Log10(float64(ratingCount)+1)/5.0)
}
