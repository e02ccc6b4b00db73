// Package planner orchestrates a full itinerary build: request validation,
// budget allocation, global scoring, then one solver pass per trip date with
// running budget bookkeeping in between.
package planner

import (
	"github.com/mitchellh/hashstructure/v2"

	"wayfarer/internal/budget"
	"wayfarer/internal/constants"
	"wayfarer/internal/errors"
	"wayfarer/internal/logger"
	"wayfarer/internal/models"
	"wayfarer/internal/scoring"
	"wayfarer/internal/solver"
	"wayfarer/internal/utils"
	"wayfarer/internal/validation"
)

// Build assembles a complete itinerary from a trip request and an
// already-fetched candidate list. The candidate slice is consumed through a
// pool owned by this call; nothing is shared across invocations, so
// independent builds may run concurrently.
//
// The result is deterministic: identical inputs produce identical
// itineraries, fingerprint included. ID and CreatedAt are left empty here
// and stamped by the caller on save.
func Build(req models.TripRequest, candidates []models.Place) (models.Itinerary, error) {
	if report := validation.ValidateTripRequest(req); report.HasConflicts() {
		return models.Itinerary{}, &errors.TripRequestError{Problems: report.Descriptions()}
	}

	plan, err := budget.Allocate(req.Budget)
	if err != nil {
		return models.Itinerary{}, err
	}

	// Bound the pool so a build stays linear in candidates x days.
	if len(candidates) > constants.MaxCandidates {
		logger.Warn("Candidate pool truncated", "candidates", len(candidates), "cap", constants.MaxCandidates)
		candidates = candidates[:constants.MaxCandidates]
	}

	numDays := req.NumDays()
	paceTarget := req.PaceTarget()
	perActivityShare := plan.Activities / float64(numDays*paceTarget)
	mealCost := utils.Round2(plan.Food / float64(numDays*constants.MealsPerDay))

	// Score once, globally: must-visit places hold the top tier for the
	// whole trip, so they are taken on their first eligible day instead of
	// competing fresh each morning.
	ranked := scoring.Rank(candidates, req, perActivityShare)
	pool := solver.NewPool(candidates)

	dayStart, dayEnd := req.Window()
	it := models.Itinerary{
		Destination:     req.Destination,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Pace:            string(req.Pace),
		Budget:          plan,
		Days:            make([]models.DayPlan, 0, numDays),
		RemainingBudget: req.Budget,
	}

	// Activities and food share one spendable amount; each day gets an even
	// split of whatever is left, so early overspend or underspend is
	// absorbed by later days instead of starving them.
	spendable := plan.Activities + plan.Food

	for i, date := range req.Dates() {
		remainingDays := numDays - i
		dayShare := spendable / float64(remainingDays)
		activityBudget := dayShare - float64(constants.MealsPerDay)*mealCost
		if activityBudget < 0 {
			activityBudget = 0
		}

		day, err := solver.PlanDay(pool, ranked, solver.DayInput{
			Date:            date,
			DayStart:        dayStart,
			DayEnd:          dayEnd,
			PaceTarget:      paceTarget,
			ActivityBudget:  activityBudget,
			MealCost:        mealCost,
			RemainingBudget: it.RemainingBudget,
		})
		if err != nil {
			infeasible, ok := errors.AsInfeasibleDay(err)
			if !ok {
				return models.Itinerary{}, err
			}
			logger.Warn("Day infeasible", "date", date, "reason", infeasible.Reason)
			day = models.DayPlan{Date: date, Entries: []models.ScheduledActivity{}, InfeasibleReason: infeasible.Reason}
		}

		it.Days = append(it.Days, day)
		it.Spent = utils.Round2(it.Spent + day.Cost)
		it.RemainingBudget = utils.Round2(req.Budget - it.Spent)
		spendable -= day.Cost
		if spendable < 0 {
			spendable = 0
		}
	}

	it.UnmetMustVisits = unmetMustVisits(req, candidates, it.Days)

	hash, err := hashstructure.Hash(it, hashstructure.FormatV2, nil)
	if err != nil {
		return models.Itinerary{}, err
	}
	it.Fingerprint = hash

	logger.Info("Itinerary built",
		"destination", req.Destination,
		"days", len(it.Days),
		"spent", it.Spent,
		"unmet_must_visits", len(it.UnmetMustVisits))
	return it, nil
}

// unmetMustVisits lists every requested must-visit that did not land in the
// schedule, plus any flagged candidate that went unplaced. Best-effort
// infeasibility is surfaced this way instead of failing the build.
func unmetMustVisits(req models.TripRequest, candidates []models.Place, days []models.DayPlan) []string {
	placedIDs := make(map[string]bool)
	for _, day := range days {
		for _, entry := range day.Entries {
			// Meal venues count as placements too: a must-visit eatery
			// scheduled for lunch has been visited.
			if entry.PlaceID != "" {
				placedIDs[entry.PlaceID] = true
			}
		}
	}

	var unmet []string
	seen := make(map[string]bool)

	for _, name := range req.MustVisit {
		nameReq := models.TripRequest{MustVisit: []string{name}}
		found := false
		for _, place := range candidates {
			if scoring.IsMustVisit(place, nameReq) && placedIDs[place.ID] {
				found = true
				break
			}
		}
		if !found && !seen[name] {
			unmet = append(unmet, name)
			seen[name] = true
		}
	}

	for _, place := range candidates {
		if place.MustVisit && !placedIDs[place.ID] && !seen[place.Name] {
			unmet = append(unmet, place.Name)
			seen[place.Name] = true
		}
	}

	return unmet
}
