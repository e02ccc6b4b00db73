// Package solver turns a ranked candidate list into a feasible single-day
// schedule: fixed meal anchors plus a greedy, budget- and time-constrained
// fill of the gaps between them.
package solver

import (
	"fmt"
	"sort"

	"wayfarer/internal/constants"
	"wayfarer/internal/errors"
	"wayfarer/internal/models"
	"wayfarer/internal/scoring"
	"wayfarer/internal/utils"
)

// DayInput carries everything one day's solve needs. Budgets are the
// remaining amounts at the start of the day; the solver deducts from its own
// copies as it places entries and reports the day total back via DayPlan.Cost.
type DayInput struct {
	Date            string
	DayStart        string // HH:MM
	DayEnd          string // HH:MM
	PaceTarget      int
	ActivityBudget  float64 // this day's share of the activities budget
	MealCost        float64 // fixed estimate per meal, drawn from the food sub-budget
	RemainingBudget float64 // remaining total trip budget, the hard cap on everything
}

// dayState is the mutable bookkeeping for one day's greedy walk.
type dayState struct {
	pool            *Pool
	cursor          int // minutes from midnight
	segmentEnd      int
	activityBudget  float64
	remainingBudget float64
	categoryCounts  map[models.Category]int
	prevLat         float64
	prevLng         float64
	hasPrev         bool
}

type timeSegment struct {
	start int
	end   int
}

// PlanDay builds the schedule for one date. Meals are anchored first, then
// each open segment between them is filled from the ranked list until the
// pace target is reached or nothing more fits. Placed candidates are marked
// used in the shared pool immediately, so a partial day always leaves
// consistent state behind.
//
// The only fatal outcome is a day that can host nothing at all; every other
// shortfall is reported as a warning on the returned plan.
func PlanDay(pool *Pool, ranked []scoring.Ranked, in DayInput) (models.DayPlan, error) {
	plan := models.DayPlan{Date: in.Date, Entries: []models.ScheduledActivity{}}

	if in.RemainingBudget <= 0 {
		return plan, &errors.InfeasibleDayError{Date: in.Date, Reason: constants.ReasonBudgetExhausted}
	}

	dayStart, err := utils.ParseTimeToMinutes(in.DayStart)
	if err != nil {
		return plan, fmt.Errorf("invalid day start time: %w", err)
	}
	dayEnd, err := utils.ParseTimeToMinutes(in.DayEnd)
	if err != nil {
		return plan, fmt.Errorf("invalid day end time: %w", err)
	}

	state := &dayState{
		pool:            pool,
		activityBudget:  in.ActivityBudget,
		remainingBudget: in.RemainingBudget,
		categoryCounts:  make(map[models.Category]int),
	}

	meals, mealWarnings := placeMeals(state, in, dayStart, dayEnd)
	plan.Warnings = append(plan.Warnings, mealWarnings...)

	activities := fillSegments(state, ranked, in, openSegments(dayStart, dayEnd, meals))

	plan.Entries = mergeByStart(meals, activities)
	for _, entry := range plan.Entries {
		plan.Cost += entry.Cost
	}

	if len(plan.Entries) == 0 {
		return plan, &errors.InfeasibleDayError{Date: in.Date, Reason: constants.ReasonNothingSchedulable}
	}
	return plan, nil
}

// placeMeals pins breakfast, lunch and dinner to their anchor times, clamped
// into the operating window and pushed past any earlier meal. A meal that
// cannot fit the window or the remaining budget is dropped with a warning,
// never an error: the day still stands.
func placeMeals(state *dayState, in DayInput, dayStart, dayEnd int) ([]models.ScheduledActivity, []string) {
	anchors := []struct {
		name constants.MealName
		at   string
	}{
		{constants.MealBreakfast, constants.BreakfastTime},
		{constants.MealLunch, constants.LunchTime},
		{constants.MealDinner, constants.DinnerTime},
	}

	var meals []models.ScheduledActivity
	var warnings []string
	venuesToday := make(map[string]bool)
	lastEnd := dayStart

	for _, anchor := range anchors {
		anchorMin, err := utils.ParseTimeToMinutes(anchor.at)
		if err != nil {
			continue
		}
		start := anchorMin
		if start < lastEnd {
			start = lastEnd
		}
		end := start + constants.MealDurationMin
		if end > dayEnd {
			warnings = append(warnings, fmt.Sprintf("%s does not fit the operating window", anchor.name))
			continue
		}
		if in.MealCost > state.remainingBudget {
			warnings = append(warnings, fmt.Sprintf("%s skipped: insufficient budget", anchor.name))
			continue
		}
		venue, ok := pickMealVenue(state.pool, venuesToday)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s skipped: no eatery among candidates", anchor.name))
			continue
		}

		meal := models.ScheduledActivity{
			PlaceID:  venue.ID,
			Name:     fmt.Sprintf("%s (%s)", venue.Name, anchor.name),
			Category: models.CategoryFood,
			Start:    utils.FormatMinutes(start),
			End:      utils.FormatMinutes(end),
			Cost:     in.MealCost,
			Rating:   venue.Rating,
			Kind:     models.SlotMeal,
			Meal:     anchor.name,
		}
		venuesToday[venue.ID] = true

		state.remainingBudget -= in.MealCost
		meals = append(meals, meal)
		lastEnd = end
	}

	return meals, warnings
}

// pickMealVenue selects the best eatery for a meal slot: highest rating,
// then candidate order. Venues may repeat across days (a trip can return to
// a favorite restaurant) but not within one day, and they are never marked
// used in the pool so they stay available as meal venues for later days.
func pickMealVenue(pool *Pool, venuesToday map[string]bool) (models.Place, bool) {
	best := -1
	for i := 0; i < pool.Len(); i++ {
		place := pool.Place(i)
		if place.Category != models.CategoryFood || venuesToday[place.ID] {
			continue
		}
		if best == -1 || place.Rating > pool.Place(best).Rating {
			best = i
		}
	}
	if best == -1 {
		return models.Place{}, false
	}
	return pool.Place(best), true
}

// openSegments returns the free time blocks between the day boundaries and
// the placed meals, in chronological order.
func openSegments(dayStart, dayEnd int, meals []models.ScheduledActivity) []timeSegment {
	var segments []timeSegment
	cursor := dayStart

	for _, meal := range meals {
		start, err1 := utils.ParseTimeToMinutes(meal.Start)
		end, err2 := utils.ParseTimeToMinutes(meal.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if cursor < start {
			segments = append(segments, timeSegment{start: cursor, end: start})
		}
		cursor = end
	}
	if cursor < dayEnd {
		segments = append(segments, timeSegment{start: cursor, end: dayEnd})
	}
	return segments
}

// fillSegments walks the open segments and greedily places the best
// acceptable candidate into each slot until the pace target is reached.
// Diversity is enforced on the first attempt for each slot and waived only
// when no diverse candidate exists, so scarcity never under-fills a day.
func fillSegments(state *dayState, ranked []scoring.Ranked, in DayInput, segments []timeSegment) []models.ScheduledActivity {
	var placed []models.ScheduledActivity

	for _, segment := range segments {
		state.cursor = segment.start
		state.segmentEnd = segment.end

		for len(placed) < in.PaceTarget {
			idx, ok := nextCandidate(state, ranked, false)
			if !ok {
				idx, ok = nextCandidate(state, ranked, true)
			}
			if !ok {
				break // nothing fits this segment anymore
			}

			candidate := ranked[idx]
			place := candidate.Place
			cost := place.AvgCost()
			start := state.cursor
			end := start + place.DurationMin

			placed = append(placed, models.ScheduledActivity{
				PlaceID:  place.ID,
				Name:     place.Name,
				Category: place.Category,
				Start:    utils.FormatMinutes(start),
				End:      utils.FormatMinutes(end),
				Cost:     cost,
				Rating:   place.Rating,
				Kind:     models.SlotActivity,
			})

			state.pool.MarkUsed(candidate.Index)
			state.activityBudget -= cost
			state.remainingBudget -= cost
			state.categoryCounts[place.Category]++
			state.cursor = end
			state.prevLat, state.prevLng, state.hasPrev = place.Lat, place.Lng, true
		}
	}

	return placed
}

// nextCandidate returns the position in ranked of the best acceptable
// candidate for the current slot. Ordering is the global two-tier ranking
// adjusted by a proximity penalty against the previously placed entry;
// must-visit candidates keep their tier regardless of distance.
func nextCandidate(state *dayState, ranked []scoring.Ranked, waiveSoft bool) (int, bool) {
	order := make([]int, len(ranked))
	for i := range order {
		order[i] = i
	}

	if state.hasPrev {
		sort.SliceStable(order, func(a, b int) bool {
			ca, cb := ranked[order[a]], ranked[order[b]]
			if ca.MustVisit != cb.MustVisit {
				return ca.MustVisit
			}
			sa := ca.Score - utils.DistanceKm(state.prevLat, state.prevLng, ca.Place.Lat, ca.Place.Lng)*constants.ProximityWeight
			sb := cb.Score - utils.DistanceKm(state.prevLat, state.prevLng, cb.Place.Lat, cb.Place.Lng)*constants.ProximityWeight
			if sa != sb {
				return sa > sb
			}
			if ca.Place.Rating != cb.Place.Rating {
				return ca.Place.Rating > cb.Place.Rating
			}
			return ca.Index < cb.Index
		})
	}

	for _, pos := range order {
		if ok, _ := evaluate(ranked[pos], state, waiveSoft); ok {
			return pos, true
		}
	}
	return 0, false
}

// mergeByStart interleaves meals and activities into one chronological list.
func mergeByStart(meals, activities []models.ScheduledActivity) []models.ScheduledActivity {
	entries := make([]models.ScheduledActivity, 0, len(meals)+len(activities))
	entries = append(entries, meals...)
	entries = append(entries, activities...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
	return entries
}
