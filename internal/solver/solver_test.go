package solver

import (
	"fmt"
	"strings"
	"testing"

	"wayfarer/internal/constants"
	"wayfarer/internal/errors"
	"wayfarer/internal/models"
	"wayfarer/internal/scoring"
	"wayfarer/internal/utils"
)

func testPlace(id string, cat models.Category, rating, cost float64, durationMin int) models.Place {
	return models.Place{
		ID:          id,
		Name:        strings.ToUpper(id),
		Category:    cat,
		Rating:      rating,
		RatingCount: 1000,
		CostMin:     cost,
		CostMax:     cost,
		DurationMin: durationMin,
	}
}

func testCandidates() []models.Place {
	return []models.Place{
		testPlace("eat-1", models.CategoryFood, 4.5, 100, 60),
		testPlace("eat-2", models.CategoryFood, 4.2, 80, 60),
		testPlace("eat-3", models.CategoryFood, 3.9, 60, 60),
		testPlace("act-sight", models.CategorySightseeing, 4.6, 50, 90),
		testPlace("act-culture", models.CategoryCulture, 4.4, 30, 60),
		testPlace("act-history", models.CategoryHistory, 4.3, 40, 120),
		testPlace("act-nature", models.CategoryNature, 4.1, 0, 60),
		testPlace("act-sight-2", models.CategorySightseeing, 4.0, 20, 60),
	}
}

func defaultInput() DayInput {
	return DayInput{
		Date:            "2026-03-01",
		DayStart:        constants.DefaultDayStart,
		DayEnd:          constants.DefaultDayEnd,
		PaceTarget:      4,
		ActivityBudget:  500,
		MealCost:        50,
		RemainingBudget: 2000,
	}
}

func rankAll(places []models.Place) []scoring.Ranked {
	return scoring.Rank(places, models.TripRequest{}, 100)
}

func mustMinutes(t *testing.T, hhmm string) int {
	t.Helper()
	m, err := utils.ParseTimeToMinutes(hhmm)
	if err != nil {
		t.Fatalf("bad time %q: %v", hhmm, err)
	}
	return m
}

func TestPlanDayMealsAndActivities(t *testing.T) {
	places := testCandidates()
	pool := NewPool(places)

	plan, err := PlanDay(pool, rankAll(places), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := plan.MealCount(); got != constants.MealsPerDay {
		t.Errorf("expected %d meals, got %d", constants.MealsPerDay, got)
	}
	if got := plan.ActivityCount(); got != 4 {
		t.Errorf("expected 4 activities for moderate pace, got %d", got)
	}

	// Breakfast must sit at its anchor.
	if plan.Entries[0].Kind != models.SlotMeal || plan.Entries[0].Start != constants.BreakfastTime {
		t.Errorf("expected breakfast at %s first, got %s %q", constants.BreakfastTime, plan.Entries[0].Start, plan.Entries[0].Kind)
	}

	// Entries must be chronological and non-overlapping.
	for i := 1; i < len(plan.Entries); i++ {
		prevEnd := mustMinutes(t, plan.Entries[i-1].End)
		start := mustMinutes(t, plan.Entries[i].Start)
		if start < prevEnd {
			t.Errorf("entry %q (start %s) overlaps previous end %s", plan.Entries[i].Name, plan.Entries[i].Start, plan.Entries[i-1].End)
		}
	}

	// Day cost must equal the sum of entry costs.
	var sum float64
	for _, e := range plan.Entries {
		sum += e.Cost
	}
	if plan.Cost != sum {
		t.Errorf("day cost %.2f does not match entry sum %.2f", plan.Cost, sum)
	}
}

func TestPlanDayBudgetExhausted(t *testing.T) {
	places := testCandidates()
	in := defaultInput()
	in.RemainingBudget = 0

	_, err := PlanDay(NewPool(places), rankAll(places), in)
	infeasible, ok := errors.AsInfeasibleDay(err)
	if !ok {
		t.Fatalf("expected InfeasibleDayError, got %v", err)
	}
	if infeasible.Reason != constants.ReasonBudgetExhausted {
		t.Errorf("expected reason %q, got %q", constants.ReasonBudgetExhausted, infeasible.Reason)
	}
}

func TestPlanDayNothingSchedulable(t *testing.T) {
	_, err := PlanDay(NewPool(nil), nil, defaultInput())
	infeasible, ok := errors.AsInfeasibleDay(err)
	if !ok {
		t.Fatalf("expected InfeasibleDayError, got %v", err)
	}
	if infeasible.Reason != constants.ReasonNothingSchedulable {
		t.Errorf("expected reason %q, got %q", constants.ReasonNothingSchedulable, infeasible.Reason)
	}
}

func TestPlanDayNoEateriesSkipsMealsWithWarnings(t *testing.T) {
	places := []models.Place{
		testPlace("act-1", models.CategorySightseeing, 4.5, 10, 60),
		testPlace("act-2", models.CategoryCulture, 4.2, 10, 60),
	}

	plan, err := PlanDay(NewPool(places), rankAll(places), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plan.MealCount(); got != 0 {
		t.Errorf("expected no meals without eateries, got %d", got)
	}
	if len(plan.Warnings) != constants.MealsPerDay {
		t.Errorf("expected %d meal warnings, got %d: %v", constants.MealsPerDay, len(plan.Warnings), plan.Warnings)
	}
	if got := plan.ActivityCount(); got == 0 {
		t.Error("expected activities to still be scheduled")
	}
}

func TestPlanDayNarrowWindowDropsDinner(t *testing.T) {
	places := testCandidates()
	in := defaultInput()
	in.DayEnd = "19:00"

	plan, err := PlanDay(NewPool(places), rankAll(places), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plan.MealCount(); got != 2 {
		t.Errorf("expected breakfast and lunch only, got %d meals", got)
	}
	found := false
	for _, w := range plan.Warnings {
		if strings.Contains(w, string(constants.MealDinner)) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a dinner warning, got %v", plan.Warnings)
	}
	for _, e := range plan.Entries {
		if mustMinutes(t, e.End) > mustMinutes(t, in.DayEnd) {
			t.Errorf("entry %q ends %s, after window end %s", e.Name, e.End, in.DayEnd)
		}
	}
}

func TestPlanDayDiversityWaivedUnderScarcity(t *testing.T) {
	// Only one non-food category available: the cap of two per category
	// must be waived rather than leaving the day under target.
	places := []models.Place{testPlace("eat-1", models.CategoryFood, 4.0, 50, 60)}
	for i := 0; i < 6; i++ {
		places = append(places, testPlace(fmt.Sprintf("sight-%d", i), models.CategorySightseeing, 4.0, 10, 60))
	}

	in := defaultInput()
	in.PaceTarget = 5
	plan, err := PlanDay(NewPool(places), rankAll(places), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plan.ActivityCount(); got != 5 {
		t.Errorf("expected waiver to fill 5 activities, got %d", got)
	}
}

func TestPlanDayDiversityCapHolds(t *testing.T) {
	// With two categories available the cap keeps a third sightseeing
	// entry out in favor of the other category.
	places := []models.Place{
		testPlace("sight-a", models.CategorySightseeing, 5.0, 10, 60),
		testPlace("sight-b", models.CategorySightseeing, 4.9, 10, 60),
		testPlace("sight-c", models.CategorySightseeing, 4.8, 10, 60),
		testPlace("nature-a", models.CategoryNature, 3.0, 10, 60),
	}

	in := defaultInput()
	in.PaceTarget = 3
	plan, err := PlanDay(NewPool(places), rankAll(places), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := make(map[models.Category]int)
	for _, e := range plan.Entries {
		if e.Kind == models.SlotActivity {
			counts[e.Category]++
		}
	}
	if counts[models.CategorySightseeing] != constants.MaxPerCategoryPerDay {
		t.Errorf("expected %d sightseeing entries, got %d", constants.MaxPerCategoryPerDay, counts[models.CategorySightseeing])
	}
	if counts[models.CategoryNature] != 1 {
		t.Errorf("expected the nature candidate to take the third slot, got %v", counts)
	}
}

func TestPlanDayRespectsActivityBudget(t *testing.T) {
	places := []models.Place{
		testPlace("eat-1", models.CategoryFood, 4.0, 50, 60),
		testPlace("pricey", models.CategoryAdventure, 5.0, 900, 60),
		testPlace("cheap", models.CategoryNature, 3.5, 10, 60),
	}

	in := defaultInput()
	in.ActivityBudget = 100
	plan, err := PlanDay(NewPool(places), rankAll(places), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range plan.Entries {
		if e.PlaceID == "pricey" {
			t.Errorf("over-budget candidate was scheduled: %v", e)
		}
	}
}

func TestPlanDayMarksActivitiesUsedButNotMealVenues(t *testing.T) {
	places := testCandidates()
	pool := NewPool(places)

	plan, err := PlanDay(pool, rankAll(places), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range plan.Entries {
		idx := -1
		for i := range places {
			if places[i].ID == e.PlaceID {
				idx = i
				break
			}
		}
		if idx == -1 {
			t.Fatalf("scheduled unknown place %q", e.PlaceID)
		}
		switch e.Kind {
		case models.SlotActivity:
			if !pool.Used(idx) {
				t.Errorf("activity %q not marked used", e.PlaceID)
			}
		case models.SlotMeal:
			if pool.Used(idx) {
				t.Errorf("meal venue %q should stay available", e.PlaceID)
			}
		}
	}
}

func TestPlanDayMealVenueNotRepeatedWithinDay(t *testing.T) {
	// Two eateries for three meals: one meal must be dropped instead of a
	// venue serving twice in the same day.
	places := []models.Place{
		testPlace("eat-1", models.CategoryFood, 4.5, 100, 60),
		testPlace("eat-2", models.CategoryFood, 4.2, 80, 60),
		testPlace("act-1", models.CategoryNature, 4.0, 10, 60),
	}
	plan, err := PlanDay(NewPool(places), rankAll(places), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, e := range plan.Entries {
		if e.Kind == models.SlotMeal {
			seen[e.PlaceID]++
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("venue %q used %d times in one day", id, n)
		}
	}
	if got := plan.MealCount(); got != 2 {
		t.Errorf("expected 2 meals with 2 venues, got %d", got)
	}
	if len(plan.Warnings) == 0 {
		t.Error("expected a warning for the dropped meal")
	}
}

func TestEvaluateRejectReasons(t *testing.T) {
	eatery := scoring.Ranked{Index: 0, Place: testPlace("eat", models.CategoryFood, 4.0, 50, 60)}
	long := scoring.Ranked{Index: 1, Place: testPlace("long", models.CategoryNature, 4.0, 10, 600)}
	pricey := scoring.Ranked{Index: 2, Place: testPlace("pricey", models.CategoryNature, 4.0, 999, 60)}
	ok := scoring.Ranked{Index: 3, Place: testPlace("ok", models.CategoryNature, 4.0, 10, 60)}

	state := &dayState{
		pool:            NewPool([]models.Place{eatery.Place, long.Place, pricey.Place, ok.Place}),
		cursor:          9 * 60,
		segmentEnd:      11 * 60,
		activityBudget:  100,
		remainingBudget: 100,
		categoryCounts:  map[models.Category]int{},
	}

	tests := []struct {
		name   string
		c      scoring.Ranked
		reason RejectReason
	}{
		{"meal venue", eatery, RejectMealVenue},
		{"too long", long, RejectDuration},
		{"too expensive", pricey, RejectCost},
		{"acceptable", ok, acceptOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accepted, reason := evaluate(tt.c, state, false)
			if reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, reason)
			}
			if accepted != (tt.reason == acceptOK) {
				t.Errorf("accepted=%v inconsistent with reason %q", accepted, reason)
			}
		})
	}

	state.pool.MarkUsed(3)
	if accepted, reason := evaluate(ok, state, false); accepted || reason != RejectUsed {
		t.Errorf("expected used rejection, got accepted=%v reason=%q", accepted, reason)
	}

	state.categoryCounts[models.CategoryNature] = constants.MaxPerCategoryPerDay
	if accepted, reason := evaluate(pricey, state, true); accepted || reason != RejectCost {
		t.Errorf("waiving soft rules must keep hard rules, got accepted=%v reason=%q", accepted, reason)
	}
}
