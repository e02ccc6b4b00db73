package validation

import (
	"testing"

	"wayfarer/internal/constants"
	"wayfarer/internal/models"
)

func validRequest() models.TripRequest {
	return models.TripRequest{
		Destination: "Pune",
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-03",
		Budget:      5000,
		Interests:   []models.Category{models.CategoryHistory},
		Pace:        constants.PaceRelaxed,
	}
}

func hasConflict(r Result, want ConflictType) bool {
	for _, c := range r.Conflicts {
		if c.Type == want {
			return true
		}
	}
	return false
}

func TestValidateTripRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripRequest)
		want   ConflictType
	}{
		{"empty destination", func(r *models.TripRequest) { r.Destination = "" }, ConflictEmptyDestination},
		{"bad start date", func(r *models.TripRequest) { r.StartDate = "March 1" }, ConflictInvalidDate},
		{"bad end date", func(r *models.TripRequest) { r.EndDate = "2026-3-3" }, ConflictInvalidDate},
		{"reversed dates", func(r *models.TripRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }, ConflictReversedDates},
		{"too long", func(r *models.TripRequest) { r.EndDate = "2026-04-15" }, ConflictTripTooLong},
		{"zero budget", func(r *models.TripRequest) { r.Budget = 0 }, ConflictInvalidBudget},
		{"negative budget", func(r *models.TripRequest) { r.Budget = -10 }, ConflictInvalidBudget},
		{"unknown pace", func(r *models.TripRequest) { r.Pace = "sprint" }, ConflictInvalidPace},
		{"unknown interest", func(r *models.TripRequest) { r.Interests = []models.Category{"stargazing"} }, ConflictInvalidInterest},
		{"bad window time", func(r *models.TripRequest) { r.DayStart = "8am" }, ConflictInvalidWindow},
		{"inverted window", func(r *models.TripRequest) { r.DayStart, r.DayEnd = "20:00", "08:00" }, ConflictInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			result := ValidateTripRequest(req)
			if !hasConflict(result, tt.want) {
				t.Errorf("expected conflict %q, got %v", tt.want, result.Conflicts)
			}
		})
	}
}

func TestValidateTripRequestAccepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripRequest)
	}{
		{"typical", func(r *models.TripRequest) {}},
		{"single day", func(r *models.TripRequest) { r.EndDate = r.StartDate }},
		{"empty pace defaults", func(r *models.TripRequest) { r.Pace = "" }},
		{"thirty days exactly", func(r *models.TripRequest) { r.EndDate = "2026-03-30" }},
		{"custom window", func(r *models.TripRequest) { r.DayStart, r.DayEnd = "09:00", "18:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			if result := ValidateTripRequest(req); result.HasConflicts() {
				t.Errorf("expected no conflicts, got %v", result.Descriptions())
			}
		})
	}
}

func entry(id, start, end string, kind models.SlotKind) models.ScheduledActivity {
	return models.ScheduledActivity{
		PlaceID: id,
		Name:    id,
		Start:   start,
		End:     end,
		Kind:    kind,
	}
}

func TestValidateItinerary(t *testing.T) {
	req := validRequest()

	base := func() models.Itinerary {
		return models.Itinerary{
			Days: []models.DayPlan{
				{Date: "2026-03-01", Entries: []models.ScheduledActivity{
					entry("eat-1", "08:00", "09:15", models.SlotMeal),
					entry("a", "09:15", "10:15", models.SlotActivity),
					entry("b", "10:30", "11:30", models.SlotActivity),
				}},
				{Date: "2026-03-02", Entries: []models.ScheduledActivity{
					entry("eat-1", "08:00", "09:15", models.SlotMeal),
					entry("c", "09:15", "10:15", models.SlotActivity),
				}},
			},
			Spent: 400,
		}
	}

	t.Run("clean itinerary passes", func(t *testing.T) {
		if result := ValidateItinerary(base(), req); result.HasConflicts() {
			t.Errorf("expected no conflicts, got %v", result.Descriptions())
		}
	})

	t.Run("overlap detected", func(t *testing.T) {
		it := base()
		it.Days[0].Entries[2].Start = "10:00"
		if result := ValidateItinerary(it, req); !hasConflict(result, ConflictOverlappingEntries) {
			t.Errorf("expected overlap conflict, got %v", result.Conflicts)
		}
	})

	t.Run("duplicate place across days", func(t *testing.T) {
		it := base()
		it.Days[1].Entries[1].PlaceID = "a"
		if result := ValidateItinerary(it, req); !hasConflict(result, ConflictDuplicatePlace) {
			t.Errorf("expected duplicate conflict, got %v", result.Conflicts)
		}
	})

	t.Run("repeated meal venue allowed", func(t *testing.T) {
		// eat-1 serves breakfast on both days in the base fixture.
		if result := ValidateItinerary(base(), req); hasConflict(result, ConflictDuplicatePlace) {
			t.Errorf("meal venues may repeat across days, got %v", result.Conflicts)
		}
	})

	t.Run("outside window", func(t *testing.T) {
		it := base()
		it.Days[0].Entries[0].Start = "06:00"
		it.Days[0].Entries[0].End = "07:15"
		if result := ValidateItinerary(it, req); !hasConflict(result, ConflictOutsideWindow) {
			t.Errorf("expected window conflict, got %v", result.Conflicts)
		}
	})

	t.Run("budget exceeded", func(t *testing.T) {
		it := base()
		it.Spent = req.Budget + 1
		if result := ValidateItinerary(it, req); !hasConflict(result, ConflictBudgetExceeded) {
			t.Errorf("expected budget conflict, got %v", result.Conflicts)
		}
	})
}
