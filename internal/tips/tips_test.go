package tips

import (
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/models"
)

func TestExplainPlaceOverridesCategory(t *testing.T) {
	advisor := NewCorpusAdvisor()

	tip, err := advisor.Explain(models.ScheduledActivity{
		Name:     "Shaniwar Wada",
		Category: models.CategoryHistory,
		Start:    "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(tip, "light and sound") {
		t.Errorf("expected the place-specific tip, got %q", tip)
	}
}

func TestExplainMealNameMatchesVenue(t *testing.T) {
	advisor := NewCorpusAdvisor()

	tip, err := advisor.Explain(models.ScheduledActivity{
		Name:     "Chokhi Dhani (dinner)",
		Category: models.CategoryFood,
		Start:    "20:00",
		Kind:     models.SlotMeal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(tip, "traditional dinner") {
		t.Errorf("expected the venue tip despite the meal suffix, got %q", tip)
	}
}

func TestExplainTimeOfDayPrefix(t *testing.T) {
	advisor := NewCorpusAdvisor()

	early, _ := advisor.Explain(models.ScheduledActivity{Name: "X", Category: models.CategoryNature, Start: "08:00"})
	if !strings.HasPrefix(early, "An early start") {
		t.Errorf("expected an early prefix, got %q", early)
	}

	late, _ := advisor.Explain(models.ScheduledActivity{Name: "X", Category: models.CategoryNightlife, Start: "21:00"})
	if !strings.HasPrefix(late, "For the evening") {
		t.Errorf("expected an evening prefix, got %q", late)
	}

	midday, _ := advisor.Explain(models.ScheduledActivity{Name: "X", Category: models.CategoryHistory, Start: "11:00"})
	if strings.HasPrefix(midday, "An early start") || strings.HasPrefix(midday, "For the evening") {
		t.Errorf("midday slots get no prefix, got %q", midday)
	}
}

type failingAdvisor struct{}

func (failingAdvisor) Explain(models.ScheduledActivity) (string, error) {
	return "", errors.New("corpus unavailable")
}

func TestEnrichDegradesOnFailure(t *testing.T) {
	it := models.Itinerary{
		Days: []models.DayPlan{{
			Date: "2026-03-01",
			Entries: []models.ScheduledActivity{
				{Name: "A", Category: models.CategoryHistory, Start: "10:00"},
			},
		}},
	}

	Enrich(failingAdvisor{}, &it)
	if it.Days[0].Entries[0].Tip != "" {
		t.Errorf("failed lookups must leave the tip empty, got %q", it.Days[0].Entries[0].Tip)
	}

	Enrich(NewCorpusAdvisor(), &it)
	if it.Days[0].Entries[0].Tip == "" {
		t.Error("expected a tip from the corpus advisor")
	}

	Enrich(nil, &it) // nil advisor is a no-op, not a panic
}
