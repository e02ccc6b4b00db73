package models

import "wayfarer/internal/constants"

// SlotKind distinguishes scheduled activities from meal anchors
type SlotKind string

const (
	SlotActivity SlotKind = "activity"
	SlotMeal     SlotKind = "meal"
)

// ScheduledActivity is one placed entry in a day plan.
type ScheduledActivity struct {
	PlaceID  string             `json:"place_id,omitempty"`
	Name     string             `json:"name"`
	Category Category           `json:"category"`
	Start    string             `json:"start"` // HH:MM
	End      string             `json:"end"`   // HH:MM
	Cost     float64            `json:"cost"`
	Rating   float64            `json:"rating,omitempty"`
	Kind     SlotKind           `json:"kind"`
	Meal     constants.MealName `json:"meal,omitempty"`
	Tip      string             `json:"tip,omitempty"`
}

// DayPlan is the ordered schedule for one calendar date. Entries are
// non-overlapping and strictly increasing in start time.
type DayPlan struct {
	Date             string              `json:"date"` // YYYY-MM-DD
	Entries          []ScheduledActivity `json:"entries"`
	Cost             float64             `json:"cost"`
	Warnings         []string            `json:"warnings,omitempty"`
	InfeasibleReason constants.DayReason `json:"infeasible_reason,omitempty"`
}

// ActivityCount returns the number of non-meal entries.
func (d DayPlan) ActivityCount() int {
	count := 0
	for _, e := range d.Entries {
		if e.Kind == SlotActivity {
			count++
		}
	}
	return count
}

// MealCount returns the number of meal entries.
func (d DayPlan) MealCount() int {
	count := 0
	for _, e := range d.Entries {
		if e.Kind == SlotMeal {
			count++
		}
	}
	return count
}

// Itinerary is the final result of one build: one DayPlan per trip date plus
// budget bookkeeping and any must-visit names that could not be placed.
type Itinerary struct {
	ID              string     `json:"id"`
	Destination     string     `json:"destination"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Pace            string     `json:"pace"`
	Budget          BudgetPlan `json:"budget"`
	Days            []DayPlan  `json:"days"`
	Spent           float64    `json:"spent"`
	RemainingBudget float64    `json:"remaining_budget"`
	UnmetMustVisits []string   `json:"unmet_must_visits,omitempty"`
	Fingerprint     uint64     `json:"fingerprint"`
	CreatedAt       string     `json:"created_at,omitempty"` // RFC3339
}
