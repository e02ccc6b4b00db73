package models

import (
	"time"

	"wayfarer/internal/constants"
)

// TripRequest is the read-only user input for one planning run.
type TripRequest struct {
	Destination string         `json:"destination"`
	StartDate   string         `json:"start_date"` // YYYY-MM-DD
	EndDate     string         `json:"end_date"`   // YYYY-MM-DD, inclusive
	Budget      float64        `json:"budget"`
	Interests   []Category     `json:"interests"`
	MustVisit   []string       `json:"must_visit,omitempty"`
	Pace        constants.Pace `json:"pace"`
	DayStart    string         `json:"day_start,omitempty"` // HH:MM, defaults 08:00
	DayEnd      string         `json:"day_end,omitempty"`   // HH:MM, defaults 22:00
}

// NumDays returns the inclusive day count, or 0 when the dates do not parse.
func (r TripRequest) NumDays() int {
	start, err := time.Parse(constants.DateFormat, r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(constants.DateFormat, r.EndDate)
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// Dates returns every trip date in chronological order.
func (r TripRequest) Dates() []string {
	start, err := time.Parse(constants.DateFormat, r.StartDate)
	if err != nil {
		return nil
	}
	n := r.NumDays()
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(constants.DateFormat))
	}
	return dates
}

// Window returns the operating window, falling back to the defaults when the
// request leaves it unset.
func (r TripRequest) Window() (string, string) {
	start, end := r.DayStart, r.DayEnd
	if start == "" {
		start = constants.DefaultDayStart
	}
	if end == "" {
		end = constants.DefaultDayEnd
	}
	return start, end
}

// PaceTarget returns the target count of non-meal activities per day.
func (r TripRequest) PaceTarget() int {
	if target, ok := constants.PaceTargets[r.Pace]; ok {
		return target
	}
	return constants.PaceTargets[constants.PaceModerate]
}

// BudgetPlan splits a total budget into category sub-budgets. Derived once
// per build and read-only thereafter.
type BudgetPlan struct {
	Total         float64 `json:"total"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}
