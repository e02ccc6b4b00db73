// Package validation checks trip requests before planning starts and built
// itineraries after it finishes. Problems are reported as conflicts, not
// panics; the planner decides which ones are fatal.
package validation

import (
	"fmt"
	"time"

	"wayfarer/internal/constants"
	"wayfarer/internal/models"
	"wayfarer/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyDestination ConflictType = "empty_destination"
	ConflictInvalidDate      ConflictType = "invalid_date"
	ConflictReversedDates    ConflictType = "reversed_dates"
	ConflictTripTooLong      ConflictType = "trip_too_long"
	ConflictInvalidBudget    ConflictType = "invalid_budget"
	ConflictInvalidPace      ConflictType = "invalid_pace"
	ConflictInvalidWindow    ConflictType = "invalid_window"
	ConflictInvalidInterest  ConflictType = "invalid_interest"

	ConflictOverlappingEntries ConflictType = "overlapping_entries"
	ConflictDuplicatePlace     ConflictType = "duplicate_place"
	ConflictBudgetExceeded     ConflictType = "budget_exceeded"
	ConflictOutsideWindow      ConflictType = "outside_window"
)

// Conflict represents a detected problem in a request or itinerary
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Descriptions returns the conflict descriptions in order.
func (r *Result) Descriptions() []string {
	out := make([]string, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		out = append(out, c.Description)
	}
	return out
}

// ValidateTripRequest checks the structural validity of a request. Any
// conflict here rejects the request before planning work starts.
func ValidateTripRequest(req models.TripRequest) Result {
	result := Result{Conflicts: []Conflict{}}

	if req.Destination == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyDestination,
			Description: "destination must not be empty",
		})
	}

	start, startErr := time.Parse(constants.DateFormat, req.StartDate)
	if startErr != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDate,
			Description: fmt.Sprintf("invalid start date: %q", req.StartDate),
		})
	}
	end, endErr := time.Parse(constants.DateFormat, req.EndDate)
	if endErr != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDate,
			Description: fmt.Sprintf("invalid end date: %q", req.EndDate),
		})
	}
	if startErr == nil && endErr == nil {
		if end.Before(start) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictReversedDates,
				Description: fmt.Sprintf("end date %s is before start date %s", req.EndDate, req.StartDate),
			})
		} else if days := int(end.Sub(start).Hours()/24) + 1; days > constants.MaxTripDays {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictTripTooLong,
				Description: fmt.Sprintf("trip spans %d days, maximum is %d", days, constants.MaxTripDays),
			})
		}
	}

	if req.Budget <= 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidBudget,
			Description: fmt.Sprintf("budget must be positive, got %.2f", req.Budget),
		})
	}

	if req.Pace != "" {
		if _, ok := constants.PaceTargets[req.Pace]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidPace,
				Description: fmt.Sprintf("unknown pace %q", req.Pace),
			})
		}
	}

	for _, interest := range req.Interests {
		if !models.ValidCategory(interest) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidInterest,
				Description: fmt.Sprintf("unknown interest %q", interest),
			})
		}
	}

	dayStart, dayEnd := req.Window()
	startMin, err1 := utils.ParseTimeToMinutes(dayStart)
	endMin, err2 := utils.ParseTimeToMinutes(dayEnd)
	if err1 != nil || err2 != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidWindow,
			Description: fmt.Sprintf("invalid operating window %s-%s", dayStart, dayEnd),
		})
	} else if endMin <= startMin {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidWindow,
			Description: fmt.Sprintf("operating window start %s must be before end %s", dayStart, dayEnd),
		})
	}

	return result
}

// ValidateItinerary checks the hard invariants of a built itinerary: no
// overlapping entries, no duplicate non-meal place, total spend within
// budget, every entry inside the operating window. Used by tests and the
// show command's integrity check.
func ValidateItinerary(it models.Itinerary, req models.TripRequest) Result {
	result := Result{Conflicts: []Conflict{}}

	dayStart, dayEnd := req.Window()
	windowStart, _ := utils.ParseTimeToMinutes(dayStart)
	windowEnd, _ := utils.ParseTimeToMinutes(dayEnd)

	seenPlaces := make(map[string]string) // place ID -> date first seen

	for _, day := range it.Days {
		for i, entry := range day.Entries {
			startMin, err1 := utils.ParseTimeToMinutes(entry.Start)
			endMin, err2 := utils.ParseTimeToMinutes(entry.End)
			if err1 != nil || err2 != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDate,
					Description: fmt.Sprintf("%s: entry %q has invalid times %s-%s", day.Date, entry.Name, entry.Start, entry.End),
					Date:        day.Date,
				})
				continue
			}

			if startMin < windowStart || endMin > windowEnd {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOutsideWindow,
					Description: fmt.Sprintf("%s: %q (%s-%s) falls outside window %s-%s", day.Date, entry.Name, entry.Start, entry.End, dayStart, dayEnd),
					Date:        day.Date,
				})
			}

			// Entries are ordered, so overlap only needs the predecessor.
			if i > 0 {
				prevEnd, err := utils.ParseTimeToMinutes(day.Entries[i-1].End)
				if err == nil && startMin < prevEnd {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type:        ConflictOverlappingEntries,
						Description: fmt.Sprintf("%s: %q overlaps %q", day.Date, entry.Name, day.Entries[i-1].Name),
						Date:        day.Date,
					})
				}
			}

			if entry.Kind == models.SlotActivity && entry.PlaceID != "" {
				if firstDate, dup := seenPlaces[entry.PlaceID]; dup {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type:        ConflictDuplicatePlace,
						Description: fmt.Sprintf("place %q appears on %s and again on %s", entry.Name, firstDate, day.Date),
						Date:        day.Date,
					})
				} else {
					seenPlaces[entry.PlaceID] = day.Date
				}
			}
		}
	}

	if it.Spent > req.Budget+0.01 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBudgetExceeded,
			Description: fmt.Sprintf("spent %.2f exceeds budget %.2f", it.Spent, req.Budget),
		})
	}

	return result
}
