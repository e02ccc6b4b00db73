package errors

import (
	"errors"
	"fmt"
	"strings"

	"wayfarer/internal/constants"
)

// TripRequestError rejects a structurally invalid trip request before any
// planning work starts. Fully recoverable: the caller fixes the input and
// resubmits.
type TripRequestError struct {
	Problems []string
}

func (e *TripRequestError) Error() string {
	return fmt.Sprintf("invalid trip request: %s", strings.Join(e.Problems, "; "))
}

// BudgetError rejects a budget allocation input that violates its
// precondition (total <= 0).
type BudgetError struct {
	Total float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("invalid budget: total must be positive, got %.2f", e.Total)
}

// InfeasibleDayError means a single day could host zero meals and zero
// activities. The orchestrator records an empty day and continues; it never
// aborts the whole build.
type InfeasibleDayError struct {
	Date   string
	Reason constants.DayReason
}

func (e *InfeasibleDayError) Error() string {
	return fmt.Sprintf("day %s infeasible: %s", e.Date, e.Reason)
}

// AsInfeasibleDay unwraps err to an InfeasibleDayError if it is one.
func AsInfeasibleDay(err error) (*InfeasibleDayError, bool) {
	var infeasible *InfeasibleDayError
	if errors.As(err, &infeasible) {
		return infeasible, true
	}
	return nil, false
}
