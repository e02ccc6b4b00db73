// Package budget splits a total trip budget into category sub-budgets.
package budget

import (
	"wayfarer/internal/constants"
	"wayfarer/internal/errors"
	"wayfarer/internal/models"
	"wayfarer/internal/utils"
)

// Allocate splits total across the four spending categories by the weight
// table in constants. Each bucket is rounded down to cents and the rounding
// remainder is absorbed into the activities bucket, so the bucket sum never
// exceeds the total. Pure function.
func Allocate(total float64) (models.BudgetPlan, error) {
	if total <= 0 {
		return models.BudgetPlan{}, &errors.BudgetError{Total: total}
	}

	accommodation := utils.Round2(total * constants.BudgetWeightAccommodation)
	food := utils.Round2(total * constants.BudgetWeightFood)
	transport := utils.Round2(total * constants.BudgetWeightTransport)

	// Remainder after the three fixed buckets goes to activities.
	activities := utils.Round2(total - accommodation - food - transport)
	if activities < 0 {
		activities = 0
	}

	return models.BudgetPlan{
		Total:         total,
		Accommodation: accommodation,
		Food:          food,
		Activities:    activities,
		Transport:     transport,
	}, nil
}
