package constants

// Pace represents the desired daily activity density
type Pace string

// MealName identifies one of the three daily meal anchors
type MealName string

// DayReason codes why a day could not be planned
type DayReason string

const (
	AppName            = "wayfarer"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/wayfarer/wayfarer.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Operating window defaults. Every day is planned inside this window
	// unless the trip request overrides it.
	DefaultDayStart = "08:00"
	DefaultDayEnd   = "22:00"

	// Meal anchors. Meals are pinned to these times and clamped into the
	// operating window when it is narrower than the defaults.
	BreakfastTime   = "08:00"
	LunchTime       = "13:00"
	DinnerTime      = "20:00"
	MealDurationMin = 75
	MealsPerDay     = 3

	// Pace values
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PacePacked   Pace = "packed"

	// Meal names
	MealBreakfast MealName = "breakfast"
	MealLunch     MealName = "lunch"
	MealDinner    MealName = "dinner"

	// Day infeasibility reasons
	ReasonBudgetExhausted    DayReason = "budget_exhausted"
	ReasonNothingSchedulable DayReason = "nothing_schedulable"

	// MaxTripDays caps the inclusive trip length
	MaxTripDays = 30

	// MaxCandidates bounds the scored pool so a build stays linear in
	// candidates x days
	MaxCandidates = 200
)

// PaceTargets maps each pace to its target count of non-meal activities per day.
var PaceTargets = map[Pace]int{
	PaceRelaxed:  3,
	PaceModerate: 4,
	PacePacked:   5,
}
