// Package tips annotates scheduled entries with short visitor advice. Advice
// is decorative: any failure degrades to an empty tip and the itinerary is
// unaffected.
package tips

import (
	"strings"

	"wayfarer/internal/logger"
	"wayfarer/internal/models"
	"wayfarer/internal/utils"
)

// Advisor produces a one-line tip for a scheduled entry.
type Advisor interface {
	Explain(entry models.ScheduledActivity) (string, error)
}

// CorpusAdvisor serves tips from a small built-in corpus, keyed by exact
// place name first, then by category and time of day.
type CorpusAdvisor struct {
	byPlace    map[string]string
	byCategory map[models.Category]string
}

// NewCorpusAdvisor builds the default advisor.
func NewCorpusAdvisor() *CorpusAdvisor {
	return &CorpusAdvisor{
		byPlace: map[string]string{
			"shaniwar wada":   "The light and sound show runs after sunset; daytime visits are best before noon to avoid tour groups.",
			"aga khan palace": "The memorial gardens are quietest right at opening; the museum wing closes earlier than the grounds.",
			"sinhagad fort":   "Carry water for the climb and try the local zunka bhakar stalls at the top.",
			"amber fort":      "Arrive before 10:00 to beat the coach tours; the mirror palace is the highlight.",
			"hawa mahal":      "The facade photographs best from the cafe across the street in morning light.",
			"chokhi dhani":    "Entry includes the traditional dinner; plan the whole evening around it.",
		},
		byCategory: map[models.Category]string{
			models.CategorySightseeing: "Golden hour gives the best views and photos here.",
			models.CategoryCulture:     "Dress modestly; many cultural sites expect covered shoulders and knees.",
			models.CategoryHistory:     "A local guide at the entrance is usually worth the small fee.",
			models.CategoryFood:        "Ask the staff for the house specialty rather than ordering off the tourist menu.",
			models.CategoryNature:      "Mornings are cooler and far less crowded on the trails.",
			models.CategoryShopping:    "Haggling is expected in bazaars; start around half the quoted price.",
			models.CategoryNightlife:   "Book ahead on weekends; most venues fill up after 21:00.",
			models.CategoryRelaxation:  "Reserve a slot in advance; walk-ins often wait an hour or more.",
			models.CategoryAdventure:   "Wear closed shoes and check the weather before heading out.",
		},
	}
}

// Explain returns a tip for the entry. Lookup order: exact place name, then
// category with a time-of-day prefix for early and late slots.
func (a *CorpusAdvisor) Explain(entry models.ScheduledActivity) (string, error) {
	if tip, ok := a.byPlace[normalizeName(entry.Name)]; ok {
		return tip, nil
	}
	tip, ok := a.byCategory[entry.Category]
	if !ok {
		return "", nil
	}
	return timePrefix(entry.Start) + tip, nil
}

// timePrefix adds a short lead-in for notably early or late slots.
func timePrefix(start string) string {
	minutes, err := utils.ParseTimeToMinutes(start)
	if err != nil {
		return ""
	}
	switch {
	case minutes < 9*60:
		return "An early start pays off: "
	case minutes >= 19*60:
		return "For the evening: "
	default:
		return ""
	}
}

// normalizeName strips a meal suffix like " (lunch)" so meal entries match
// their venue's tip.
func normalizeName(name string) string {
	if i := strings.LastIndex(name, " ("); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// Enrich fills the Tip field of every entry in place. Advisor errors are
// logged and swallowed; a plan without tips is still a valid plan.
func Enrich(advisor Advisor, it *models.Itinerary) {
	if advisor == nil {
		return
	}
	for d := range it.Days {
		for e := range it.Days[d].Entries {
			entry := &it.Days[d].Entries[e]
			tip, err := advisor.Explain(*entry)
			if err != nil {
				logger.Debug("Tip lookup failed", "entry", entry.Name, "error", err)
				continue
			}
			entry.Tip = tip
		}
	}
}
