// Package places provides candidate place discovery. The planning engine
// only sees the Provider interface; the shipped implementation is a static
// embedded catalog, but a live geodata client can be dropped in behind the
// same contract.
package places

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"wayfarer/internal/logger"
	"wayfarer/internal/models"
)

//go:embed data/catalog.json
var catalogFS embed.FS

// Provider resolves candidate places for a destination. Implementations
// return best-effort results: an empty list is valid and the planner must
// degrade gracefully around it.
type Provider interface {
	// FindPlaces returns candidates in the destination matching any of the
	// given categories. An empty category list means all categories.
	FindPlaces(destination string, categories []models.Category) ([]models.Place, error)

	// FindPlaceByName looks a single place up by (partial) name.
	FindPlaceByName(destination, name string) (models.Place, bool, error)
}

// Catalog is a Provider backed by the embedded place dataset.
type Catalog struct {
	destinations map[string][]models.Place
}

type catalogFile struct {
	Destinations []struct {
		Name   string         `json:"name"`
		Places []models.Place `json:"places"`
	} `json:"destinations"`
}

// NewCatalog loads the embedded dataset.
func NewCatalog() (*Catalog, error) {
	raw, err := catalogFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read place catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse place catalog: %w", err)
	}

	catalog := &Catalog{destinations: make(map[string][]models.Place)}
	for _, dest := range file.Destinations {
		catalog.destinations[normalize(dest.Name)] = dest.Places
	}

	logger.Debug("Place catalog loaded", "destinations", len(catalog.destinations))
	return catalog, nil
}

// Destinations returns the known destination names, sorted.
func (c *Catalog) Destinations() []string {
	names := make([]string, 0, len(c.destinations))
	for name := range c.destinations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindPlaces returns every catalog place in the destination matching the
// requested categories. Unknown destinations yield an empty list, not an
// error; discovery is best-effort by contract.
func (c *Catalog) FindPlaces(destination string, categories []models.Category) ([]models.Place, error) {
	all, ok := c.destinations[normalize(destination)]
	if !ok {
		logger.Warn("Destination not in catalog", "destination", destination)
		return []models.Place{}, nil
	}
	if len(categories) == 0 {
		return append([]models.Place{}, all...), nil
	}

	wanted := make(map[models.Category]bool, len(categories))
	for _, cat := range categories {
		wanted[cat] = true
	}

	matched := make([]models.Place, 0, len(all))
	for _, place := range all {
		if wanted[place.Category] {
			matched = append(matched, place)
		}
	}
	return matched, nil
}

// FindPlaceByName matches case-insensitively on name substrings in either
// direction, mirroring how must-visit names are matched during scoring.
func (c *Catalog) FindPlaceByName(destination, name string) (models.Place, bool, error) {
	all, ok := c.destinations[normalize(destination)]
	if !ok {
		return models.Place{}, false, nil
	}

	wanted := normalize(name)
	if wanted == "" {
		return models.Place{}, false, nil
	}
	for _, place := range all {
		have := normalize(place.Name)
		if strings.Contains(have, wanted) || strings.Contains(wanted, have) {
			return place, true, nil
		}
	}
	return models.Place{}, false, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GatherCandidates assembles the deduplicated candidate pool for a trip
// request: interest-matched places first (always including eateries so meal
// slots have venues), then any must-visit lookups that discovery can
// resolve. Partial or empty results are fine.
func GatherCandidates(provider Provider, req models.TripRequest) ([]models.Place, error) {
	categories := append([]models.Category{}, req.Interests...)
	hasFood := false
	for _, cat := range categories {
		if cat == models.CategoryFood {
			hasFood = true
			break
		}
	}
	if !hasFood {
		categories = append(categories, models.CategoryFood)
	}

	found, err := provider.FindPlaces(req.Destination, categories)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(found))
	candidates := make([]models.Place, 0, len(found))
	for _, place := range found {
		if place.ID == "" || seen[place.ID] {
			continue
		}
		seen[place.ID] = true
		candidates = append(candidates, place)
	}

	for _, name := range req.MustVisit {
		place, ok, err := provider.FindPlaceByName(req.Destination, name)
		if err != nil {
			logger.Warn("Must-visit lookup failed", "name", name, "error", err)
			continue
		}
		if !ok {
			logger.Warn("Must-visit not found", "name", name, "destination", req.Destination)
			continue
		}
		if !seen[place.ID] {
			seen[place.ID] = true
			candidates = append(candidates, place)
		}
	}

	return candidates, nil
}
