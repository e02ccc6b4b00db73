package cli

import (
	"fmt"
	"strings"

	"wayfarer/internal/models"
	"wayfarer/internal/places"
	"wayfarer/internal/storage"
	"wayfarer/internal/tips"
)

type Context struct {
	Store    storage.Provider
	Provider places.Provider
	Advisor  tips.Advisor
}

// ParseInterests parses a comma-separated list of interest categories.
func ParseInterests(s string) ([]models.Category, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var interests []models.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		cat := models.Category(part)
		if !models.ValidCategory(cat) {
			return nil, fmt.Errorf("invalid interest %q (valid: %s)", part, CategoryList())
		}
		interests = append(interests, cat)
	}
	return interests, nil
}

// ParseMustVisits splits a comma-separated must-visit list, dropping blanks.
func ParseMustVisits(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// CategoryList returns the valid categories as a comma-separated string.
func CategoryList() string {
	parts := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

// FormatMoney renders an amount for display.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
