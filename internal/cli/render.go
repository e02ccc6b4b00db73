package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wayfarer/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	mealStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// RenderItinerary formats a full itinerary for terminal display.
func RenderItinerary(it models.Itinerary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s to %s  (%s pace)", it.Destination, it.StartDate, it.EndDate, it.Pace)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Budget %s | accommodation %s, food %s, activities %s, transport %s",
		FormatMoney(it.Budget.Total), FormatMoney(it.Budget.Accommodation), FormatMoney(it.Budget.Food),
		FormatMoney(it.Budget.Activities), FormatMoney(it.Budget.Transport))))
	b.WriteString("\n\n")

	for _, day := range it.Days {
		b.WriteString(dateStyle.Render(day.Date))
		b.WriteString("\n")

		if day.InfeasibleReason != "" {
			b.WriteString(warnStyle.Render(fmt.Sprintf("  nothing planned (%s)", strings.ReplaceAll(string(day.InfeasibleReason), "_", " "))))
			b.WriteString("\n\n")
			continue
		}

		for _, entry := range day.Entries {
			line := fmt.Sprintf("  %s-%s  %s", entry.Start, entry.End, entry.Name)
			if entry.Cost > 0 {
				line += dimStyle.Render(fmt.Sprintf("  (%s)", FormatMoney(entry.Cost)))
			}
			if entry.Kind == models.SlotMeal {
				line = mealStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			if entry.Tip != "" {
				b.WriteString(tipStyle.Render(fmt.Sprintf("           %s", entry.Tip)))
				b.WriteString("\n")
			}
		}

		for _, warning := range day.Warnings {
			b.WriteString(warnStyle.Render(fmt.Sprintf("  ! %s", warning)))
			b.WriteString("\n")
		}

		b.WriteString(dimStyle.Render(fmt.Sprintf("  day total %s", FormatMoney(day.Cost))))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Spent %s of %s (%s remaining)\n",
		FormatMoney(it.Spent), FormatMoney(it.Budget.Total), FormatMoney(it.RemainingBudget)))

	if len(it.UnmetMustVisits) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Could not fit: %s", strings.Join(it.UnmetMustVisits, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}
