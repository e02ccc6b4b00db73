// Package tui is the interactive trip browser: a list of saved trips and a
// scrollable detail view of the selected itinerary.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"wayfarer/internal/models"
	"wayfarer/internal/storage"
)

type view int

const (
	viewList view = iota
	viewDetail
)

type Model struct {
	store    storage.Provider
	trips    []models.Itinerary
	cursor   int
	active   view
	viewport viewport.Model
	width    int
	height   int
	err      error
}

func NewModel(store storage.Provider) Model {
	return Model{
		store:  store,
		active: viewList,
	}
}

type tripsLoadedMsg struct {
	trips []models.Itinerary
	err   error
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		trips, err := m.store.GetAllItineraries()
		return tripsLoadedMsg{trips: trips, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tripsLoadedMsg:
		m.trips = msg.trips
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-3)
		if m.active == viewDetail {
			m.viewport.SetContent(m.detailContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.active == viewList && m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.active == viewList && m.cursor < len(m.trips)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Enter):
			if m.active == viewList && len(m.trips) > 0 {
				m.active = viewDetail
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}

		case key.Matches(msg, keys.Back):
			if m.active == viewDetail {
				m.active = viewList
			}
		}
	}

	var cmd tea.Cmd
	if m.active == viewDetail {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading trips: %v\n", m.err)
	}

	if m.active == viewDetail {
		return headerStyle.Render("wayfarer") + "\n" +
			m.viewport.View() + "\n" +
			helpStyle.Render("↑/↓ scroll · esc back · q quit")
	}

	s := headerStyle.Render("wayfarer · saved trips") + "\n\n"
	if len(m.trips) == 0 {
		s += rowStyle.Render("No saved trips. Run 'wayfarer plan' to create one.") + "\n"
	}
	for i, it := range m.trips {
		row := fmt.Sprintf("%s  %s to %s  (%d days)", it.Destination, it.StartDate, it.EndDate, len(it.Days))
		if i == m.cursor {
			s += selectedStyle.Render(row) + "\n"
		} else {
			s += rowStyle.Render(row) + "\n"
		}
	}
	s += "\n" + helpStyle.Render("↑/↓ move · enter open · q quit")
	return s
}

func (m Model) detailContent() string {
	if m.cursor < 0 || m.cursor >= len(m.trips) {
		return ""
	}
	it := m.trips[m.cursor]

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s to %s  (%s pace)\n", it.Destination, it.StartDate, it.EndDate, it.Pace)
	fmt.Fprintf(&b, "Budget %.2f | spent %.2f | remaining %.2f\n\n", it.Budget.Total, it.Spent, it.RemainingBudget)

	for _, day := range it.Days {
		fmt.Fprintf(&b, "%s\n", day.Date)
		if day.InfeasibleReason != "" {
			fmt.Fprintf(&b, "  nothing planned (%s)\n\n", strings.ReplaceAll(string(day.InfeasibleReason), "_", " "))
			continue
		}
		for _, entry := range day.Entries {
			fmt.Fprintf(&b, "  %s-%s  %s", entry.Start, entry.End, entry.Name)
			if entry.Cost > 0 {
				fmt.Fprintf(&b, "  (%.2f)", entry.Cost)
			}
			b.WriteString("\n")
			if entry.Tip != "" {
				fmt.Fprintf(&b, "           %s\n", entry.Tip)
			}
		}
		for _, warning := range day.Warnings {
			fmt.Fprintf(&b, "  ! %s\n", warning)
		}
		fmt.Fprintf(&b, "  day total %.2f\n\n", day.Cost)
	}

	if len(it.UnmetMustVisits) > 0 {
		fmt.Fprintf(&b, "Could not fit: %s\n", strings.Join(it.UnmetMustVisits, ", "))
	}
	return b.String()
}
