package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"wayfarer/internal/constants"
	"wayfarer/internal/models"
	"wayfarer/internal/places"
	"wayfarer/internal/planner"
	"wayfarer/internal/tips"
	"wayfarer/internal/utils"
)

func validateDate(s string) error {
	if s == "" || utils.ValidateDateFormat(s) {
		return nil
	}
	return fmt.Errorf("use YYYY-MM-DD")
}

type PlanCmd struct {
	Destination string  `arg:"" optional:"" help:"Destination city."`
	Start       string  `help:"Trip start date (YYYY-MM-DD)." name:"start"`
	End         string  `help:"Trip end date (YYYY-MM-DD), inclusive." name:"end"`
	Budget      float64 `help:"Total trip budget."`
	Interests   string  `help:"Comma-separated interests (e.g. history,nature)."`
	MustVisit   string  `help:"Comma-separated must-visit place names." name:"must-visit"`
	Pace        string  `help:"Trip pace: relaxed, moderate, or packed." default:"moderate"`
	DayStart    string  `help:"Daily operating window start (HH:MM)." name:"day-start"`
	DayEnd      string  `help:"Daily operating window end (HH:MM)." name:"day-end"`
	Interactive bool    `short:"i" help:"Fill the trip request through an interactive form."`
	Yes         bool    `short:"y" help:"Save the itinerary without asking."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	req, err := c.buildRequest()
	if err != nil {
		return err
	}

	candidates, err := places.GatherCandidates(ctx.Provider, req)
	if err != nil {
		return fmt.Errorf("failed to gather candidates: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Printf("No places found for %q. Try 'wayfarer destinations' to see what's available.\n", req.Destination)
	}

	it, err := planner.Build(req, candidates)
	if err != nil {
		return err
	}
	tips.Enrich(ctx.Advisor, &it)

	fmt.Println(RenderItinerary(it))

	if !c.Yes {
		fmt.Print("Save this itinerary? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Itinerary discarded.")
			return nil
		}
	}

	// Identity is stamped only on save so repeated builds stay comparable.
	it.ID = uuid.NewString()
	it.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := ctx.Store.SaveItinerary(it); err != nil {
		return err
	}

	fmt.Printf("Saved itinerary %s\n", it.ID)
	return nil
}

func (c *PlanCmd) buildRequest() (models.TripRequest, error) {
	if c.Interactive {
		if err := c.runForm(); err != nil {
			return models.TripRequest{}, err
		}
	}

	interests, err := ParseInterests(c.Interests)
	if err != nil {
		return models.TripRequest{}, err
	}

	for _, hhmm := range []string{c.DayStart, c.DayEnd} {
		if hhmm != "" && !utils.ValidateTimeFormat(hhmm) {
			return models.TripRequest{}, fmt.Errorf("invalid time %q, use HH:MM", hhmm)
		}
	}

	return models.TripRequest{
		Destination: strings.TrimSpace(c.Destination),
		StartDate:   c.Start,
		EndDate:     c.End,
		Budget:      c.Budget,
		Interests:   interests,
		MustVisit:   ParseMustVisits(c.MustVisit),
		Pace:        constants.Pace(strings.ToLower(c.Pace)),
		DayStart:    c.DayStart,
		DayEnd:      c.DayEnd,
	}, nil
}

func (c *PlanCmd) runForm() error {
	budget := ""
	if c.Budget > 0 {
		budget = FormatMoney(c.Budget)
	}
	pace := c.Pace
	if pace == "" {
		pace = string(constants.PaceModerate)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Value(&c.Destination).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("destination is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&c.Start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(&c.End).
				Validate(validateDate),
			huh.NewInput().
				Title("Total budget").
				Value(&budget),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Interests (comma-separated: %s)", CategoryList())).
				Value(&c.Interests),
			huh.NewInput().
				Title("Must-visit places (comma-separated, optional)").
				Value(&c.MustVisit),
			huh.NewSelect[string]().
				Title("Pace").
				Options(
					huh.NewOption("Relaxed (3 activities/day)", string(constants.PaceRelaxed)),
					huh.NewOption("Moderate (4 activities/day)", string(constants.PaceModerate)),
					huh.NewOption("Packed (5 activities/day)", string(constants.PacePacked)),
				).
				Value(&pace),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	c.Pace = pace
	if budget != "" {
		if _, err := fmt.Sscanf(budget, "%f", &c.Budget); err != nil {
			return fmt.Errorf("invalid budget %q", budget)
		}
	}
	return nil
}
