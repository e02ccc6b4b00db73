package cli

import (
	"fmt"

	"wayfarer/internal/models"
	"wayfarer/internal/validation"
)

type ShowCmd struct {
	ID    string `arg:"" help:"Trip ID to show, or 'latest'."`
	Check bool   `help:"Run an integrity check against the saved itinerary."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	it, err := c.lookup(ctx)
	if err != nil {
		return err
	}

	fmt.Println(RenderItinerary(it))

	if c.Check {
		req := models.TripRequest{
			Destination: it.Destination,
			StartDate:   it.StartDate,
			EndDate:     it.EndDate,
			Budget:      it.Budget.Total,
		}
		report := validation.ValidateItinerary(it, req)
		if report.HasConflicts() {
			fmt.Println("Integrity check found problems:")
			for _, desc := range report.Descriptions() {
				fmt.Printf("  - %s\n", desc)
			}
			return fmt.Errorf("itinerary failed integrity check")
		}
		fmt.Println("Integrity check passed.")
	}

	return nil
}

func (c *ShowCmd) lookup(ctx *Context) (models.Itinerary, error) {
	if c.ID != "latest" {
		return ctx.Store.GetItinerary(c.ID)
	}

	trips, err := ctx.Store.GetAllItineraries()
	if err != nil {
		return models.Itinerary{}, err
	}
	if len(trips) == 0 {
		return models.Itinerary{}, fmt.Errorf("no saved trips yet, run 'wayfarer plan' first")
	}

	latest := trips[0]
	for _, t := range trips[1:] {
		if t.CreatedAt > latest.CreatedAt {
			latest = t
		}
	}
	return latest, nil
}
