package cli

import (
	"fmt"

	"wayfarer/internal/places"
)

type TripsListCmd struct{}

func (c *TripsListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trips, err := ctx.Store.GetAllItineraries()
	if err != nil {
		return err
	}

	if len(trips) == 0 {
		fmt.Println("No saved trips. Use 'wayfarer plan' to create one.")
		return nil
	}

	for _, it := range trips {
		fmt.Printf("%s  %s  %s to %s  (%d days, spent %s)\n",
			it.ID, it.Destination, it.StartDate, it.EndDate, len(it.Days), FormatMoney(it.Spent))
	}
	return nil
}

type TripsDeleteCmd struct {
	ID string `arg:"" help:"Trip ID to delete."`
}

func (c *TripsDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteItinerary(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted trip %s\n", c.ID)
	return nil
}

type DestinationsCmd struct{}

func (c *DestinationsCmd) Run(ctx *Context) error {
	catalog, ok := ctx.Provider.(*places.Catalog)
	if !ok {
		fmt.Println("The configured place provider does not publish a destination list.")
		return nil
	}

	names := catalog.Destinations()
	if len(names) == 0 {
		fmt.Println("No destinations available.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
