package storage

import "wayfarer/internal/models"

// Provider persists trips. Both backends store the full itinerary as a JSON
// payload next to a few indexed columns, so schema churn in the itinerary
// shape never needs a migration.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Trips
	SaveItinerary(models.Itinerary) error
	GetItinerary(id string) (models.Itinerary, error)
	GetAllItineraries() ([]models.Itinerary, error)
	DeleteItinerary(id string) error

	// Utils
	GetConfigPath() string
}
