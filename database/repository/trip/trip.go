package tripRepo

import "tripcraft/models"

// TripRepository defines methods for trip-intake document access.
type TripRepository interface {
	// GetByID retrieves a trip intake document by its unique ID.
	GetByID(id string) (*models.TripIntake, error)
	// Create inserts a new trip intake document.
	Create(trip *models.TripIntake) error
	// Update replaces an existing trip intake document.
	Update(trip *models.TripIntake) error
	// UpdateComponents writes the selected package components and running
	// total back into the trip intake document.
	UpdateComponents(tripID string, components []models.PackageComponent, total float64, currency string) error
	// Delete removes a trip intake document by its ID.
	Delete(id string) error
}
