package inventory

import (
	"context"

	"tripcraft/models"
)

// SearchCriteria carries the trip-level inputs every inventory collaborator
// is queried with.
type SearchCriteria struct {
	Origin        string // IATA code
	Destination   string // IATA code
	DepartureDate string // YYYY-MM-DD
	ReturnDate    string // YYYY-MM-DD
	Adults        int
	Children      int
}

// FlightSearcher is the external flight search collaborator.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, criteria SearchCriteria) ([]models.FlightOffer, error)
}

// HotelSearcher is the external hotel search collaborator.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, criteria SearchCriteria) ([]models.HotelOffer, error)
}

// TransferSearcher is the external ground-transfer search collaborator.
type TransferSearcher interface {
	SearchTransfers(ctx context.Context, criteria SearchCriteria) ([]models.TransferOffer, error)
}

// InsuranceProvider is the external insurance options collaborator.
type InsuranceProvider interface {
	GetInsuranceOptions(ctx context.Context) ([]models.InsuranceOffer, error)
}
