package models

// FlightOffer is a normalized flight candidate from the flight search
// collaborator. Direction is derived during aggregation from airport roles.
type FlightOffer struct {
	ID               string  `json:"id"`
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flightNumber,omitempty"`
	DepartureAirport string  `json:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	DepartureTime    string  `json:"departureTime"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
	Seats            int     `json:"seats"`
	Price            float64 `json:"price"` // per seat, economy base
	Currency         string  `json:"currency"`
}

// HotelRoom is one bookable room option within a hotel offer.
type HotelRoom struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"` // per night
	Currency     string   `json:"currency"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Amenities    []string `json:"amenities,omitempty"`
}

// HotelOffer is a normalized hotel candidate with its room inventory.
type HotelOffer struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	City     string      `json:"city"`
	Rating   float64     `json:"rating"`
	Rooms    []HotelRoom `json:"rooms"`
	Currency string      `json:"currency"`
}

// BestRoom returns the cheapest room, which is what matching evaluates first.
func (h HotelOffer) BestRoom() *HotelRoom {
	if len(h.Rooms) == 0 {
		return nil
	}
	best := &h.Rooms[0]
	for i := range h.Rooms[1:] {
		if h.Rooms[i+1].Price < best.Price {
			best = &h.Rooms[i+1]
		}
	}
	return best
}

// TransferOffer is a normalized ground-transfer candidate.
type TransferOffer struct {
	ID              string  `json:"id"`
	PickupLocation  string  `json:"pickupLocation"`
	DropoffLocation string  `json:"dropoffLocation"`
	VehicleName     string  `json:"vehicleName"`
	VehicleCapacity int     `json:"vehicleCapacity"`
	Price           float64 `json:"price"` // per vehicle
	Currency        string  `json:"currency"`
}

// InsuranceOffer is a normalized travel-insurance candidate.
type InsuranceOffer struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CoverageType string  `json:"coverageType"` // e.g. "Comprehensive", "Basic"
	Price        float64 `json:"price"`        // per traveler
	Currency     string  `json:"currency"`
	Rating       float64 `json:"rating,omitempty"`
}

// Catalog is the session-scoped inventory collected by the aggregator. A
// category whose collaborator failed is simply empty.
type Catalog struct {
	Generation      int              `json:"generation"`
	OutboundFlights []FlightOffer    `json:"outboundFlights,omitempty"`
	InboundFlights  []FlightOffer    `json:"inboundFlights,omitempty"`
	Hotels          []HotelOffer     `json:"hotels,omitempty"`
	Transfers       []TransferOffer  `json:"transfers,omitempty"`
	Insurance       []InsuranceOffer `json:"insurance,omitempty"`
}
