package recommend

import "tripcraft/models"

// testCatalog builds a small but representative candidate pool: two outbound
// legs, one inbound leg, three hotels of decreasing rating, three transfer
// vehicles of increasing capacity and two insurance tiers.
func testCatalog() models.Catalog {
	return models.Catalog{
		Generation: 1,
		OutboundFlights: []models.FlightOffer{
			{ID: "f-out-1", Airline: "AF", DepartureAirport: "JFK", ArrivalAirport: "CDG",
				DepartureTime: "2026-10-01T08:30:00", Duration: "PT7H30M", Stops: 0, Seats: 9, Price: 100, Currency: "USD"},
			{ID: "f-out-2", Airline: "DL", DepartureAirport: "JFK", ArrivalAirport: "CDG",
				DepartureTime: "2026-10-01T17:10:00", Duration: "PT9H05M", Stops: 1, Seats: 4, Price: 250, Currency: "USD"},
		},
		InboundFlights: []models.FlightOffer{
			{ID: "f-in-1", Airline: "AF", DepartureAirport: "CDG", ArrivalAirport: "JFK",
				DepartureTime: "2026-10-08T11:00:00", Duration: "PT8H10M", Stops: 0, Seats: 9, Price: 120, Currency: "USD"},
		},
		Hotels: []models.HotelOffer{
			{ID: "hotel-luxe", Name: "Le Grand Palais", City: "PAR", Rating: 4.8, Currency: "USD",
				Rooms: []models.HotelRoom{{Name: "Deluxe", Price: 400, Currency: "USD", MaxOccupancy: 2}}},
			{ID: "hotel-mid", Name: "Hotel Rivoli", City: "PAR", Rating: 4.2, Currency: "USD",
				Rooms: []models.HotelRoom{{Name: "Standard", Price: 150, Currency: "USD", MaxOccupancy: 4}}},
			{ID: "hotel-budget", Name: "Auberge Nord", City: "PAR", Rating: 3.5, Currency: "USD",
				Rooms: []models.HotelRoom{{Name: "Basic", Price: 80, Currency: "USD", MaxOccupancy: 2}}},
		},
		Transfers: []models.TransferOffer{
			{ID: "tr-sedan", PickupLocation: "CDG", DropoffLocation: "Hotel Rivoli",
				VehicleName: "Sedan", VehicleCapacity: 3, Price: 40, Currency: "USD"},
			{ID: "tr-van", PickupLocation: "CDG", DropoffLocation: "Hotel Rivoli",
				VehicleName: "Van", VehicleCapacity: 6, Price: 90, Currency: "USD"},
			{ID: "tr-bus", PickupLocation: "CDG", DropoffLocation: "Hotel Rivoli",
				VehicleName: "Minibus", VehicleCapacity: 12, Price: 200, Currency: "USD"},
		},
		Insurance: []models.InsuranceOffer{
			{ID: "ins-basic", Name: "Essential Cover", CoverageType: "Basic", Price: 20, Currency: "USD", Rating: 4.0},
			{ID: "ins-comp", Name: "Total Cover", CoverageType: "Comprehensive", Price: 35, Currency: "USD", Rating: 4.6},
		},
	}
}

// testTrip is a couple travelling with no individual preferences or explicit
// groups.
func testTrip() models.TripDetails {
	return models.TripDetails{
		TripID:        "trip-1",
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2026-10-01",
		ReturnDate:    "2026-10-08",
		Nights:        3,
		Budget:        models.Budget{Amount: 4000, Currency: "USD"},
		Adults:        2,
		Travelers: []models.Traveler{
			{ID: "t1", Name: "Ana", Kind: models.TravelerAdult},
			{ID: "t2", Name: "Ben", Kind: models.TravelerAdult},
		},
	}
}

func modeledGroup(travelers ...models.Traveler) GroupTravelers {
	return GroupTravelers{
		Group:     models.TravelerGroup{ID: "g1", Name: "Group 1"},
		Travelers: travelers,
	}
}

func adult(id string, prefs models.TravelerPreferences) models.Traveler {
	return models.Traveler{ID: id, Name: id, Kind: models.TravelerAdult, Preferences: prefs}
}

func child(id string, prefs models.TravelerPreferences) models.Traveler {
	return models.Traveler{ID: id, Name: id, Kind: models.TravelerChild, Preferences: prefs}
}
