package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlightOffers(t *testing.T) {
	body := []byte(`{
		"data": [
			{
				"id": "1",
				"price": {"grandTotal": "842.50", "currency": "USD"},
				"numberOfBookableSeats": 4,
				"itineraries": [
					{
						"duration": "PT7H30M",
						"segments": [
							{"departure": {"iataCode": "JFK", "at": "2026-10-01T08:30:00"},
							 "arrival": {"iataCode": "CDG", "at": "2026-10-01T21:00:00"},
							 "carrierCode": "AF", "number": "23"}
						]
					},
					{
						"duration": "PT9H05M",
						"segments": [
							{"departure": {"iataCode": "CDG", "at": "2026-10-08T11:00:00"},
							 "arrival": {"iataCode": "AMS", "at": "2026-10-08T12:20:00"},
							 "carrierCode": "KL", "number": "1234"},
							{"departure": {"iataCode": "AMS", "at": "2026-10-08T14:00:00"},
							 "arrival": {"iataCode": "JFK", "at": "2026-10-08T17:05:00"},
							 "carrierCode": "KL", "number": "641"}
						]
					}
				]
			}
		]
	}`)

	offers, err := parseFlightOffers(body)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	out := offers[0]
	assert.Equal(t, "1-0", out.ID)
	assert.Equal(t, "AF", out.Airline)
	assert.Equal(t, "AF23", out.FlightNumber)
	assert.Equal(t, "JFK", out.DepartureAirport)
	assert.Equal(t, "CDG", out.ArrivalAirport)
	assert.Equal(t, 0, out.Stops)
	assert.Equal(t, 4, out.Seats)
	assert.Equal(t, 842.50, out.Price)
	assert.Equal(t, "USD", out.Currency)

	in := offers[1]
	assert.Equal(t, "1-1", in.ID)
	assert.Equal(t, "CDG", in.DepartureAirport)
	assert.Equal(t, "JFK", in.ArrivalAirport)
	assert.Equal(t, 1, in.Stops)
}

func TestParseFlightOffersSkipsUnpriced(t *testing.T) {
	body := []byte(`{"data": [{"id": "1", "price": {"grandTotal": "", "currency": "USD"},
		"itineraries": [{"duration": "PT1H", "segments": [
			{"departure": {"iataCode": "JFK"}, "arrival": {"iataCode": "BOS"}, "carrierCode": "DL", "number": "1"}
		]}]}]}`)

	offers, err := parseFlightOffers(body)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestParseHotelOffers(t *testing.T) {
	body := []byte(`{
		"data": [
			{
				"hotel": {"hotelId": "HLPAR123", "name": "Le Grand Palais", "cityCode": "PAR", "rating": "4.8"},
				"offers": [
					{"room": {"typeEstimated": {"category": "DELUXE"}},
					 "guests": {"adults": 2},
					 "price": {"total": "400.00", "currency": "USD"}},
					{"room": {"typeEstimated": {"category": "SUITE"}},
					 "guests": {"adults": 0},
					 "price": {"total": "0", "currency": "USD"}}
				]
			},
			{
				"hotel": {"hotelId": "HLPAR456", "name": "No Rooms Inn", "cityCode": "PAR", "rating": "3.0"},
				"offers": []
			}
		]
	}`)

	hotels, err := parseHotelOffers(body)
	require.NoError(t, err)
	require.Len(t, hotels, 1)

	h := hotels[0]
	assert.Equal(t, "HLPAR123", h.ID)
	assert.Equal(t, "Le Grand Palais", h.Name)
	assert.Equal(t, "PAR", h.City)
	assert.Equal(t, 4.8, h.Rating)
	assert.Equal(t, "USD", h.Currency)
	// The zero-priced suite is dropped.
	require.Len(t, h.Rooms, 1)
	assert.Equal(t, "DELUXE", h.Rooms[0].Name)
	assert.Equal(t, 400.0, h.Rooms[0].Price)
	assert.Equal(t, 2, h.Rooms[0].MaxOccupancy)
}

func TestParseHotelOffersOccupancyDefault(t *testing.T) {
	body := []byte(`{"data": [{"hotel": {"hotelId": "H1", "name": "X", "cityCode": "PAR", "rating": ""},
		"offers": [{"room": {"typeEstimated": {"category": "STANDARD"}},
			"guests": {"adults": 0},
			"price": {"total": "150.00", "currency": "EUR"}}]}]}`)

	hotels, err := parseHotelOffers(body)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 2, hotels[0].Rooms[0].MaxOccupancy)
	assert.Equal(t, 0.0, hotels[0].Rating)
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 842.5, parsePrice("842.50"))
	assert.Equal(t, 100.0, parsePrice(" 100 "))
	assert.Equal(t, 0.0, parsePrice(""))
	assert.Equal(t, 0.0, parsePrice("n/a"))
}
