package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/models"
)

func selectedHotelComponent(t *testing.T, trip models.TripDetails, catalog models.Catalog) models.PackageComponent {
	t.Helper()
	components := BuildCategory(trip, catalog, models.ComponentHotel)
	require.Len(t, components, 1)
	return components[0]
}

func TestAlternativesExcludeSelectedOffer(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()
	comp := selectedHotelComponent(t, trip, catalog)

	alts := Alternatives(trip, catalog, comp)

	require.Len(t, alts, 2)
	assert.Equal(t, "hotel-luxe", alts[0].Offer.Hotel.ID)
	assert.Equal(t, "hotel-budget", alts[1].Offer.Hotel.ID)
	// Each alternative is re-priced for the same couple: one room over 3 nights.
	assert.Equal(t, 1200.0, alts[0].TotalPrice)
	assert.Equal(t, 240.0, alts[1].TotalPrice)
}

func TestAlternativesCappedAtThree(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()
	for i := 0; i < 5; i++ {
		catalog.OutboundFlights = append(catalog.OutboundFlights, models.FlightOffer{
			ID: "f-extra-" + string(rune('a'+i)), Airline: "UA",
			DepartureAirport: "JFK", ArrivalAirport: "CDG", Price: 300, Currency: "USD",
		})
	}

	flights := BuildCategory(trip, catalog, models.ComponentFlight)
	require.NotEmpty(t, flights)

	alts := Alternatives(trip, catalog, flights[0])
	assert.Len(t, alts, 3)
}

func TestAlternativesEmptyWhenPoolExhausted(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()
	catalog.Hotels = catalog.Hotels[1:2] // only the selected hotel remains

	comp := selectedHotelComponent(t, trip, catalog)
	assert.Empty(t, Alternatives(trip, catalog, comp))
}

func TestReplaceOfferFullReplace(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()
	comp := selectedHotelComponent(t, trip, catalog)

	offer, ok := FindOffer(catalog, comp, "hotel-budget")
	require.True(t, ok)

	replaced := ReplaceOffer(trip, comp, offer)

	assert.Equal(t, comp.ID, replaced.ID)
	assert.Equal(t, "Auberge Nord", replaced.Title)
	assert.Equal(t, 240.0, replaced.TotalPrice)
	assert.Equal(t, 3.5, replaced.Rating)
	assert.False(t, replaced.IsSmartRecommendation)
	assert.Equal(t, "Manually selected by the operator", replaced.Reasoning)
	assert.Equal(t, "hotel-budget", replaced.Offer.Hotel.ID)

	// The original component is untouched.
	assert.Equal(t, "hotel-mid", comp.Offer.Hotel.ID)
	assert.True(t, comp.IsSmartRecommendation)
}

func TestFindOfferMissing(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()
	comp := selectedHotelComponent(t, trip, catalog)

	_, ok := FindOffer(catalog, comp, "no-such-hotel")
	assert.False(t, ok)
}
