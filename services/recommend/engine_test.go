package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/models"
)

func componentsByType(components []models.PackageComponent, ctype models.ComponentType) []models.PackageComponent {
	var got []models.PackageComponent
	for _, c := range components {
		if c.Type == ctype {
			got = append(got, c)
		}
	}
	return got
}

func TestBuildAllOneComponentPerSlot(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()

	components, warnings := BuildAll(trip, catalog)

	assert.Empty(t, warnings)
	assert.Len(t, componentsByType(components, models.ComponentFlight), 2)
	assert.Len(t, componentsByType(components, models.ComponentHotel), 1)
	assert.Len(t, componentsByType(components, models.ComponentTransfer), 1)
	assert.Len(t, componentsByType(components, models.ComponentInsurance), 1)

	for _, c := range components {
		assert.True(t, c.IsSmartRecommendation)
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Reasoning)
		assert.Equal(t, "USD", c.Currency)
	}
}

func TestBuildAllDeterministic(t *testing.T) {
	trip := testTrip()
	catalog := testCatalog()

	first, _ := BuildAll(trip, catalog)
	second, _ := BuildAll(trip, catalog)

	require.Equal(t, first, second)
}

func TestBuildAllFlightDirections(t *testing.T) {
	components, _ := BuildAll(testTrip(), testCatalog())

	flights := componentsByType(components, models.ComponentFlight)
	require.Len(t, flights, 2)
	assert.Equal(t, models.DirectionOutbound, flights[0].Direction)
	assert.Equal(t, "f-out-1", flights[0].Offer.Flight.ID)
	assert.Equal(t, models.DirectionInbound, flights[1].Direction)
	assert.Equal(t, "f-in-1", flights[1].Offer.Flight.ID)
}

func TestBuildAllEmptyHotelPool(t *testing.T) {
	catalog := testCatalog()
	catalog.Hotels = nil

	components, _ := BuildAll(testTrip(), catalog)

	assert.Empty(t, componentsByType(components, models.ComponentHotel))
	assert.Len(t, componentsByType(components, models.ComponentFlight), 2)
	assert.Len(t, componentsByType(components, models.ComponentTransfer), 1)
	assert.Len(t, componentsByType(components, models.ComponentInsurance), 1)
}

func TestBuildFlightComponentsPerGroup(t *testing.T) {
	trip := testTrip()
	trip.Groups = []models.TravelerGroup{
		{ID: "g-early", Name: "Early birds", BookingType: models.BookingFlight, MemberIDs: []string{"t1"}},
		{ID: "g-late", Name: "Late risers", BookingType: models.BookingFlight, MemberIDs: []string{"t2"}},
	}

	components := BuildCategory(trip, testCatalog(), models.ComponentFlight)

	// Two groups, an outbound and an inbound leg each.
	require.Len(t, components, 4)
	groupIDs := map[string]int{}
	for _, c := range components {
		groupIDs[c.GroupID]++
	}
	assert.Equal(t, map[string]int{"g-early": 2, "g-late": 2}, groupIDs)
}

func TestBuildInsuranceCoversAllTravelers(t *testing.T) {
	trip := testTrip()
	trip.Groups = []models.TravelerGroup{
		{ID: "g1", BookingType: models.BookingFlight, MemberIDs: []string{"t1"}},
		{ID: "g2", BookingType: models.BookingFlight, MemberIDs: []string{"t2"}},
	}

	components := BuildCategory(trip, testCatalog(), models.ComponentInsurance)

	require.Len(t, components, 1)
	assert.Equal(t, "all-insurance", components[0].GroupID)
	assert.Equal(t, []string{"t1", "t2"}, components[0].TravelerIDs)
	// Comprehensive tier at 35 per traveler.
	assert.Equal(t, 70.0, components[0].TotalPrice)
}

func TestBuildCategoryLeavesOthersAlone(t *testing.T) {
	components := BuildCategory(testTrip(), testCatalog(), models.ComponentHotel)

	require.Len(t, components, 1)
	assert.Equal(t, models.ComponentHotel, components[0].Type)
	assert.Equal(t, "hotel-mid", components[0].Offer.Hotel.ID)
	// One room at 150 over 3 nights for a couple without room preferences.
	assert.Equal(t, 450.0, components[0].TotalPrice)
}

func TestBuildAllEmptyTrip(t *testing.T) {
	components, warnings := BuildAll(models.TripDetails{}, testCatalog())

	assert.Empty(t, components)
	assert.Empty(t, warnings)
}
