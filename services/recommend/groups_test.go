package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/models"
)

func TestResolveGroupsExplicit(t *testing.T) {
	trip := testTrip()
	trip.Adults = 4
	trip.Travelers = []models.Traveler{
		adult("t1", models.TravelerPreferences{}),
		adult("t2", models.TravelerPreferences{}),
		adult("t3", models.TravelerPreferences{}),
		adult("t4", models.TravelerPreferences{}),
	}
	trip.Groups = []models.TravelerGroup{
		{ID: "g-early", Name: "Early birds", BookingType: models.BookingFlight, MemberIDs: []string{"t1", "t2"}},
		{ID: "g-late", Name: "Late risers", BookingType: models.BookingFlight, MemberIDs: []string{"t3", "t4"}},
	}

	groups := ResolveGroups(trip, models.BookingFlight)
	require.Len(t, groups, 2)
	assert.Equal(t, "g-early", groups[0].Group.ID)
	assert.Equal(t, []string{"t1", "t2"}, groups[0].TravelerIDs())
	assert.Equal(t, "g-late", groups[1].Group.ID)
	assert.Equal(t, 2, groups[1].Size())

	// Hotel has no explicit groups, so a single implicit group covers everyone.
	hotelGroups := ResolveGroups(trip, models.BookingHotel)
	require.Len(t, hotelGroups, 1)
	assert.Equal(t, "all-hotel", hotelGroups[0].Group.ID)
	assert.Equal(t, 4, hotelGroups[0].Size())
}

func TestResolveGroupsIgnoresUnknownMembers(t *testing.T) {
	trip := testTrip()
	trip.Groups = []models.TravelerGroup{
		{ID: "g1", BookingType: models.BookingFlight, MemberIDs: []string{"t1", "ghost"}},
	}

	groups := ResolveGroups(trip, models.BookingFlight)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"t1"}, groups[0].TravelerIDs())
}

func TestResolveGroupsVirtual(t *testing.T) {
	trip := models.TripDetails{Adults: 2, Children: 1}

	groups := ResolveGroups(trip, models.BookingTransfer)
	require.Len(t, groups, 1)
	assert.Equal(t, "all-transfer", groups[0].Group.ID)
	assert.Equal(t, 3, groups[0].Size())
	assert.Equal(t, 2, groups[0].Adults())
	assert.Nil(t, groups[0].TravelerIDs())
}

func TestResolveGroupsNoTravelers(t *testing.T) {
	assert.Nil(t, ResolveGroups(models.TripDetails{}, models.BookingFlight))
}

func TestGroupWarningsSizeMismatch(t *testing.T) {
	trip := testTrip()
	trip.Groups = []models.TravelerGroup{
		{ID: "g1", BookingType: models.BookingFlight, MemberIDs: []string{"t1"}},
	}

	warnings := GroupWarnings(trip)
	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarnGroupSizeMismatch, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "flight")
}

func TestGroupWarningsNoneWhenConsistent(t *testing.T) {
	trip := testTrip()
	trip.Groups = []models.TravelerGroup{
		{ID: "g1", BookingType: models.BookingFlight, MemberIDs: []string{"t1", "t2"}},
	}

	assert.Empty(t, GroupWarnings(trip))
}

func TestGroupWarningsSkipUngroupedTypes(t *testing.T) {
	// No explicit groups at all means nothing to validate.
	assert.Empty(t, GroupWarnings(testTrip()))
}
