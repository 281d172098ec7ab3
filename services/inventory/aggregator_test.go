package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripcraft/models"
)

type fakeFlights struct {
	offers []models.FlightOffer
	err    error
	onCall func()
}

func (f *fakeFlights) SearchFlights(ctx context.Context, criteria SearchCriteria) ([]models.FlightOffer, error) {
	if f.onCall != nil {
		f.onCall()
	}
	return f.offers, f.err
}

type fakeHotels struct {
	offers []models.HotelOffer
	err    error
}

func (f *fakeHotels) SearchHotels(ctx context.Context, criteria SearchCriteria) ([]models.HotelOffer, error) {
	return f.offers, f.err
}

type fakeTransfers struct {
	offers []models.TransferOffer
	err    error
}

func (f *fakeTransfers) SearchTransfers(ctx context.Context, criteria SearchCriteria) ([]models.TransferOffer, error) {
	return f.offers, f.err
}

type fakeInsurance struct {
	offers []models.InsuranceOffer
	err    error
}

func (f *fakeInsurance) GetInsuranceOptions(ctx context.Context) ([]models.InsuranceOffer, error) {
	return f.offers, f.err
}

func testCriteria() SearchCriteria {
	return SearchCriteria{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2026-10-01",
		ReturnDate:    "2026-10-08",
		Adults:        2,
	}
}

func roundTripFlights() []models.FlightOffer {
	return []models.FlightOffer{
		{ID: "f1", DepartureAirport: "JFK", ArrivalAirport: "CDG", Price: 100},
		{ID: "f2", DepartureAirport: "CDG", ArrivalAirport: "JFK", Price: 120},
		{ID: "f3", DepartureAirport: "LHR", ArrivalAirport: "CDG", Price: 80},
	}
}

func TestFetchSplitsFlightDirections(t *testing.T) {
	agg := NewAggregator(
		&fakeFlights{offers: roundTripFlights()},
		&fakeHotels{},
		&fakeTransfers{},
		&fakeInsurance{},
		zap.NewNop(),
	)

	catalog, ok := agg.Fetch(context.Background(), testCriteria())

	require.True(t, ok)
	require.Len(t, catalog.OutboundFlights, 1)
	assert.Equal(t, "f1", catalog.OutboundFlights[0].ID)
	require.Len(t, catalog.InboundFlights, 1)
	assert.Equal(t, "f2", catalog.InboundFlights[0].ID)
}

func TestFetchIsolatesFailingCollaborator(t *testing.T) {
	agg := NewAggregator(
		&fakeFlights{offers: roundTripFlights()},
		&fakeHotels{err: errors.New("hotel api down")},
		&fakeTransfers{offers: []models.TransferOffer{{ID: "tr1", VehicleCapacity: 4, Price: 40}}},
		&fakeInsurance{offers: []models.InsuranceOffer{{ID: "ins1", Price: 20}}},
		zap.NewNop(),
	)

	catalog, ok := agg.Fetch(context.Background(), testCriteria())

	require.True(t, ok)
	assert.Empty(t, catalog.Hotels)
	assert.NotEmpty(t, catalog.OutboundFlights)
	assert.NotEmpty(t, catalog.Transfers)
	assert.NotEmpty(t, catalog.Insurance)
}

func TestFetchAllCollaboratorsFailing(t *testing.T) {
	agg := NewAggregator(
		&fakeFlights{err: errors.New("down")},
		&fakeHotels{err: errors.New("down")},
		&fakeTransfers{err: errors.New("down")},
		&fakeInsurance{err: errors.New("down")},
		zap.NewNop(),
	)

	catalog, ok := agg.Fetch(context.Background(), testCriteria())

	require.True(t, ok)
	assert.Empty(t, catalog.OutboundFlights)
	assert.Empty(t, catalog.Hotels)
	assert.Empty(t, catalog.Transfers)
	assert.Empty(t, catalog.Insurance)
}

func TestFetchDiscardsStaleGeneration(t *testing.T) {
	flights := &fakeFlights{offers: roundTripFlights()}
	agg := NewAggregator(flights, &fakeHotels{}, &fakeTransfers{}, &fakeInsurance{}, zap.NewNop())

	// A newer fetch claims the generation while this one is in flight.
	flights.onCall = func() { agg.generation.Add(1) }

	catalog, ok := agg.Fetch(context.Background(), testCriteria())

	assert.False(t, ok)
	assert.Empty(t, catalog.OutboundFlights)
}

func TestSplitByDirectionDropsUnrelatedLegs(t *testing.T) {
	outbound, inbound := splitByDirection(roundTripFlights(), testCriteria())

	assert.Len(t, outbound, 1)
	assert.Len(t, inbound, 1)
}
