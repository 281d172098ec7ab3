package recommend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/models"
)

// fakeTripRepo records write-through calls.
type fakeTripRepo struct {
	updatedTripID   string
	updatedTotal    float64
	updatedCurrency string
	updatedCount    int
	updateErr       error
}

func (f *fakeTripRepo) GetByID(id string) (*models.TripIntake, error) { return nil, nil }
func (f *fakeTripRepo) Create(trip *models.TripIntake) error          { return nil }
func (f *fakeTripRepo) Update(trip *models.TripIntake) error          { return nil }
func (f *fakeTripRepo) Delete(id string) error                        { return nil }

func (f *fakeTripRepo) UpdateComponents(tripID string, components []models.PackageComponent, total float64, currency string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedTripID = tripID
	f.updatedTotal = total
	f.updatedCurrency = currency
	f.updatedCount = len(components)
	return nil
}

func builtSession(t *testing.T) (*models.QuoteSession, []models.PackageComponent) {
	t.Helper()
	trip := testTrip()
	components, _ := BuildAll(trip, testCatalog())
	require.NotEmpty(t, components)
	return &models.QuoteSession{SessionID: "s1", Trip: trip, Catalog: testCatalog()}, components
}

func sumOfComponents(components []models.PackageComponent) float64 {
	total := 0.0
	for _, c := range components {
		total += c.TotalPrice
	}
	return total
}

func TestSetAllTotalIsSumOfComponents(t *testing.T) {
	session, components := builtSession(t)
	repo := &fakeTripRepo{}
	store := &Store{TripRepo: repo}

	require.NoError(t, store.SetAll(session, components))

	assert.Equal(t, sumOfComponents(session.Components), session.TotalPrice)
	assert.Equal(t, "USD", session.Currency)
	assert.Equal(t, "trip-1", repo.updatedTripID)
	assert.Equal(t, session.TotalPrice, repo.updatedTotal)
	assert.Equal(t, len(components), repo.updatedCount)
}

func TestReplaceCategoryKeepsOtherCategories(t *testing.T) {
	session, components := builtSession(t)
	store := &Store{}
	require.NoError(t, store.SetAll(session, components))

	fresh := BuildCategory(session.Trip, session.Catalog, models.ComponentHotel)
	require.NoError(t, store.ReplaceCategory(session, models.ComponentHotel, fresh))

	assert.Len(t, componentsByType(session.Components, models.ComponentHotel), 1)
	assert.Len(t, componentsByType(session.Components, models.ComponentFlight), 2)
	assert.Equal(t, sumOfComponents(session.Components), session.TotalPrice)
}

func TestReplaceComponentRecomputesTotal(t *testing.T) {
	session, components := builtSession(t)
	store := &Store{}
	require.NoError(t, store.SetAll(session, components))
	before := session.TotalPrice

	hotel := componentsByType(session.Components, models.ComponentHotel)[0]
	offer, ok := FindOffer(session.Catalog, hotel, "hotel-luxe")
	require.True(t, ok)
	replaced := ReplaceOffer(session.Trip, hotel, offer)

	require.NoError(t, store.Replace(session, replaced))

	assert.NotEqual(t, before, session.TotalPrice)
	assert.Equal(t, sumOfComponents(session.Components), session.TotalPrice)
}

func TestReplaceUnknownComponent(t *testing.T) {
	session, components := builtSession(t)
	store := &Store{}
	require.NoError(t, store.SetAll(session, components))

	err := store.Replace(session, models.PackageComponent{ID: "cmp-missing"})
	assert.Error(t, err)
}

func TestStoreWriteThroughFailure(t *testing.T) {
	session, components := builtSession(t)
	repo := &fakeTripRepo{updateErr: errors.New("mongo down")}
	store := &Store{TripRepo: repo}

	err := store.SetAll(session, components)
	assert.Error(t, err)
	// The session itself still reflects the mutation.
	assert.Equal(t, sumOfComponents(session.Components), session.TotalPrice)
}

func TestStoreSkipsWriteThroughWithoutTripID(t *testing.T) {
	session, components := builtSession(t)
	session.Trip.TripID = ""
	repo := &fakeTripRepo{}
	store := &Store{TripRepo: repo}

	require.NoError(t, store.SetAll(session, components))
	assert.Zero(t, repo.updatedCount)
}

func TestRecomputeTotalCurrencyFallsBackToBudget(t *testing.T) {
	session := &models.QuoteSession{Trip: testTrip()}
	store := &Store{}

	require.NoError(t, store.SetAll(session, nil))
	assert.Equal(t, 0.0, session.TotalPrice)
	assert.Equal(t, "USD", session.Currency)
}
