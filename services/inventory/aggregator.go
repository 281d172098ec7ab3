package inventory

import (
	"context"
	"sync"
	"sync/atomic"

	"tripcraft/models"

	"go.uber.org/zap"
)

// Aggregator fans out to every inventory collaborator and collects whatever
// succeeds into a Catalog. Categories are independent: a failing collaborator
// yields an empty list for that category, never a fatal error.
type Aggregator struct {
	Flights   FlightSearcher
	Hotels    HotelSearcher
	Transfers TransferSearcher
	Insurance InsuranceProvider
	Logger    *zap.Logger

	generation atomic.Int64
}

// NewAggregator wires the four collaborators.
func NewAggregator(f FlightSearcher, h HotelSearcher, t TransferSearcher, i InsuranceProvider, logger *zap.Logger) *Aggregator {
	return &Aggregator{Flights: f, Hotels: h, Transfers: t, Insurance: i, Logger: logger}
}

// Fetch aggregates all categories for the given criteria. Overlapping calls
// follow a last-request-wins policy: each Fetch claims a new generation and a
// completion that is no longer current returns ok=false so the caller can
// discard it instead of overwriting fresher inventory.
func (a *Aggregator) Fetch(ctx context.Context, criteria SearchCriteria) (models.Catalog, bool) {
	gen := a.generation.Add(1)

	catalog := models.Catalog{Generation: int(gen)}
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		flights, err := a.Flights.SearchFlights(ctx, criteria)
		if err != nil {
			a.Logger.Warn("flight inventory unavailable", zap.Error(err))
			return
		}
		catalog.OutboundFlights, catalog.InboundFlights = splitByDirection(flights, criteria)
	}()
	go func() {
		defer wg.Done()
		hotels, err := a.Hotels.SearchHotels(ctx, criteria)
		if err != nil {
			a.Logger.Warn("hotel inventory unavailable", zap.Error(err))
			return
		}
		catalog.Hotels = hotels
	}()
	go func() {
		defer wg.Done()
		transfers, err := a.Transfers.SearchTransfers(ctx, criteria)
		if err != nil {
			a.Logger.Warn("transfer inventory unavailable", zap.Error(err))
			return
		}
		catalog.Transfers = transfers
	}()
	go func() {
		defer wg.Done()
		insurance, err := a.Insurance.GetInsuranceOptions(ctx)
		if err != nil {
			a.Logger.Warn("insurance inventory unavailable", zap.Error(err))
			return
		}
		catalog.Insurance = insurance
	}()
	wg.Wait()

	if a.generation.Load() != gen {
		a.Logger.Debug("discarding stale inventory fetch", zap.Int64("generation", gen))
		return models.Catalog{}, false
	}
	return catalog, true
}

// splitByDirection buckets flights into outbound and inbound legs by matching
// airport roles against the trip's origin and destination. Legs that match
// neither role are dropped.
func splitByDirection(flights []models.FlightOffer, criteria SearchCriteria) (outbound, inbound []models.FlightOffer) {
	for _, f := range flights {
		switch {
		case f.DepartureAirport == criteria.Origin && f.ArrivalAirport == criteria.Destination:
			outbound = append(outbound, f)
		case f.DepartureAirport == criteria.Destination && f.ArrivalAirport == criteria.Origin:
			inbound = append(inbound, f)
		}
	}
	return outbound, inbound
}
