package recommend

import (
	"fmt"

	"tripcraft/models"
)

// maxAlternatives caps the quick-swap list per component.
const maxAlternatives = 3

// offerPool returns the candidate records for a component's category in
// catalog insertion order.
func offerPool(catalog models.Catalog, comp models.PackageComponent) []models.OfferRecord {
	var pool []models.OfferRecord
	switch comp.Type {
	case models.ComponentFlight:
		legs := catalog.OutboundFlights
		if comp.Direction == models.DirectionInbound {
			legs = catalog.InboundFlights
		}
		for i := range legs {
			pool = append(pool, models.OfferRecord{Type: models.ComponentFlight, Flight: &legs[i]})
		}
	case models.ComponentHotel:
		for i := range catalog.Hotels {
			pool = append(pool, models.OfferRecord{Type: models.ComponentHotel, Hotel: &catalog.Hotels[i]})
		}
	case models.ComponentTransfer:
		for i := range catalog.Transfers {
			pool = append(pool, models.OfferRecord{Type: models.ComponentTransfer, Transfer: &catalog.Transfers[i]})
		}
	case models.ComponentInsurance:
		for i := range catalog.Insurance {
			pool = append(pool, models.OfferRecord{Type: models.ComponentInsurance, Insurance: &catalog.Insurance[i]})
		}
	}
	return pool
}

// Alternatives produces up to three substitute candidates for a selected
// component, re-priced against the same group context, in the pool's insertion
// order.
func Alternatives(trip models.TripDetails, catalog models.Catalog, comp models.PackageComponent) []models.QuickAlternative {
	gt := groupForComponent(trip, comp)

	var alts []models.QuickAlternative
	for _, offer := range offerPool(catalog, comp) {
		if offer.OfferID() == comp.Offer.OfferID() {
			continue
		}
		alts = append(alts, models.QuickAlternative{
			ID:         fmt.Sprintf("alt-%s-%s", comp.ID, offer.OfferID()),
			Title:      offer.Title(),
			TotalPrice: PriceOffer(offer, gt, trip.Nights),
			Currency:   offer.Currency(),
			Offer:      offer,
		})
		if len(alts) == maxAlternatives {
			break
		}
	}
	return alts
}

// ReplaceOffer rebuilds a component around a substitute offer: new title and
// description, recomputed price for the same group, marked manually chosen.
// It is a full replace, never a merge.
func ReplaceOffer(trip models.TripDetails, comp models.PackageComponent, offer models.OfferRecord) models.PackageComponent {
	gt := groupForComponent(trip, comp)

	replaced := comp
	replaced.Offer = offer
	replaced.Title = offer.Title()
	replaced.Description = describeOffer(offer)
	replaced.TotalPrice = PriceOffer(offer, gt, trip.Nights)
	replaced.Currency = offer.Currency()
	replaced.Rating = offer.Rating()
	replaced.Reasoning = "Manually selected by the operator"
	replaced.IsSmartRecommendation = false
	replaced.TravelerIDs = gt.TravelerIDs()
	return replaced
}

func describeOffer(offer models.OfferRecord) string {
	switch offer.Type {
	case models.ComponentFlight:
		f := offer.Flight
		return fmt.Sprintf("Flight departing %s, %d stop(s), duration %s", f.DepartureTime, f.Stops, f.Duration)
	case models.ComponentHotel:
		h := offer.Hotel
		return fmt.Sprintf("%.1f-rated stay in %s with %d room option(s)", h.Rating, h.City, len(h.Rooms))
	case models.ComponentTransfer:
		t := offer.Transfer
		return fmt.Sprintf("%s to %s, seats %d", t.PickupLocation, t.DropoffLocation, t.VehicleCapacity)
	case models.ComponentInsurance:
		i := offer.Insurance
		return fmt.Sprintf("%s coverage at %.2f %s per traveler", i.CoverageType, i.Price, i.Currency)
	}
	return ""
}
