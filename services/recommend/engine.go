package recommend

import (
	"fmt"

	"tripcraft/models"
)

// BuildAll runs matching and pricing for every category and returns the fresh
// component list plus any grouping warnings. Categories with no candidates
// simply produce no component.
func BuildAll(trip models.TripDetails, catalog models.Catalog) ([]models.PackageComponent, []models.Warning) {
	var components []models.PackageComponent
	components = append(components, buildFlightComponents(trip, catalog)...)
	components = append(components, buildHotelComponents(trip, catalog)...)
	components = append(components, buildTransferComponents(trip, catalog)...)
	components = append(components, buildInsuranceComponents(trip, catalog)...)
	return components, GroupWarnings(trip)
}

// BuildCategory runs matching and pricing for a single category.
func BuildCategory(trip models.TripDetails, catalog models.Catalog, ctype models.ComponentType) []models.PackageComponent {
	switch ctype {
	case models.ComponentFlight:
		return buildFlightComponents(trip, catalog)
	case models.ComponentHotel:
		return buildHotelComponents(trip, catalog)
	case models.ComponentTransfer:
		return buildTransferComponents(trip, catalog)
	case models.ComponentInsurance:
		return buildInsuranceComponents(trip, catalog)
	}
	return nil
}

// componentID derives a stable identifier from the slot so that re-running an
// unchanged match yields an identical component.
func componentID(c models.PackageComponent) string {
	return "cmp-" + c.SlotKey()
}

func buildFlightComponents(trip models.TripDetails, catalog models.Catalog) []models.PackageComponent {
	groups := ResolveGroups(trip, models.BookingFlight)
	var components []models.PackageComponent

	legs := []struct {
		direction models.FlightDirection
		pool      []models.FlightOffer
	}{
		{models.DirectionOutbound, catalog.OutboundFlights},
		{models.DirectionInbound, catalog.InboundFlights},
	}

	for _, gt := range groups {
		for _, leg := range legs {
			offer := MatchFlight(leg.pool, gt)
			if offer == nil {
				continue
			}
			comp := models.PackageComponent{
				Type:      models.ComponentFlight,
				Direction: leg.direction,
				Title:     fmt.Sprintf("%s %s → %s", offer.Airline, offer.DepartureAirport, offer.ArrivalAirport),
				Description: fmt.Sprintf("%s flight departing %s, %d stop(s), duration %s",
					leg.direction, offer.DepartureTime, offer.Stops, offer.Duration),
				TotalPrice: PriceFlight(*offer, gt),
				Currency:   offer.Currency,
				Reasoning: fmt.Sprintf("Earliest available %s leg for %s with %d traveler(s)",
					leg.direction, gt.Group.Name, gt.Size()),
				IsSmartRecommendation: true,
				Offer:                 models.OfferRecord{Type: models.ComponentFlight, Flight: offer},
				GroupID:               gt.Group.ID,
				TravelerIDs:           gt.TravelerIDs(),
			}
			comp.ID = componentID(comp)
			components = append(components, comp)
		}
	}
	return components
}

func buildHotelComponents(trip models.TripDetails, catalog models.Catalog) []models.PackageComponent {
	groups := ResolveGroups(trip, models.BookingHotel)
	var components []models.PackageComponent

	for _, gt := range groups {
		offer := MatchHotel(catalog.Hotels, gt, trip.Budget, trip.Nights)
		if offer == nil {
			continue
		}
		comp := models.PackageComponent{
			Type:  models.ComponentHotel,
			Title: offer.Name,
			Description: fmt.Sprintf("%.1f-rated stay in %s with %d room option(s)",
				offer.Rating, offer.City, len(offer.Rooms)),
			TotalPrice: PriceHotel(*offer, gt, trip.Nights),
			Currency:   offer.Currency,
			Rating:     offer.Rating,
			Reasoning: fmt.Sprintf("Best-rated property accommodating %d traveler(s) within the accommodation budget",
				gt.Size()),
			IsSmartRecommendation: true,
			Offer:                 models.OfferRecord{Type: models.ComponentHotel, Hotel: offer},
			GroupID:               gt.Group.ID,
			TravelerIDs:           gt.TravelerIDs(),
		}
		comp.ID = componentID(comp)
		components = append(components, comp)
	}
	return components
}

func buildTransferComponents(trip models.TripDetails, catalog models.Catalog) []models.PackageComponent {
	groups := ResolveGroups(trip, models.BookingTransfer)
	var components []models.PackageComponent

	for _, gt := range groups {
		offer := MatchTransfer(catalog.Transfers, gt)
		if offer == nil {
			continue
		}
		comp := models.PackageComponent{
			Type:  models.ComponentTransfer,
			Title: offer.VehicleName,
			Description: fmt.Sprintf("%s to %s, seats %d",
				offer.PickupLocation, offer.DropoffLocation, offer.VehicleCapacity),
			TotalPrice: PriceTransfer(*offer, gt),
			Currency:   offer.Currency,
			Reasoning: fmt.Sprintf("Cheapest vehicle covering %d traveler(s) for %s",
				gt.Size(), gt.Group.Name),
			IsSmartRecommendation: true,
			Offer:                 models.OfferRecord{Type: models.ComponentTransfer, Transfer: offer},
			GroupID:               gt.Group.ID,
			TravelerIDs:           gt.TravelerIDs(),
		}
		comp.ID = componentID(comp)
		components = append(components, comp)
	}
	return components
}

// allTravelersGroup synthesizes the single group insurance is always priced
// for; insurance has no per-booking-type grouping.
func allTravelersGroup(trip models.TripDetails) (GroupTravelers, bool) {
	if trip.TotalTravelers() == 0 {
		return GroupTravelers{}, false
	}
	gt := GroupTravelers{
		Group: models.TravelerGroup{ID: "all-insurance", Name: "All travelers"},
	}
	if len(trip.Travelers) > 0 {
		gt.Travelers = trip.Travelers
	} else {
		gt.VirtualAdults = trip.Adults
		gt.VirtualChildren = trip.Children
	}
	return gt, true
}

func buildInsuranceComponents(trip models.TripDetails, catalog models.Catalog) []models.PackageComponent {
	gt, ok := allTravelersGroup(trip)
	if !ok {
		return nil
	}
	offer := MatchInsurance(catalog.Insurance, gt, trip.Budget)
	if offer == nil {
		return nil
	}
	comp := models.PackageComponent{
		Type:        models.ComponentInsurance,
		Title:       offer.Name,
		Description: fmt.Sprintf("%s coverage at %.2f %s per traveler", offer.CoverageType, offer.Price, offer.Currency),
		TotalPrice:  PriceInsurance(*offer, gt),
		Currency:    offer.Currency,
		Rating:      offer.Rating,
		Reasoning: fmt.Sprintf("%s coverage for all %d traveler(s) within the insurance budget",
			offer.CoverageType, gt.Size()),
		IsSmartRecommendation: true,
		Offer:                 models.OfferRecord{Type: models.ComponentInsurance, Insurance: offer},
		GroupID:               gt.Group.ID,
		TravelerIDs:           gt.TravelerIDs(),
	}
	comp.ID = componentID(comp)
	return []models.PackageComponent{comp}
}

// groupForComponent re-resolves the traveler context a component was priced
// for, so alternatives and overrides are priced against the same group.
func groupForComponent(trip models.TripDetails, comp models.PackageComponent) GroupTravelers {
	if comp.Type == models.ComponentInsurance {
		gt, _ := allTravelersGroup(trip)
		return gt
	}
	bookingType := models.BookingType(comp.Type)
	for _, gt := range ResolveGroups(trip, bookingType) {
		if gt.Group.ID == comp.GroupID {
			return gt
		}
	}
	// Group edits may have removed the original group; fall back to the first.
	groups := ResolveGroups(trip, bookingType)
	if len(groups) > 0 {
		return groups[0]
	}
	return GroupTravelers{VirtualAdults: trip.Adults, VirtualChildren: trip.Children}
}
