package recommend

import (
	"math"

	"tripcraft/models"
)

// DefaultNights is assumed when the trip does not specify a stay length.
const DefaultNights = 4

// cabinMultiplier maps a cabin-class preference to its price factor.
func cabinMultiplier(cabin string) float64 {
	switch cabin {
	case models.CabinPremiumEconomy:
		return 1.5
	case models.CabinBusiness:
		return 3
	case models.CabinFirst:
		return 5
	default:
		return 1
	}
}

// PriceFlight totals a flight offer over the group: base seat price times the
// per-traveler cabin multiplier. A virtual group is priced at base times the
// trip's adult count.
func PriceFlight(offer models.FlightOffer, gt GroupTravelers) float64 {
	if len(gt.Travelers) == 0 {
		return offer.Price * float64(gt.VirtualAdults)
	}
	total := 0.0
	for _, t := range gt.Travelers {
		total += offer.Price * cabinMultiplier(t.Preferences.CabinClass)
	}
	return total
}

// PriceHotel totals the stay for the group against the hotel's best room.
// Travelers preferring a single room take one room each, suite travelers one
// room each at double rate, and shared travelers bundle two per room. Without
// individual preferences one room covers the whole group.
func PriceHotel(offer models.HotelOffer, gt GroupTravelers, nights int) float64 {
	room := offer.BestRoom()
	if room == nil {
		return 0
	}
	if nights <= 0 {
		nights = DefaultNights
	}
	stay := room.Price * float64(nights)

	// One room covers the whole group when nobody expressed a room choice.
	anyPref := false
	for _, t := range gt.Travelers {
		if t.Preferences.RoomType != "" {
			anyPref = true
			break
		}
	}
	if !anyPref {
		return stay
	}

	shared, single, suite := 0, 0, 0
	for _, t := range gt.Travelers {
		switch t.Preferences.RoomType {
		case models.RoomSingle:
			single++
		case models.RoomSuite:
			suite++
		default:
			shared++
		}
	}

	sharedRooms := int(math.Ceil(float64(shared) / 2))
	return float64(sharedRooms)*stay + float64(single)*stay + float64(suite)*2*stay
}

// PriceTransfer totals vehicles for the group: private travelers take one
// vehicle each, shared travelers bundle by vehicle capacity. Without
// individual preferences the whole group shares, bundled by capacity.
func PriceTransfer(offer models.TransferOffer, gt GroupTravelers) float64 {
	if offer.VehicleCapacity <= 0 {
		return 0
	}

	if len(gt.Travelers) == 0 {
		vehicles := int(math.Ceil(float64(gt.Size()) / float64(offer.VehicleCapacity)))
		return float64(vehicles) * offer.Price
	}

	private, shared := 0, 0
	for _, t := range gt.Travelers {
		if t.Preferences.TransferType == models.TransferPrivate {
			private++
		} else {
			shared++
		}
	}

	vehicles := private
	if shared > 0 {
		vehicles += int(math.Ceil(float64(shared) / float64(offer.VehicleCapacity)))
	}
	return float64(vehicles) * offer.Price
}

// PriceInsurance totals a per-traveler policy over the group's headcount.
func PriceInsurance(offer models.InsuranceOffer, gt GroupTravelers) float64 {
	return offer.Price * float64(gt.Size())
}

// PriceOffer dispatches to the category calculator for a tagged offer record.
func PriceOffer(offer models.OfferRecord, gt GroupTravelers, nights int) float64 {
	switch offer.Type {
	case models.ComponentFlight:
		return PriceFlight(*offer.Flight, gt)
	case models.ComponentHotel:
		return PriceHotel(*offer.Hotel, gt, nights)
	case models.ComponentTransfer:
		return PriceTransfer(*offer.Transfer, gt)
	case models.ComponentInsurance:
		return PriceInsurance(*offer.Insurance, gt)
	}
	return 0
}
