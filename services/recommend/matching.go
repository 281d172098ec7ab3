package recommend

import (
	"math"
	"sort"

	"tripcraft/models"
)

// Per-category shares of the trip budget used as matching ceilings.
const (
	hotelBudgetShare     = 0.20
	insuranceBudgetShare = 0.05
)

// A strategy narrows a candidate pool; the first strategy in a chain that
// yields a non-empty result wins. Chains make the fallback policy explicit and
// auditable per tier.
type hotelStrategy func([]models.HotelOffer) []models.HotelOffer
type transferStrategy func([]models.TransferOffer) []models.TransferOffer
type insuranceStrategy func([]models.InsuranceOffer) []models.InsuranceOffer

func firstHotel(pool []models.HotelOffer, chain ...hotelStrategy) *models.HotelOffer {
	for _, strategy := range chain {
		if got := strategy(pool); len(got) > 0 {
			return &got[0]
		}
	}
	return nil
}

func firstTransfer(pool []models.TransferOffer, chain ...transferStrategy) *models.TransferOffer {
	for _, strategy := range chain {
		if got := strategy(pool); len(got) > 0 {
			return &got[0]
		}
	}
	return nil
}

func firstInsurance(pool []models.InsuranceOffer, chain ...insuranceStrategy) *models.InsuranceOffer {
	for _, strategy := range chain {
		if got := strategy(pool); len(got) > 0 {
			return &got[0]
		}
	}
	return nil
}

// MatchFlight picks the first candidate for the required direction. Candidates
// stay in the pool after being chosen: two groups may match the same leg,
// mirroring the assumption that flight inventory is not exclusive per seat.
func MatchFlight(pool []models.FlightOffer, gt GroupTravelers) *models.FlightOffer {
	if len(pool) == 0 {
		return nil
	}
	offer := pool[0]
	return &offer
}

// MatchHotel ranks candidates by rating descending, then keeps those whose
// best room fits the group in one room and whose stay cost stays within the
// hotel share of the trip budget. Falls back to the top-rated candidate when
// nothing fits.
func MatchHotel(pool []models.HotelOffer, gt GroupTravelers, budget models.Budget, nights int) *models.HotelOffer {
	if len(pool) == 0 {
		return nil
	}
	if nights <= 0 {
		nights = DefaultNights
	}

	ranked := make([]models.HotelOffer, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	ceiling := budget.Amount * hotelBudgetShare
	size := gt.Size()

	fitsGroupAndBudget := func(candidates []models.HotelOffer) []models.HotelOffer {
		var kept []models.HotelOffer
		for _, h := range candidates {
			room := h.BestRoom()
			if room == nil {
				continue
			}
			if room.MaxOccupancy >= size && room.Price*float64(nights) <= ceiling {
				kept = append(kept, h)
			}
		}
		return kept
	}
	topRated := func(candidates []models.HotelOffer) []models.HotelOffer {
		return candidates
	}

	return firstHotel(ranked, fitsGroupAndBudget, topRated)
}

// MatchTransfer ranks candidates by price ascending, preferring a single
// vehicle that covers the whole group, then one covering at least half, then
// the cheapest candidate overall.
func MatchTransfer(pool []models.TransferOffer, gt GroupTravelers) *models.TransferOffer {
	if len(pool) == 0 {
		return nil
	}

	ranked := make([]models.TransferOffer, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})

	size := gt.Size()
	halfSize := int(math.Ceil(float64(size) / 2))

	coversGroup := func(candidates []models.TransferOffer) []models.TransferOffer {
		var kept []models.TransferOffer
		for _, t := range candidates {
			if t.VehicleCapacity >= size {
				kept = append(kept, t)
			}
		}
		return kept
	}
	coversHalfGroup := func(candidates []models.TransferOffer) []models.TransferOffer {
		var kept []models.TransferOffer
		for _, t := range candidates {
			if t.VehicleCapacity >= halfSize {
				kept = append(kept, t)
			}
		}
		return kept
	}
	cheapest := func(candidates []models.TransferOffer) []models.TransferOffer {
		return candidates
	}

	return firstTransfer(ranked, coversGroup, coversHalfGroup, cheapest)
}

// MatchInsurance prefers comprehensive coverage tie-broken by price ascending,
// keeps options whose total cost fits the per-traveler share of the trip
// budget, and falls back to the best-ranked option when none fit.
func MatchInsurance(pool []models.InsuranceOffer, gt GroupTravelers, budget models.Budget) *models.InsuranceOffer {
	if len(pool) == 0 {
		return nil
	}

	ranked := make([]models.InsuranceOffer, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		ci := ranked[i].CoverageType == "Comprehensive"
		cj := ranked[j].CoverageType == "Comprehensive"
		if ci != cj {
			return ci
		}
		return ranked[i].Price < ranked[j].Price
	})

	size := gt.Size()
	ceiling := budget.Amount * insuranceBudgetShare

	fitsBudget := func(candidates []models.InsuranceOffer) []models.InsuranceOffer {
		var kept []models.InsuranceOffer
		for _, o := range candidates {
			if o.Price*float64(size) <= ceiling*float64(size) {
				kept = append(kept, o)
			}
		}
		return kept
	}
	bestRanked := func(candidates []models.InsuranceOffer) []models.InsuranceOffer {
		return candidates
	}

	return firstInsurance(ranked, fitsBudget, bestRanked)
}
