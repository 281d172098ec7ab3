package recommend

import (
	"sort"
	"strings"

	"tripcraft/models"
)

// Price tiers for the override catalog filter.
const (
	TierAll     = "all"
	TierBudget  = "budget"  // unit price <= 500
	TierPremium = "premium" // unit price > 500

	tierBoundary = 500.0
)

// Sort fields and orders for the override catalog.
const (
	SortByPrice  = "price"
	SortByRating = "rating"
	SortByName   = "name"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// CatalogQuery is the operator's view settings for the override catalog.
type CatalogQuery struct {
	Search    string `json:"search"`
	PriceTier string `json:"priceTier"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// CatalogEntry is one override candidate with its group-priced total.
type CatalogEntry struct {
	Offer       models.OfferRecord `json:"offer"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	UnitPrice   float64            `json:"unitPrice"`
	TotalPrice  float64            `json:"totalPrice"`
	Currency    string             `json:"currency"`
	Rating      float64            `json:"rating,omitempty"`
}

func unitPrice(offer models.OfferRecord) float64 {
	switch offer.Type {
	case models.ComponentFlight:
		return offer.Flight.Price
	case models.ComponentHotel:
		if room := offer.Hotel.BestRoom(); room != nil {
			return room.Price
		}
		return 0
	case models.ComponentTransfer:
		return offer.Transfer.Price
	case models.ComponentInsurance:
		return offer.Insurance.Price
	}
	return 0
}

// BrowseCatalog exposes the entire candidate pool for a component's type with
// text search, price-tier filtering and sorting, each entry re-priced for the
// component's group so the operator compares like for like.
func BrowseCatalog(trip models.TripDetails, catalog models.Catalog, comp models.PackageComponent, query CatalogQuery) []CatalogEntry {
	gt := groupForComponent(trip, comp)

	var entries []CatalogEntry
	needle := strings.ToLower(strings.TrimSpace(query.Search))

	for _, offer := range offerPool(catalog, comp) {
		entry := CatalogEntry{
			Offer:       offer,
			Title:       offer.Title(),
			Description: describeOffer(offer),
			UnitPrice:   unitPrice(offer),
			TotalPrice:  PriceOffer(offer, gt, trip.Nights),
			Currency:    offer.Currency(),
			Rating:      offer.Rating(),
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(entry.Title), needle) &&
			!strings.Contains(strings.ToLower(entry.Description), needle) {
			continue
		}

		switch query.PriceTier {
		case TierBudget:
			if entry.UnitPrice > tierBoundary {
				continue
			}
		case TierPremium:
			if entry.UnitPrice <= tierBoundary {
				continue
			}
		}

		entries = append(entries, entry)
	}

	less := func(i, j int) bool { return entries[i].UnitPrice < entries[j].UnitPrice }
	switch query.SortBy {
	case SortByRating:
		less = func(i, j int) bool { return entries[i].Rating < entries[j].Rating }
	case SortByName:
		less = func(i, j int) bool { return entries[i].Title < entries[j].Title }
	}
	if query.SortOrder == OrderDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(entries, less)

	return entries
}

// FindOffer locates a candidate by ID within the component's category pool.
func FindOffer(catalog models.Catalog, comp models.PackageComponent, offerID string) (models.OfferRecord, bool) {
	for _, offer := range offerPool(catalog, comp) {
		if offer.OfferID() == offerID {
			return offer, true
		}
	}
	return models.OfferRecord{}, false
}
