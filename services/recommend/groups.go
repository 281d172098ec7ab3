package recommend

import (
	"fmt"

	"tripcraft/models"
)

// GroupTravelers pairs a traveler group with its resolved member records. For
// trips without individually modeled travelers the group is virtual: Travelers
// is empty and VirtualAdults/VirtualChildren carry the trip-level counts.
type GroupTravelers struct {
	Group           models.TravelerGroup
	Travelers       []models.Traveler
	VirtualAdults   int
	VirtualChildren int
}

// Size returns the number of travelers the group covers.
func (g GroupTravelers) Size() int {
	if len(g.Travelers) > 0 {
		return len(g.Travelers)
	}
	return g.VirtualAdults + g.VirtualChildren
}

// Adults returns the adult headcount the group covers.
func (g GroupTravelers) Adults() int {
	if len(g.Travelers) > 0 {
		n := 0
		for _, t := range g.Travelers {
			if t.Kind == models.TravelerAdult {
				n++
			}
		}
		return n
	}
	return g.VirtualAdults
}

// TravelerIDs returns the IDs of the resolved members, if any.
func (g GroupTravelers) TravelerIDs() []string {
	if len(g.Travelers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(g.Travelers))
	for _, t := range g.Travelers {
		ids = append(ids, t.ID)
	}
	return ids
}

// ResolveGroups resolves the traveler grouping for one booking type. Explicit
// groups of that type win; otherwise a single implicit group covers all
// modeled travelers; with no modeled travelers a virtual group is sized to the
// trip's adult+child counts. The result has at least one entry whenever the
// trip has travelers.
func ResolveGroups(trip models.TripDetails, bookingType models.BookingType) []GroupTravelers {
	byID := make(map[string]models.Traveler, len(trip.Travelers))
	for _, t := range trip.Travelers {
		byID[t.ID] = t
	}

	var explicit []GroupTravelers
	for _, g := range trip.Groups {
		if g.BookingType != bookingType {
			continue
		}
		gt := GroupTravelers{Group: g}
		for _, id := range g.MemberIDs {
			if t, ok := byID[id]; ok {
				gt.Travelers = append(gt.Travelers, t)
			}
		}
		explicit = append(explicit, gt)
	}
	if len(explicit) > 0 {
		return explicit
	}

	if trip.TotalTravelers() == 0 {
		return nil
	}

	implicit := GroupTravelers{
		Group: models.TravelerGroup{
			ID:          fmt.Sprintf("all-%s", bookingType),
			Name:        "All travelers",
			BookingType: bookingType,
		},
	}
	if len(trip.Travelers) > 0 {
		implicit.Travelers = trip.Travelers
	} else {
		implicit.VirtualAdults = trip.Adults
		implicit.VirtualChildren = trip.Children
	}
	return []GroupTravelers{implicit}
}

// GroupWarnings reports non-fatal grouping inconsistencies, currently group
// sizes not summing to the trip's traveler count for a booking type.
func GroupWarnings(trip models.TripDetails) []models.Warning {
	var warnings []models.Warning
	total := trip.TotalTravelers()

	for _, bt := range []models.BookingType{models.BookingFlight, models.BookingHotel, models.BookingTransfer} {
		sum := 0
		seen := false
		for _, g := range trip.Groups {
			if g.BookingType != bt {
				continue
			}
			seen = true
			sum += len(g.MemberIDs)
		}
		if seen && sum != total {
			warnings = append(warnings, models.Warning{
				Code: models.WarnGroupSizeMismatch,
				Message: fmt.Sprintf("%s groups cover %d travelers but the trip has %d; review group membership",
					bt, sum, total),
			})
		}
	}
	return warnings
}
