package recommend

import "tripcraft/models"

// ChangedInput names a trip-level edit that may invalidate recommendations.
type ChangedInput string

const (
	ChangedTravelerCount  ChangedInput = "traveler_count"
	ChangedBudget         ChangedInput = "budget"
	ChangedCabinPrefs     ChangedInput = "cabin_prefs"
	ChangedRoomPrefs      ChangedInput = "room_prefs"
	ChangedTransferPrefs  ChangedInput = "transfer_prefs"
	ChangedFlightGroups   ChangedInput = "flight_groups"
	ChangedHotelGroups    ChangedInput = "hotel_groups"
	ChangedTransferGroups ChangedInput = "transfer_groups"
)

// affectedBy maps each input to the categories whose match or price depends
// on it. Traveler count and budget reach every category (headcount drives all
// four prices; budget drives the hotel and insurance ceilings and future
// re-matches).
var affectedBy = map[ChangedInput][]models.ComponentType{
	ChangedTravelerCount:  {models.ComponentFlight, models.ComponentHotel, models.ComponentTransfer, models.ComponentInsurance},
	ChangedBudget:         {models.ComponentHotel, models.ComponentInsurance},
	ChangedCabinPrefs:     {models.ComponentFlight},
	ChangedRoomPrefs:      {models.ComponentHotel},
	ChangedTransferPrefs:  {models.ComponentTransfer},
	ChangedFlightGroups:   {models.ComponentFlight},
	ChangedHotelGroups:    {models.ComponentHotel},
	ChangedTransferGroups: {models.ComponentTransfer},
}

// AffectedCategories resolves the set of categories that must be re-matched
// and re-priced for the given edits. An unknown input conservatively
// invalidates everything.
func AffectedCategories(changed []ChangedInput) map[models.ComponentType]bool {
	affected := make(map[models.ComponentType]bool)
	for _, input := range changed {
		categories, ok := affectedBy[input]
		if !ok {
			return map[models.ComponentType]bool{
				models.ComponentFlight:    true,
				models.ComponentHotel:     true,
				models.ComponentTransfer:  true,
				models.ComponentInsurance: true,
			}
		}
		for _, c := range categories {
			affected[c] = true
		}
	}
	return affected
}
