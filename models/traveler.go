package models

// TravelerKind distinguishes adults from children for counting and pricing.
type TravelerKind string

const (
	TravelerAdult TravelerKind = "adult"
	TravelerChild TravelerKind = "child"
)

// Cabin classes accepted as flight preferences.
const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"
)

// Room types accepted as hotel preferences.
const (
	RoomShared = "shared"
	RoomSingle = "single"
	RoomSuite  = "suite"
)

// Transfer exclusivity preferences.
const (
	TransferShared  = "shared"
	TransferPrivate = "private"
)

// TravelerPreferences holds per-traveler upgrade choices. Empty fields mean
// no individual preference for that booking type.
type TravelerPreferences struct {
	CabinClass   string `bson:"cabinClass,omitempty" json:"cabinClass,omitempty"`
	RoomType     string `bson:"roomType,omitempty" json:"roomType,omitempty"`
	TransferType string `bson:"transferType,omitempty" json:"transferType,omitempty"`
}

// Traveler is an individually modeled trip participant.
type Traveler struct {
	ID               string                 `bson:"id" json:"id"`
	Name             string                 `bson:"name" json:"name"`
	Kind             TravelerKind           `bson:"kind" json:"kind"`
	Preferences      TravelerPreferences    `bson:"preferences" json:"preferences"`
	GroupAssignments map[BookingType]string `bson:"groupAssignments,omitempty" json:"groupAssignments,omitempty"`
}

// BookingType identifies which inventory category a traveler group applies to.
type BookingType string

const (
	BookingFlight   BookingType = "flight"
	BookingHotel    BookingType = "hotel"
	BookingTransfer BookingType = "transfer"
)

// TravelerGroup is an explicit operator-defined grouping of travelers for one
// booking type. A traveler may belong to at most one group per booking type.
type TravelerGroup struct {
	ID          string              `bson:"id" json:"id"`
	Name        string              `bson:"name" json:"name"`
	BookingType BookingType         `bson:"bookingType" json:"bookingType"`
	MemberIDs   []string            `bson:"memberIds" json:"memberIds"`
	Preferences TravelerPreferences `bson:"preferences" json:"preferences"`
}
