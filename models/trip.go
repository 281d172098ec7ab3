package models

import "time"

// Budget is the trip-level spending envelope the matching ceilings derive from.
type Budget struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

// TripDetails is the slice of the trip-intake document the recommendation
// engine reads. The engine treats these fields as inputs only; their schema is
// owned by the surrounding wizard.
type TripDetails struct {
	TripID        string          `bson:"tripId" json:"tripId"`
	Origin        string          `bson:"origin" json:"origin"`           // IATA code
	Destination   string          `bson:"destination" json:"destination"` // IATA code
	DepartureDate string          `bson:"departureDate" json:"departureDate"` // YYYY-MM-DD
	ReturnDate    string          `bson:"returnDate" json:"returnDate"`
	Nights        int             `bson:"nights" json:"nights"`
	Budget        Budget          `bson:"budget" json:"budget"`
	Adults        int             `bson:"adults" json:"adults"`
	Children      int             `bson:"children" json:"children"`
	Travelers     []Traveler      `bson:"travelers,omitempty" json:"travelers,omitempty"`
	Groups        []TravelerGroup `bson:"groups,omitempty" json:"groups,omitempty"`
}

// TotalTravelers returns the trip-level headcount.
func (t TripDetails) TotalTravelers() int {
	return t.Adults + t.Children
}

// TripIntake is the persisted trip-intake document. The recommendation store
// writes the selected components and running total back into it so downstream
// consumers (quote display, PDF export) read a consistent projection.
type TripIntake struct {
	ID         string             `bson:"id" json:"id"`
	Details    TripDetails        `bson:"details" json:"details"`
	Components []PackageComponent `bson:"components,omitempty" json:"components,omitempty"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	Currency   string             `bson:"currency" json:"currency"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Warning is a non-fatal condition surfaced to the operator, such as group
// sizes not summing to the trip's traveler count.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarnGroupSizeMismatch = "group_size_mismatch"
)
