package models

import "fmt"

// ComponentType identifies one slot category in a travel package.
type ComponentType string

const (
	ComponentFlight    ComponentType = "flight"
	ComponentHotel     ComponentType = "hotel"
	ComponentTransfer  ComponentType = "transfer"
	ComponentInsurance ComponentType = "insurance"
)

// FlightDirection marks which leg of the trip a flight component covers.
type FlightDirection string

const (
	DirectionOutbound FlightDirection = "outbound"
	DirectionInbound  FlightDirection = "inbound"
)

// OfferRecord is a tagged union over the four candidate categories. Exactly
// one of the pointer fields is set, matching Type. Keeping the concrete offer
// in a tagged envelope lets sessions round-trip through JSON.
type OfferRecord struct {
	Type      ComponentType   `json:"type"`
	Flight    *FlightOffer    `json:"flight,omitempty"`
	Hotel     *HotelOffer     `json:"hotel,omitempty"`
	Transfer  *TransferOffer  `json:"transfer,omitempty"`
	Insurance *InsuranceOffer `json:"insurance,omitempty"`
}

// OfferID returns the underlying candidate's identifier.
func (o OfferRecord) OfferID() string {
	switch o.Type {
	case ComponentFlight:
		return o.Flight.ID
	case ComponentHotel:
		return o.Hotel.ID
	case ComponentTransfer:
		return o.Transfer.ID
	case ComponentInsurance:
		return o.Insurance.ID
	}
	return ""
}

// Title returns a display title for the underlying candidate.
func (o OfferRecord) Title() string {
	switch o.Type {
	case ComponentFlight:
		return fmt.Sprintf("%s %s → %s", o.Flight.Airline, o.Flight.DepartureAirport, o.Flight.ArrivalAirport)
	case ComponentHotel:
		return o.Hotel.Name
	case ComponentTransfer:
		return o.Transfer.VehicleName
	case ComponentInsurance:
		return o.Insurance.Name
	}
	return ""
}

// Currency returns the underlying candidate's currency.
func (o OfferRecord) Currency() string {
	switch o.Type {
	case ComponentFlight:
		return o.Flight.Currency
	case ComponentHotel:
		return o.Hotel.Currency
	case ComponentTransfer:
		return o.Transfer.Currency
	case ComponentInsurance:
		return o.Insurance.Currency
	}
	return ""
}

// Rating returns the candidate's rating where the category has one.
func (o OfferRecord) Rating() float64 {
	switch o.Type {
	case ComponentHotel:
		return o.Hotel.Rating
	case ComponentInsurance:
		return o.Insurance.Rating
	}
	return 0
}

// PackageComponent is one selected slot of the recommended package. TotalPrice
// is always the pricing engine's output for Offer and the traveler set it was
// priced against; it is never edited independently.
type PackageComponent struct {
	ID                    string          `json:"id"`
	Type                  ComponentType   `json:"type"`
	Direction             FlightDirection `json:"direction,omitempty"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	TotalPrice            float64         `json:"totalPrice"`
	Currency              string          `json:"currency"`
	Rating                float64         `json:"rating,omitempty"`
	Reasoning             string          `json:"reasoning"`
	IsSmartRecommendation bool            `json:"isSmartRecommendation"`
	Offer                 OfferRecord     `json:"offer"`
	GroupID               string          `json:"groupId"`
	TravelerIDs           []string        `json:"travelerIds,omitempty"`
}

// SlotKey identifies the component's slot: one per category and group.
func (c PackageComponent) SlotKey() string {
	if c.Direction != "" {
		return fmt.Sprintf("%s:%s:%s", c.Type, c.Direction, c.GroupID)
	}
	return fmt.Sprintf("%s:%s", c.Type, c.GroupID)
}

// QuickAlternative is a lean projection of a candidate component used only by
// the swap UI; it carries no independent lifecycle.
type QuickAlternative struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	TotalPrice float64     `json:"totalPrice"`
	Currency   string      `json:"currency"`
	Offer      OfferRecord `json:"offer"`
}
