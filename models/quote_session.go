package models

// QuoteSession holds context between inventory aggregation and quote export.
// It is session-scoped: created when the package step mounts, recomputed on
// every traveler or group edit, and discarded when the wizard session ends.
type QuoteSession struct {
	SessionID  string             `json:"sessionId"`
	Trip       TripDetails        `json:"trip"`
	Catalog    Catalog            `json:"catalog"`
	Components []PackageComponent `json:"components"`
	TotalPrice float64            `json:"totalPrice"`
	Currency   string             `json:"currency"`
	Warnings   []Warning          `json:"warnings,omitempty"`
}

// QuoteResponse is the read-path projection handed to the surrounding wizard
// for display and downstream quote/PDF generation.
type QuoteResponse struct {
	SessionID  string             `json:"sessionId,omitempty"`
	Components []PackageComponent `json:"components"`
	TotalPrice float64            `json:"totalPrice"`
	Currency   string             `json:"currency"`
	Warnings   []Warning          `json:"warnings,omitempty"`
}
