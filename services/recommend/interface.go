package recommend

import (
	"context"

	"tripcraft/models"
	"tripcraft/services/inventory"
)

// QuoteSessionService defines the interface for managing a stateful quote
// session across the package-components wizard step.
type QuoteSessionService interface {
	InitiateSession(trip models.TripDetails) (string, *models.QuoteResponse, error)
	GetSession(sessionID string) (*models.QuoteSession, error)
	Recompute(sessionID string, trip models.TripDetails, changed []ChangedInput) (*models.QuoteResponse, error)
	Alternatives(sessionID, componentID string) ([]models.QuickAlternative, error)
	BrowseOverrides(sessionID, componentID string, query CatalogQuery) ([]CatalogEntry, error)
	SelectOverride(sessionID, componentID, offerID string) (*models.QuoteResponse, error)
	CancelSession(sessionID string) error
}

// ReasoningPolisher rewrites a component's reasoning copy. Implementations
// are best-effort: on error the locally generated reasoning stands.
type ReasoningPolisher interface {
	Polish(ctx context.Context, comp models.PackageComponent, trip models.TripDetails) (string, error)
}

// DefaultQuoteSessionService implements QuoteSessionService.
type DefaultQuoteSessionService struct {
	Aggregator *inventory.Aggregator
	Store      *Store
	Reasoner   ReasoningPolisher // optional
}
