package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripcraft/config"
	"tripcraft/models"
	"tripcraft/services/inventory"
	"tripcraft/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func sessionTTL() time.Duration {
	minutes := config.AppConfig.QuoteSessionTTLMin
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// InitiateSession aggregates inventory for the trip, runs the initial match
// and price pass, and caches the session in Redis under a fresh session ID.
func (s *DefaultQuoteSessionService) InitiateSession(trip models.TripDetails) (string, *models.QuoteResponse, error) {
	ctx := context.Background()
	logger := utils.GetLogger()
	sessionID := uuid.New().String()

	criteria := inventory.SearchCriteria{
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		DepartureDate: trip.DepartureDate,
		ReturnDate:    trip.ReturnDate,
		Adults:        trip.Adults,
		Children:      trip.Children,
	}
	catalog, current := s.Aggregator.Fetch(ctx, criteria)
	if !current {
		// A newer fetch superseded this one; start from its empty state and
		// let the operator's newer session win.
		logger.Debug("initiate raced a newer inventory fetch", zap.String("sessionID", sessionID))
	}

	session := models.QuoteSession{
		SessionID: sessionID,
		Trip:      trip,
		Catalog:   catalog,
	}

	components, warnings := BuildAll(trip, catalog)
	s.polishReasonings(ctx, components, trip)
	session.Warnings = warnings
	if err := s.Store.SetAll(&session, components); err != nil {
		logger.Warn("trip document write-through failed", zap.Error(err))
	}

	if err := s.saveSession(ctx, &session); err != nil {
		return "", nil, err
	}

	logger.Info("initiated quote session",
		zap.String("sessionID", sessionID),
		zap.Int("components", len(components)))
	resp := toResponse(&session)
	return sessionID, &resp, nil
}

// GetSession retrieves a cached quote session.
func (s *DefaultQuoteSessionService) GetSession(sessionID string) (*models.QuoteSession, error) {
	return s.loadSession(context.Background(), sessionID)
}

// Recompute applies edited trip inputs and re-runs matching and pricing for
// the affected categories only. The store is not consistent until this pass
// completes, so the fresh projection is returned in the same call.
func (s *DefaultQuoteSessionService) Recompute(sessionID string, trip models.TripDetails, changed []ChangedInput) (*models.QuoteResponse, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Trip = trip
	session.Warnings = GroupWarnings(trip)

	affected := AffectedCategories(changed)
	for ctype := range affected {
		fresh := BuildCategory(trip, session.Catalog, ctype)
		s.polishReasonings(ctx, fresh, trip)
		if err := s.Store.ReplaceCategory(session, ctype, fresh); err != nil {
			logger.Warn("trip document write-through failed", zap.Error(err))
		}
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("recomputed quote session",
		zap.String("sessionID", sessionID),
		zap.Int("affectedCategories", len(affected)))
	resp := toResponse(session)
	return &resp, nil
}

// Alternatives returns up to three substitute candidates for a component,
// re-priced for the component's group.
func (s *DefaultQuoteSessionService) Alternatives(sessionID, componentID string) ([]models.QuickAlternative, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	comp, err := findComponent(session, componentID)
	if err != nil {
		return nil, err
	}
	return Alternatives(session.Trip, session.Catalog, *comp), nil
}

// BrowseOverrides exposes the full candidate catalog for a component's type
// with the operator's search, filter and sort settings applied.
func (s *DefaultQuoteSessionService) BrowseOverrides(sessionID, componentID string, query CatalogQuery) ([]CatalogEntry, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	comp, err := findComponent(session, componentID)
	if err != nil {
		return nil, err
	}
	return BrowseCatalog(session.Trip, session.Catalog, *comp, query), nil
}

// SelectOverride replaces a component with the chosen catalog candidate:
// full replace, recomputed price, marked manually chosen. Selecting a quick
// alternative funnels through the same path.
func (s *DefaultQuoteSessionService) SelectOverride(sessionID, componentID, offerID string) (*models.QuoteResponse, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	comp, err := findComponent(session, componentID)
	if err != nil {
		return nil, err
	}

	offer, found := FindOffer(session.Catalog, *comp, offerID)
	if !found {
		return nil, NewMatchError(fmt.Sprintf("offer %s is not in the %s catalog", offerID, comp.Type))
	}

	replaced := ReplaceOffer(session.Trip, *comp, offer)
	if err := s.Store.Replace(session, replaced); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("component overridden",
		zap.String("sessionID", sessionID),
		zap.String("componentID", componentID),
		zap.String("offerID", offerID))
	resp := toResponse(session)
	return &resp, nil
}

// CancelSession deletes the session data from the cache.
func (s *DefaultQuoteSessionService) CancelSession(sessionID string) error {
	cacheClient := utils.GetQuoteCacheClient()
	if err := cacheClient.Del(context.Background(), sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel quote session: %w", err)
	}
	return nil
}

func (s *DefaultQuoteSessionService) loadSession(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	cacheClient := utils.GetQuoteCacheClient()
	sessionData, err := cacheClient.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("quote session not found or expired: %w", err)
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse quote session: %w", err)
	}
	return &session, nil
}

func (s *DefaultQuoteSessionService) saveSession(ctx context.Context, session *models.QuoteSession) error {
	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal quote session: %w", err)
	}
	cacheClient := utils.GetQuoteCacheClient()
	if err := cacheClient.Set(ctx, session.SessionID, sessionData, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store quote session: %w", err)
	}
	return nil
}

// polishReasonings optionally rewrites reasoning copy; failures leave the
// locally generated text in place.
func (s *DefaultQuoteSessionService) polishReasonings(ctx context.Context, components []models.PackageComponent, trip models.TripDetails) {
	if s.Reasoner == nil {
		return
	}
	for i := range components {
		polished, err := s.Reasoner.Polish(ctx, components[i], trip)
		if err != nil || polished == "" {
			continue
		}
		components[i].Reasoning = polished
	}
}

func findComponent(session *models.QuoteSession, componentID string) (*models.PackageComponent, error) {
	for i := range session.Components {
		if session.Components[i].ID == componentID {
			return &session.Components[i], nil
		}
	}
	return nil, NewMatchError(fmt.Sprintf("component %s not found in session %s", componentID, session.SessionID))
}

func toResponse(session *models.QuoteSession) models.QuoteResponse {
	return models.QuoteResponse{
		SessionID:  session.SessionID,
		Components: session.Components,
		TotalPrice: session.TotalPrice,
		Currency:   session.Currency,
		Warnings:   session.Warnings,
	}
}
