package recommend

import (
	"fmt"

	tripRepo "tripcraft/database/repository/trip"
	"tripcraft/models"
)

// Store maintains the session's component list and its derived total, and
// writes the projection through into the trip-intake document. Every mutation
// path (initial match, alternative swap, manual override) funnels through it,
// so the derived total is always the exact sum of the components.
type Store struct {
	TripRepo tripRepo.TripRepository
}

// SetAll replaces the session's whole component list, recomputes the total
// and writes through.
func (s *Store) SetAll(session *models.QuoteSession, components []models.PackageComponent) error {
	session.Components = components
	recomputeTotal(session)
	return s.writeThrough(session)
}

// ReplaceCategory swaps out every component of one category for freshly
// matched ones, keeping the other categories untouched.
func (s *Store) ReplaceCategory(session *models.QuoteSession, ctype models.ComponentType, components []models.PackageComponent) error {
	kept := session.Components[:0]
	for _, c := range session.Components {
		if c.Type != ctype {
			kept = append(kept, c)
		}
	}
	session.Components = append(kept, components...)
	recomputeTotal(session)
	return s.writeThrough(session)
}

// Replace substitutes a single component in place, matched by ID.
func (s *Store) Replace(session *models.QuoteSession, component models.PackageComponent) error {
	for i, c := range session.Components {
		if c.ID == component.ID {
			session.Components[i] = component
			recomputeTotal(session)
			return s.writeThrough(session)
		}
	}
	return fmt.Errorf("component %s not found in session", component.ID)
}

// recomputeTotal keeps the derived total equal to the sum of component prices.
// The session currency follows the first component; a mixed-currency catalog
// would already have been normalized upstream by the collaborators.
func recomputeTotal(session *models.QuoteSession) {
	total := 0.0
	currency := session.Trip.Budget.Currency
	for i, c := range session.Components {
		total += c.TotalPrice
		if i == 0 && c.Currency != "" {
			currency = c.Currency
		}
	}
	session.TotalPrice = total
	session.Currency = currency
}

// writeThrough pushes the component list and total back into the trip-intake
// document for downstream quote and PDF generation.
func (s *Store) writeThrough(session *models.QuoteSession) error {
	if s.TripRepo == nil || session.Trip.TripID == "" {
		return nil
	}
	if err := s.TripRepo.UpdateComponents(session.Trip.TripID, session.Components, session.TotalPrice, session.Currency); err != nil {
		return fmt.Errorf("failed to write components to trip document: %w", err)
	}
	return nil
}
