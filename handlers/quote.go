package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/models"
	"tripcraft/services/recommend"
)

// QuoteHandler exposes the quote session engine over HTTP.
type QuoteHandler struct {
	SessionSvc recommend.QuoteSessionService
}

// NewQuoteHandler creates a new QuoteHandler instance.
func NewQuoteHandler(svc recommend.QuoteSessionService) *QuoteHandler {
	return &QuoteHandler{SessionSvc: svc}
}

// InitiateSession starts a new quote session from the trip details captured
// by the wizard and returns the recommended package components.
func (h *QuoteHandler) InitiateSession(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Trip models.TripDetails `json:"trip"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Trip.Origin == "" || input.Trip.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
		return
	}

	sessionID, resp, err := h.SessionSvc.InitiateSession(input.Trip)
	if err != nil {
		logger.Error("Failed to initiate quote session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate quote session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"quote":     resp,
	})
}

// GetSession returns the current state of a quote session.
func (h *QuoteHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, err := h.SessionSvc.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// RecomputeSession re-runs recommendation for the categories affected by the
// operator's latest edits and returns the refreshed quote.
func (h *QuoteHandler) RecomputeSession(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var input struct {
		Trip    models.TripDetails       `json:"trip"`
		Changed []recommend.ChangedInput `json:"changed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.SessionSvc.Recompute(sessionID, input.Trip, input.Changed)
	if err != nil {
		var matchErr *recommend.MatchError
		if errors.As(err, &matchErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": matchErr.Message})
			return
		}
		logger.Error("Failed to recompute quote session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recompute quote", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAlternatives returns up to three quick swap candidates for a component.
func (h *QuoteHandler) GetAlternatives(c *gin.Context) {
	sessionID := c.Param("sessionID")
	componentID := c.Param("componentID")

	alts, err := h.SessionSvc.Alternatives(sessionID, componentID)
	if err != nil {
		var matchErr *recommend.MatchError
		if errors.As(err, &matchErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": matchErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alternatives", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": alts})
}

// BrowseOverrides returns the filterable override catalog for a component.
func (h *QuoteHandler) BrowseOverrides(c *gin.Context) {
	sessionID := c.Param("sessionID")
	componentID := c.Param("componentID")

	query := recommend.CatalogQuery{
		Search:    c.Query("search"),
		PriceTier: c.DefaultQuery("priceTier", recommend.TierAll),
		SortBy:    c.DefaultQuery("sortBy", recommend.SortByPrice),
		SortOrder: c.DefaultQuery("sortOrder", recommend.OrderAsc),
	}

	entries, err := h.SessionSvc.BrowseOverrides(sessionID, componentID, query)
	if err != nil {
		var matchErr *recommend.MatchError
		if errors.As(err, &matchErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": matchErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to browse override catalog", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// SelectOverride replaces a component's offer with one the operator picked
// from the catalog and returns the re-totaled quote.
func (h *QuoteHandler) SelectOverride(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")
	componentID := c.Param("componentID")

	var input struct {
		OfferID string `json:"offerID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.OfferID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offerID is required"})
		return
	}

	resp, err := h.SessionSvc.SelectOverride(sessionID, componentID, input.OfferID)
	if err != nil {
		var matchErr *recommend.MatchError
		if errors.As(err, &matchErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": matchErr.Message})
			return
		}
		logger.Error("Failed to select override", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select override", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelSession discards the quote session.
func (h *QuoteHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if err := h.SessionSvc.CancelSession(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel quote session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
