package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/services/quote"
	"tripcraft/services/recommend"
	"tripcraft/services/storage"
)

// PDFHandler renders quote documents and optionally archives them.
type PDFHandler struct {
	SessionSvc recommend.QuoteSessionService
	StorageSvc storage.StorageService // optional
}

// NewPDFHandler creates a new PDFHandler instance.
func NewPDFHandler(sessionSvc recommend.QuoteSessionService, storageSvc storage.StorageService) *PDFHandler {
	return &PDFHandler{SessionSvc: sessionSvc, StorageSvc: storageSvc}
}

// ExportQuotePDF renders the current quote session as a PDF and streams it
// back as an attachment.
func (h *PDFHandler) ExportQuotePDF(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	session, err := h.SessionSvc.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		return
	}

	data := quote.PDFData{
		ClientName:  c.Query("clientName"),
		Trip:        session.Trip,
		Components:  session.Components,
		TotalPrice:  session.TotalPrice,
		Currency:    session.Currency,
		AgencyNotes: c.Query("notes"),
	}
	pdfBytes, err := quote.GeneratePDFBytes(data)
	if err != nil {
		logger.Error("Failed to render quote PDF", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render quote PDF", "details": err.Error()})
		return
	}

	filename := fmt.Sprintf("quote-%s.pdf", session.Trip.TripID)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ArchiveQuotePDF renders the quote PDF, uploads it to document storage, and
// returns a time-limited download URL.
func (h *PDFHandler) ArchiveQuotePDF(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "document storage is not configured"})
		return
	}

	session, err := h.SessionSvc.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
		return
	}

	var input struct {
		ClientName  string `json:"clientName"`
		AgencyNotes string `json:"agencyNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	data := quote.PDFData{
		ClientName:  input.ClientName,
		Trip:        session.Trip,
		Components:  session.Components,
		TotalPrice:  session.TotalPrice,
		Currency:    session.Currency,
		AgencyNotes: input.AgencyNotes,
	}
	pdfBytes, err := quote.GeneratePDFBytes(data)
	if err != nil {
		logger.Error("Failed to render quote PDF", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render quote PDF", "details": err.Error()})
		return
	}

	// Cloudinary uploads from a path, so spool the document to a temp file.
	tempFilePath := filepath.Join(os.TempDir(), fmt.Sprintf("quote-%s.pdf", sessionID))
	if err := os.WriteFile(tempFilePath, pdfBytes, 0o600); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to spool quote PDF", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "quotes")
	if err != nil {
		logger.Error("Failed to upload quote PDF", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload quote PDF", "details": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicID":    publicID,
		"downloadURL": downloadURL,
	})
}
