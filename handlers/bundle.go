package handlers

import (
	tripRepoPkg "tripcraft/database/repository/trip"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	TripRepo tripRepoPkg.TripRepository

	// Quote session endpoints
	InitiateSession  gin.HandlerFunc
	GetSession       gin.HandlerFunc
	RecomputeSession gin.HandlerFunc
	GetAlternatives  gin.HandlerFunc
	BrowseOverrides  gin.HandlerFunc
	SelectOverride   gin.HandlerFunc
	CancelSession    gin.HandlerFunc

	// Quote document endpoints
	ExportQuotePDF  gin.HandlerFunc
	ArchiveQuotePDF gin.HandlerFunc
}
