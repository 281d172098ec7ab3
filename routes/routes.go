package routes

import (
	"net/http"
	"time"

	"tripcraft/handlers"
	"tripcraft/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes sets up the endpoints for the quote session engine.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	quoteGroup := r.Group("/api/quote")
	{
		quoteGroup.POST("/session", hb.InitiateSession)
		quoteGroup.GET("/session/:sessionID", hb.GetSession)
		quoteGroup.PUT("/session/:sessionID", hb.RecomputeSession)
		quoteGroup.GET("/session/:sessionID/components/:componentID/alternatives", hb.GetAlternatives)
		quoteGroup.GET("/session/:sessionID/components/:componentID/catalog", hb.BrowseOverrides)
		quoteGroup.POST("/session/:sessionID/components/:componentID/override", hb.SelectOverride)
		quoteGroup.DELETE("/session/:sessionID", hb.CancelSession)

		quoteGroup.GET("/session/:sessionID/pdf", hb.ExportQuotePDF)
		quoteGroup.POST("/session/:sessionID/pdf", hb.ArchiveQuotePDF)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterHealthRoute(r)
}
