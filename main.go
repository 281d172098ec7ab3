package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripcraft/config"
	"tripcraft/database"
	tripRepoPkg "tripcraft/database/repository/trip"
	"tripcraft/handlers"
	"tripcraft/middleware"
	"tripcraft/routes"
	ai "tripcraft/services/intelligence"
	"tripcraft/services/inventory"
	"tripcraft/services/recommend"
	"tripcraft/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; environment variables may be set directly.
	_ = godotenv.Load()

	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Document storage is optional; quote PDF archiving is disabled without it.
	storageSvc, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tripRepo := tripRepoPkg.NewMongoTripRepo()

	// inventory collaborators. One Amadeus client serves both flights and hotels.
	amadeus := inventory.NewAmadeusClient()
	aggregator := inventory.NewAggregator(
		amadeus,
		amadeus,
		inventory.NewTransferAPIClient(),
		inventory.NewInsuranceAPIClient(),
		logger,
	)

	// Reasoning enrichment is optional; local reasoning copy stands without it.
	var reasoner recommend.ReasoningPolisher
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiReasoner, err := ai.NewGeminiReasoner(key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini reasoner disabled: %v", err)
		} else {
			reasoner = geminiReasoner
		}
	}

	sessionSvc := &recommend.DefaultQuoteSessionService{
		Aggregator: aggregator,
		Store:      &recommend.Store{TripRepo: tripRepo},
		Reasoner:   reasoner,
	}

	quoteHandler := handlers.NewQuoteHandler(sessionSvc)
	pdfHandler := handlers.NewPDFHandler(sessionSvc, storageSvc)

	handlerBundle := &handlers.HandlerBundle{
		TripRepo: tripRepo,

		InitiateSession:  quoteHandler.InitiateSession,
		GetSession:       quoteHandler.GetSession,
		RecomputeSession: quoteHandler.RecomputeSession,
		GetAlternatives:  quoteHandler.GetAlternatives,
		BrowseOverrides:  quoteHandler.BrowseOverrides,
		SelectOverride:   quoteHandler.SelectOverride,
		CancelSession:    quoteHandler.CancelSession,

		ExportQuotePDF:  pdfHandler.ExportQuotePDF,
		ArchiveQuotePDF: pdfHandler.ArchiveQuotePDF,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetQuoteCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
