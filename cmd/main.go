package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/adapters"
	"github.com/remwaste/accent-analyzer/server/adapters/media"
	"github.com/remwaste/accent-analyzer/server/adapters/mongo"
	"github.com/remwaste/accent-analyzer/server/adapters/speech"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
	"github.com/remwaste/accent-analyzer/server/internal/api"
	"github.com/remwaste/accent-analyzer/server/internal/websocket"
	"github.com/remwaste/accent-analyzer/server/usecase"
)

func main() {
	// Load .env if present; real deployments set variables directly
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize adapters
	extractor := media.NewExtractor(media.NewExtractorConfigFromEnv(), logger)
	analyzer := buildSpeechAnalyzer(logger)
	analysisRepo, cleanup := buildAnalysisRepository(logger)
	defer cleanup()

	// Initialize WebSocket hub for progress events
	hub := websocket.NewHub(logger)
	go hub.Run()

	// Initialize usecase services
	analysisService := usecase.NewAnalysisService(extractor, analyzer, analysisRepo, hub, logger)

	// Initialize API routes
	api.InitRoutes(e, analysisService, hub, logger)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildSpeechAnalyzer selects the recognition backend via SPEECH_BACKEND.
// Azure is the default; "google" and "mock" are alternatives.
func buildSpeechAnalyzer(logger *zap.Logger) repositories.SpeechAnalyzer {
	backend := os.Getenv("SPEECH_BACKEND")
	switch backend {
	case "google":
		return speech.NewGoogleSpeechAnalyzer(speech.CandidateLocalesFromEnv(), logger)
	case "mock":
		logger.Warn("Using mock speech analyzer, recognition results are canned")
		return speech.NewMockSpeechAnalyzer(logger)
	default:
		config := speech.NewAzureSpeechConfigFromEnv()
		analyzer, err := speech.NewAzureSpeechAnalyzer(config, logger)
		if err != nil {
			logger.Warn("Azure speech not configured, falling back to mock analyzer", zap.Error(err))
			return speech.NewMockSpeechAnalyzer(logger)
		}
		return analyzer
	}
}

// buildAnalysisRepository uses MongoDB when MONGODB_URI is set and an
// in-memory store otherwise. The returned cleanup closes the connection.
func buildAnalysisRepository(logger *zap.Logger) (repositories.AnalysisRepository, func()) {
	if os.Getenv("MONGODB_URI") == "" {
		logger.Info("MONGODB_URI not set, using in-memory analysis store")
		return adapters.NewMemoryAnalysisRepository(), func() {}
	}

	client, err := mongo.NewClient(logger)
	if err != nil {
		logger.Warn("MongoDB connection failed, using in-memory analysis store", zap.Error(err))
		return adapters.NewMemoryAnalysisRepository(), func() {}
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	}
	return mongo.NewAnalysisRepository(client.Database), cleanup
}
