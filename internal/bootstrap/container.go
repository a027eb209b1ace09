package bootstrap

import (
	"matcha-match-be/internal/config"
	"matcha-match-be/internal/controller"
	"matcha-match-be/internal/pkg/logger"
	"matcha-match-be/internal/repository/memory"
	"matcha-match-be/internal/repository/unitofwork"
	"matcha-match-be/internal/service"
	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/llm/ollama"
	"matcha-match-be/pkg/location"
	"matcha-match-be/pkg/match"
	"matcha-match-be/pkg/places"
	"matcha-match-be/pkg/sentiment"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	PlacesController controller.IPlacesController

	// Exposed for the server's error middleware
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	llmLogger := logger.NewIsolatedLogger(cfg.App.LLMLogFilePath)

	// 2. Collaborators
	llmProvider := ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	analyzer := sentiment.NewAnalyzer(llmProvider)

	placeholderBase := cfg.App.BaseURL + "/api/ai/placeholder"
	placesClient := places.NewClient(cfg.Keys.GooglePlaces, placeholderBase)
	if !placesClient.HasAPIKey() {
		sysLogger.Warn("bootstrap", "no places API key configured, serving mock venues", nil)
	}

	resolver := location.NewResolver()
	ranker := match.NewRanker()
	sentimentCache := memory.NewSentimentCacheRepository()

	defaultOrigin := geo.Coordinates{Lat: cfg.Search.DefaultLat, Lng: cfg.Search.DefaultLng}

	// 3. Services
	chatService := service.NewChatService(
		uowFactory,
		analyzer,
		llmProvider,
		placesClient,
		resolver,
		ranker,
		sentimentCache,
		sysLogger,
		llmLogger,
		defaultOrigin,
		cfg.Search.RadiusMeters,
	)

	placesService := service.NewPlacesService(
		placesClient,
		sentimentCache,
		sysLogger,
		defaultOrigin,
		cfg.Search.RadiusMeters,
	)

	// 4. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		PlacesController: controller.NewPlacesController(placesService),
		Logger:           sysLogger,
	}
}
