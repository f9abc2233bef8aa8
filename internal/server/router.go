package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/gamewell/gamewell-backend/internal/handlers"
	"github.com/gamewell/gamewell-backend/internal/middleware"
)

type RouterConfig struct {
	FrontendURL           string
	Environment           string
	Identity              *middleware.IdentityMiddleware
	MoodHandler           *handlers.MoodHandler
	RecommendationHandler *handlers.RecommendationHandler
	GameHandler           *handlers.GameHandler
	SessionHandler        *handlers.SessionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("gamewell-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			cfg.FrontendURL,
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-User-ID"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck(cfg.Environment))

	api := router.Group("/api")
	{
		// Game catalog is browsable without identity.
		api.GET("/games", cfg.GameHandler.List)
		api.GET("/games/:id", cfg.GameHandler.Get)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("")
	protected.Use(cfg.Identity.RequireUser())
	// Moods
	protected.POST("/moods", cfg.MoodHandler.CreateEntry)
	protected.GET("/moods", cfg.MoodHandler.ListEntries)
	// AI
	protected.POST("/ai/mood-analysis", cfg.MoodHandler.AnalyzeText)
	protected.POST("/ai/mood-insights", cfg.MoodHandler.SliderInsights)
	// Recommendations
	protected.POST("/recommendations/generate", cfg.RecommendationHandler.Generate)
	protected.GET("/recommendations", cfg.RecommendationHandler.ListRecent)
	// Sessions
	protected.POST("/sessions", cfg.SessionHandler.Log)
	protected.GET("/sessions", cfg.SessionHandler.List)

	return router
}
