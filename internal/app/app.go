package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gamewell/gamewell-backend/internal/db"
	"github.com/gamewell/gamewell-backend/internal/middleware"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/server"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.DatabaseService
	Redis    *redis.Client
	Repos    Repos
	Services Services
	Handlers Handlers
	Router   *gin.Engine
}

func New(log *logger.Logger) (*App, error) {
	cfg := LoadConfig(log)

	database, err := db.NewDatabaseService(log)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrateAll(); err != nil {
		return nil, err
	}

	rds := newRedisClient(cfg, log)

	repoSet := wireRepos(database.DB(), log)
	serviceSet, err := wireServices(database.DB(), log, cfg, rds, repoSet)
	if err != nil {
		return nil, err
	}
	handlerSet := wireHandlers(log, serviceSet)

	router := server.NewRouter(server.RouterConfig{
		FrontendURL:           cfg.FrontendURL,
		Environment:           cfg.Environment,
		Identity:              middleware.NewIdentityMiddleware(log),
		MoodHandler:           handlerSet.Mood,
		RecommendationHandler: handlerSet.Recommendations,
		GameHandler:           handlerSet.Games,
		SessionHandler:        handlerSet.Sessions,
	})

	return &App{
		Log:      log,
		Cfg:      cfg,
		DB:       database,
		Redis:    rds,
		Repos:    repoSet,
		Services: serviceSet,
		Handlers: handlerSet,
		Router:   router,
	}, nil
}

func (a *App) Run() error {
	addr := ":" + a.Cfg.Port
	a.Log.Info("Starting server", "addr", addr, "environment", a.Cfg.Environment)
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.Warn("closing redis client", "error", err)
		}
	}
	a.Log.Sync()
}
