package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/services"
)

type Services struct {
	MoodAnalysis    services.MoodAnalysisService
	Mood            services.MoodService
	Games           services.GameService
	Sessions        services.SessionService
	Recommendations services.RecommendationService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, rds *redis.Client, r Repos) (Services, error) {
	scoring, err := services.LoadScoringConfig(cfg.ScoringConfigPath, log)
	if err != nil {
		return Services{}, err
	}

	var cache services.RecommendationCache
	if rds != nil {
		cache = services.NewRedisRecommendationCache(rds, log)
	}

	analyzer := services.NewMoodAnalysisService(log, scoring)
	return Services{
		MoodAnalysis: analyzer,
		Mood:         services.NewMoodService(db, log, r.MoodEntries, analyzer),
		Games:        services.NewGameService(db, log, r.Games),
		Sessions:     services.NewSessionService(db, log, r.Sessions),
		Recommendations: services.NewRecommendationService(
			db, log,
			r.Users, r.Games, r.Sessions, r.Peers, r.Recommendations,
			cache, cfg.RecCacheTTL, scoring,
		),
	}, nil
}
