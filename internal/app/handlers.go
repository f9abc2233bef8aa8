package app

import (
	"github.com/gamewell/gamewell-backend/internal/handlers"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
)

type Handlers struct {
	Mood            *handlers.MoodHandler
	Recommendations *handlers.RecommendationHandler
	Games           *handlers.GameHandler
	Sessions        *handlers.SessionHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	return Handlers{
		Mood:            handlers.NewMoodHandler(log, s.Mood, s.MoodAnalysis),
		Recommendations: handlers.NewRecommendationHandler(log, s.Recommendations),
		Games:           handlers.NewGameHandler(log, s.Games),
		Sessions:        handlers.NewSessionHandler(log, s.Sessions),
	}
}
