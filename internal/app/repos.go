package app

import (
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/repos"
	"gorm.io/gorm"
)

type Repos struct {
	Users           repos.UserRepo
	Games           repos.GameRepo
	Sessions        repos.GameSessionRepo
	MoodEntries     repos.MoodEntryRepo
	Peers           repos.PeerRepo
	Recommendations repos.RecommendationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Users:           repos.NewUserRepo(db, log),
		Games:           repos.NewGameRepo(db, log),
		Sessions:        repos.NewGameSessionRepo(db, log),
		MoodEntries:     repos.NewMoodEntryRepo(db, log),
		Peers:           repos.NewPeerRepo(db, log),
		Recommendations: repos.NewRecommendationRepo(db, log),
	}
}
