package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/repos"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type GameService interface {
	ListGames(ctx context.Context, limit int) ([]*types.Game, error)
	GetGame(ctx context.Context, gameID uuid.UUID) (*types.Game, error)
}

type gameService struct {
	db    *gorm.DB
	log   *logger.Logger
	games repos.GameRepo
}

func NewGameService(db *gorm.DB, baseLog *logger.Logger, games repos.GameRepo) GameService {
	serviceLog := baseLog.With("service", "GameService")
	return &gameService{db: db, log: serviceLog, games: games}
}

func (gs *gameService) ListGames(ctx context.Context, limit int) ([]*types.Game, error) {
	return gs.games.ListActive(ctx, nil, limit)
}

func (gs *gameService) GetGame(ctx context.Context, gameID uuid.UUID) (*types.Game, error) {
	return gs.games.GetByID(ctx, nil, gameID)
}
