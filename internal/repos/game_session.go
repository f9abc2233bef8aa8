package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type GameSessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*types.GameSession) ([]*types.GameSession, error)
	// ListRecentByUser returns the user's most recent sessions, newest first.
	ListRecentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.GameSession, error)
}

type gameSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGameSessionRepo(db *gorm.DB, baseLog *logger.Logger) GameSessionRepo {
	repoLog := baseLog.With("repo", "GameSessionRepo")
	return &gameSessionRepo{db: db, log: repoLog}
}

func (sr *gameSessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.GameSession) ([]*types.GameSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(sessions) == 0 {
		return []*types.GameSession{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (sr *gameSessionRepo) ListRecentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.GameSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*types.GameSession
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
