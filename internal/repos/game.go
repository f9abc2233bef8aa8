package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/gamewell/gamewell-backend/internal/pkg/errors"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type GameRepo interface {
	Create(ctx context.Context, tx *gorm.DB, games []*types.Game) ([]*types.Game, error)
	GetByID(ctx context.Context, tx *gorm.DB, gameID uuid.UUID) (*types.Game, error)
	// ListActive returns up to limit active catalog entries in stable
	// insertion order. The finer mood/preference narrowing happens in the
	// recommendation engine, which needs the pre-narrowing pool for its
	// empty-pool fallback.
	ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Game, error)
}

type gameRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGameRepo(db *gorm.DB, baseLog *logger.Logger) GameRepo {
	repoLog := baseLog.With("repo", "GameRepo")
	return &gameRepo{db: db, log: repoLog}
}

func (gr *gameRepo) Create(ctx context.Context, tx *gorm.DB, games []*types.Game) ([]*types.Game, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(games) == 0 {
		return []*types.Game{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (gr *gameRepo) GetByID(ctx context.Context, tx *gorm.DB, gameID uuid.UUID) (*types.Game, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var result types.Game
	if err := transaction.WithContext(ctx).
		Where("id = ?", gameID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %s: %w", gameID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (gr *gameRepo) ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Game, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*types.Game
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
