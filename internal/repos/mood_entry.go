package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type MoodEntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.MoodEntry) ([]*types.MoodEntry, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.MoodEntry, error)
	UpdateAnalysis(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, analysis datatypes.JSON) error
}

type moodEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodEntryRepo(db *gorm.DB, baseLog *logger.Logger) MoodEntryRepo {
	repoLog := baseLog.With("repo", "MoodEntryRepo")
	return &moodEntryRepo{db: db, log: repoLog}
}

func (mr *moodEntryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.MoodEntry) ([]*types.MoodEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(entries) == 0 {
		return []*types.MoodEntry{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (mr *moodEntryRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.MoodEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if limit <= 0 {
		limit = 50
	}

	var results []*types.MoodEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *moodEntryRepo) UpdateAnalysis(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, analysis datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.MoodEntry{}).
		Where("id = ?", entryID).
		Update("ai_analysis", analysis).Error
}
