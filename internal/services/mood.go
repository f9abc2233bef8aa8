package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/repos"
	"github.com/gamewell/gamewell-backend/internal/types"
)

// MoodEntryInput is the caller-supplied part of one mood check-in.
type MoodEntryInput struct {
	Sliders         types.MoodSliders `json:"sliders"`
	TextDescription string            `json:"text_description"`
	TimeContext     string            `json:"time_context"`
}

type MoodService interface {
	// CreateEntry persists a mood check-in. When the entry carries a text
	// description, the analyzer result is stored alongside it in the
	// ai_analysis column.
	CreateEntry(ctx context.Context, userID uuid.UUID, input MoodEntryInput) (*types.MoodEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error)
}

type moodService struct {
	db       *gorm.DB
	log      *logger.Logger
	entries  repos.MoodEntryRepo
	analyzer MoodAnalysisService
}

func NewMoodService(db *gorm.DB, baseLog *logger.Logger, entries repos.MoodEntryRepo, analyzer MoodAnalysisService) MoodService {
	serviceLog := baseLog.With("service", "MoodService")
	return &moodService{
		db:       db,
		log:      serviceLog,
		entries:  entries,
		analyzer: analyzer,
	}
}

func (ms *moodService) CreateEntry(ctx context.Context, userID uuid.UUID, input MoodEntryInput) (*types.MoodEntry, error) {
	sliders := input.Sliders.Clamped()

	entry := &types.MoodEntry{
		UserID:           userID,
		EnergyLevel:      sliders.EnergyLevel,
		StressLevel:      sliders.StressLevel,
		FocusLevel:       sliders.FocusLevel,
		SocialDesire:     sliders.SocialDesire,
		ChallengeSeeking: sliders.ChallengeSeeking,
		TextDescription:  input.TextDescription,
		TimeContext:      input.TimeContext,
	}

	if input.TextDescription != "" {
		analysis := ms.analyzer.AnalyzeMoodFromText(input.TextDescription)
		raw, err := json.Marshal(analysis)
		if err != nil {
			ms.log.Warn("Failed to encode mood analysis, storing entry without it", "error", err)
		} else {
			entry.AIAnalysis = raw
		}
	}

	created, err := ms.entries.Create(ctx, nil, []*types.MoodEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("create mood entry: %w", err)
	}
	return created[0], nil
}

func (ms *moodService) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error) {
	return ms.entries.ListByUser(ctx, nil, userID, limit)
}
