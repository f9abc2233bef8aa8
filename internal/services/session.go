package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/gamewell/gamewell-backend/internal/pkg/errors"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/repos"
	"github.com/gamewell/gamewell-backend/internal/types"
)

// GameSessionInput is one logged play session.
type GameSessionInput struct {
	GameID          uuid.UUID  `json:"game_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationMinutes int        `json:"duration_minutes"`
	MoodBefore      int        `json:"mood_before"`
	MoodAfter       int        `json:"mood_after"`
	EnjoymentRating int        `json:"enjoyment_rating"`
	Notes           string     `json:"notes"`
}

type SessionService interface {
	LogSession(ctx context.Context, userID uuid.UUID, input GameSessionInput) (*types.GameSession, error)
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*types.GameSession, error)
}

type sessionService struct {
	db       *gorm.DB
	log      *logger.Logger
	sessions repos.GameSessionRepo
}

func NewSessionService(db *gorm.DB, baseLog *logger.Logger, sessions repos.GameSessionRepo) SessionService {
	serviceLog := baseLog.With("service", "SessionService")
	return &sessionService{db: db, log: serviceLog, sessions: sessions}
}

func (ss *sessionService) LogSession(ctx context.Context, userID uuid.UUID, input GameSessionInput) (*types.GameSession, error) {
	if input.GameID == uuid.Nil {
		return nil, fmt.Errorf("game_id is required: %w", pkgerrors.ErrInvalidArgument)
	}
	if input.StartedAt.IsZero() {
		return nil, fmt.Errorf("started_at is required: %w", pkgerrors.ErrInvalidArgument)
	}

	session := &types.GameSession{
		UserID:          userID,
		GameID:          input.GameID,
		StartedAt:       input.StartedAt,
		EndedAt:         input.EndedAt,
		DurationMinutes: input.DurationMinutes,
		MoodBefore:      input.MoodBefore,
		MoodAfter:       input.MoodAfter,
		EnjoymentRating: input.EnjoymentRating,
		Notes:           input.Notes,
	}

	created, err := ss.sessions.Create(ctx, nil, []*types.GameSession{session})
	if err != nil {
		return nil, fmt.Errorf("log game session: %w", err)
	}
	return created[0], nil
}

func (ss *sessionService) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*types.GameSession, error) {
	return ss.sessions.ListRecentByUser(ctx, nil, userID, limit)
}
