package types

import (
	"time"

	"github.com/google/uuid"
)

type GameSession struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_game_sessions_user_started;column:user_id" json:"user_id"`
	GameID          uuid.UUID  `gorm:"type:uuid;not null;index;column:game_id" json:"game_id"`
	StartedAt       time.Time  `gorm:"not null;index:idx_game_sessions_user_started;column:started_at" json:"started_at"`
	EndedAt         *time.Time `gorm:"column:ended_at" json:"ended_at,omitempty"`
	DurationMinutes int        `gorm:"column:duration_minutes" json:"duration_minutes"`
	MoodBefore      int        `gorm:"column:mood_before" json:"mood_before"`
	MoodAfter       int        `gorm:"column:mood_after" json:"mood_after"`
	EnjoymentRating int        `gorm:"column:enjoyment_rating" json:"enjoyment_rating"`
	Notes           string     `gorm:"column:notes" json:"notes"`
	CreatedAt       time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}
