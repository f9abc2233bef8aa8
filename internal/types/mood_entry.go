package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodEntry struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_mood_entries_user_created;column:user_id" json:"user_id"`
	EnergyLevel      int            `gorm:"not null;column:energy_level" json:"energy_level"`
	StressLevel      int            `gorm:"not null;column:stress_level" json:"stress_level"`
	FocusLevel       int            `gorm:"not null;column:focus_level" json:"focus_level"`
	SocialDesire     int            `gorm:"not null;column:social_desire" json:"social_desire"`
	ChallengeSeeking int            `gorm:"not null;column:challenge_seeking" json:"challenge_seeking"`
	TextDescription  string         `gorm:"column:text_description" json:"text_description"`
	AIAnalysis       datatypes.JSON `gorm:"column:ai_analysis" json:"ai_analysis"`
	TimeContext      string         `gorm:"column:time_context" json:"time_context"`
	CreatedAt        time.Time      `gorm:"not null;default:now();index:idx_mood_entries_user_created" json:"created_at"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// Sliders returns the entry's five mood dimensions as a value object.
func (m *MoodEntry) Sliders() MoodSliders {
	return MoodSliders{
		EnergyLevel:      m.EnergyLevel,
		StressLevel:      m.StressLevel,
		FocusLevel:       m.FocusLevel,
		SocialDesire:     m.SocialDesire,
		ChallengeSeeking: m.ChallengeSeeking,
	}
}
