package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserPreferences mirrors the jsonb preferences column. All fields are
// optional; scoring treats missing values as neutral.
type UserPreferences struct {
	PreferredPlatforms     []string `json:"preferred_platforms,omitempty"`
	FavoriteGenres         []string `json:"favorite_genres,omitempty"`
	PreferredSessionLength int      `json:"preferred_session_length,omitempty"`
}

// AccessibilitySettings mirrors the jsonb accessibility_settings column.
type AccessibilitySettings struct {
	ColorblindSupport bool `json:"colorblind_support,omitempty"`
	ReducedMotion     bool `json:"reduced_motion,omitempty"`
	HighContrast      bool `json:"high_contrast,omitempty"`
	ScreenReader      bool `json:"screen_reader,omitempty"`
	OneHandedControls bool `json:"one_handed_controls,omitempty"`
	SubtitleRequired  bool `json:"subtitle_required,omitempty"`
}

type User struct {
	ID                    uuid.UUID                                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email                 string                                    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	DisplayName           string                                    `gorm:"not null;column:display_name" json:"display_name"`
	AvatarURL             string                                    `gorm:"column:avatar_url" json:"avatar_url"`
	Preferences           datatypes.JSONType[UserPreferences]       `gorm:"column:preferences" json:"preferences"`
	AccessibilitySettings datatypes.JSONType[AccessibilitySettings] `gorm:"column:accessibility_settings" json:"accessibility_settings"`
	WellnessStreak        int                                       `gorm:"not null;default:0;column:wellness_streak" json:"wellness_streak"`
	TotalWellnessScore    int                                       `gorm:"not null;default:0;column:total_wellness_score" json:"total_wellness_score"`
	CreatedAt             time.Time                                 `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time                                 `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
