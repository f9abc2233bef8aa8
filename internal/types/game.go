package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Game struct {
	ID                    uuid.UUID                    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title                 string                       `gorm:"not null;index;column:title" json:"title"`
	Description           string                       `gorm:"column:description" json:"description"`
	Genres                datatypes.JSONSlice[string]  `gorm:"not null;column:genres" json:"genres"`
	Platforms             datatypes.JSONSlice[string]  `gorm:"not null;column:platforms" json:"platforms"`
	MoodTags              datatypes.JSONSlice[string]  `gorm:"not null;column:mood_tags" json:"mood_tags"`
	IdealEnergyMin        int                          `gorm:"not null;default:1;column:ideal_energy_min" json:"ideal_energy_min"`
	IdealEnergyMax        int                          `gorm:"not null;default:10;column:ideal_energy_max" json:"ideal_energy_max"`
	StressCompatibility   int                          `gorm:"not null;default:5;column:stress_compatibility" json:"stress_compatibility"`
	SessionLengthMinutes  int                          `gorm:"not null;default:30;column:session_length_minutes" json:"session_length_minutes"`
	AccessibilityFeatures datatypes.JSONSlice[string]  `gorm:"column:accessibility_features" json:"accessibility_features"`
	WellnessRating        int                          `gorm:"not null;default:5;index;column:wellness_rating" json:"wellness_rating"`
	ImageURL              string                       `gorm:"column:image_url" json:"image_url"`
	PriceRange            string                       `gorm:"column:price_range" json:"price_range"`
	IsActive              bool                         `gorm:"not null;default:true;index;column:is_active" json:"is_active"`
	CreatedAt             time.Time                    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time                    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}

func (g *Game) HasGenre(genre string) bool {
	for _, candidate := range g.Genres {
		if candidate == genre {
			return true
		}
	}
	return false
}

func (g *Game) HasAccessibilityFeature(feature string) bool {
	for _, candidate := range g.AccessibilityFeatures {
		if candidate == feature {
			return true
		}
	}
	return false
}
