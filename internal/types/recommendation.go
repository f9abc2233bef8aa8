package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recommendation is the persisted form of one generated recommendation.
type Recommendation struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_recommendations_user_created;column:user_id" json:"user_id"`
	GameID             uuid.UUID      `gorm:"type:uuid;not null;index;column:game_id" json:"game_id"`
	RecommendationType string         `gorm:"not null;index;column:recommendation_type" json:"recommendation_type"`
	ConfidenceScore    int            `gorm:"column:confidence_score" json:"confidence_score"`
	Reasoning          string         `gorm:"column:reasoning" json:"reasoning"`
	MoodContext        datatypes.JSON `gorm:"column:mood_context" json:"mood_context"`
	IsViewed           bool           `gorm:"not null;default:false;column:is_viewed" json:"is_viewed"`
	IsActedUpon        bool           `gorm:"not null;default:false;column:is_acted_upon" json:"is_acted_upon"`
	CreatedAt          time.Time      `gorm:"not null;default:now();index:idx_recommendations_user_created" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// ScoredRecommendation is the ephemeral, ranked output of the recommendation
// engine for one candidate game.
type ScoredRecommendation struct {
	GameID            uuid.UUID `json:"game_id"`
	Title             string    `json:"title"`
	Score             float64   `json:"score"`
	ConfidenceScore   int       `json:"confidence_score"`
	Reasoning         []string  `json:"reasoning"`
	MoodMatch         float64   `json:"mood_match"`
	WellnessBenefits  []string  `json:"wellness_benefits"`
	SimilarUsersLiked int       `json:"similar_users_liked"`
}

// PeerSimilarity is one row of the peer-affinity lookup: a nearby user and
// how closely their recent mood history tracks the requesting user's.
type PeerSimilarity struct {
	PeerID           uuid.UUID `json:"peer_id"`
	SimilarityWeight float64   `json:"similarity_weight"`
}
