package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

// PeerRepo is the peer-affinity lookup behind the recommendation engine's
// "similar users" factor. An empty result means "no peer data" and the engine
// falls back to a neutral sub-score.
type PeerRepo interface {
	SimilarUsers(ctx context.Context, tx *gorm.DB, userID uuid.UUID, mood types.MoodSliders) ([]types.PeerSimilarity, error)
}

type peerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPeerRepo(db *gorm.DB, baseLog *logger.Logger) PeerRepo {
	repoLog := baseLog.With("repo", "PeerRepo")
	return &peerRepo{db: db, log: repoLog}
}

const similarUsersQuery = `
SELECT
  u.id AS peer_id,
  (AVG(CASE WHEN me.energy_level BETWEEN ? AND ? THEN 1.0 ELSE 0.0 END) +
   AVG(CASE WHEN me.stress_level BETWEEN ? AND ? THEN 1.0 ELSE 0.0 END) +
   AVG(CASE WHEN me.focus_level  BETWEEN ? AND ? THEN 1.0 ELSE 0.0 END)) / 3.0 AS similarity_weight
FROM users u
JOIN mood_entries me ON me.user_id = u.id
WHERE u.id <> ?
  AND me.created_at >= ?
GROUP BY u.id
HAVING COUNT(me.id) >= 5
  AND (AVG(CASE WHEN me.energy_level BETWEEN ? AND ? THEN 1.0 ELSE 0.0 END) +
       AVG(CASE WHEN me.stress_level BETWEEN ? AND ? THEN 1.0 ELSE 0.0 END) +
       AVG(CASE WHEN me.focus_level  BETWEEN ? AND ? THEN 1.0 ELSE 0.0 END)) / 3.0 > 0.6
ORDER BY 2 DESC
LIMIT 20
`

// SimilarUsers finds users whose mood check-ins over the last 30 days sit in
// a +-2 window around the requesting user's current sliders. Users need at
// least 5 entries and an average window hit rate above 0.6 to count.
func (pr *peerRepo) SimilarUsers(ctx context.Context, tx *gorm.DB, userID uuid.UUID, mood types.MoodSliders) ([]types.PeerSimilarity, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	mood = mood.Clamped()
	since := time.Now().AddDate(0, 0, -30)

	var results []types.PeerSimilarity
	if err := transaction.WithContext(ctx).Raw(similarUsersQuery,
		mood.EnergyLevel-2, mood.EnergyLevel+2,
		mood.StressLevel-2, mood.StressLevel+2,
		mood.FocusLevel-2, mood.FocusLevel+2,
		userID,
		since,
		mood.EnergyLevel-2, mood.EnergyLevel+2,
		mood.StressLevel-2, mood.StressLevel+2,
		mood.FocusLevel-2, mood.FocusLevel+2,
	).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
