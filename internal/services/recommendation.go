package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	pkgerrors "github.com/gamewell/gamewell-backend/internal/pkg/errors"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/repos"
	"github.com/gamewell/gamewell-backend/internal/types"
)

const (
	candidatePoolLimit = 100
	historyLookback    = 100
	defaultRecLimit    = 10
)

var (
	highEnergyGenres = []string{"Action", "Sports", "Racing"}
	lowEnergyGenres  = []string{"Puzzle", "Simulation", "Casual"}
)

type RecommendationService interface {
	// GenerateRecommendations ranks the active game catalog against the
	// user's current mood and returns the top entries with per-factor
	// reasoning. An unknown user yields an empty list, not an error.
	GenerateRecommendations(ctx context.Context, userID uuid.UUID, mood types.MoodSliders, limit int) ([]types.ScoredRecommendation, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Recommendation, error)
}

type recommendationService struct {
	db       *gorm.DB
	log      *logger.Logger
	users    repos.UserRepo
	games    repos.GameRepo
	sessions repos.GameSessionRepo
	peers    repos.PeerRepo
	recs     repos.RecommendationRepo
	cache    RecommendationCache
	cacheTTL time.Duration
	weights  FactorWeights
	tracer   trace.Tracer
}

func NewRecommendationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	games repos.GameRepo,
	sessions repos.GameSessionRepo,
	peers repos.PeerRepo,
	recs repos.RecommendationRepo,
	cache RecommendationCache,
	cacheTTL time.Duration,
	cfg ScoringConfig,
) RecommendationService {
	serviceLog := baseLog.With("service", "RecommendationService")
	return &recommendationService{
		db:       db,
		log:      serviceLog,
		users:    users,
		games:    games,
		sessions: sessions,
		peers:    peers,
		recs:     recs,
		cache:    cache,
		cacheTTL: cacheTTL,
		weights:  cfg.Factors,
		tracer:   otel.Tracer("gamewell/recommendation"),
	}
}

// fetchedInputs is the joined result of the parallel fetch phase. Scoring is
// a pure pass over this struct.
type fetchedInputs struct {
	user    *types.User
	pool    []*types.Game
	history []*types.GameSession
	peers   []types.PeerSimilarity
}

func (rs *recommendationService) GenerateRecommendations(ctx context.Context, userID uuid.UUID, mood types.MoodSliders, limit int) ([]types.ScoredRecommendation, error) {
	if limit <= 0 {
		limit = defaultRecLimit
	}
	mood = mood.Clamped()

	cacheKey := recommendationCacheKey(userID, mood, limit)
	if rs.cache != nil {
		if cached, ok := rs.cache.Get(ctx, cacheKey); ok {
			rs.log.Debug("Recommendation cache hit", "user_id", userID)
			return cached, nil
		}
	}

	inputs, err := rs.fetchInputs(ctx, userID, mood)
	if err != nil {
		return nil, err
	}
	if inputs.user == nil {
		rs.log.Info("User not found, returning no recommendations", "user_id", userID)
		return []types.ScoredRecommendation{}, nil
	}

	_, span := rs.tracer.Start(ctx, "recommendation.score")
	candidates := rs.narrowPool(inputs.pool, inputs.user, mood)
	scored := rs.scorePool(candidates, inputs, mood)
	span.End()

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	rs.persistRecommendations(ctx, userID, mood, scored)
	if rs.cache != nil {
		rs.cache.Set(ctx, cacheKey, scored, rs.cacheTTL)
	}
	return scored, nil
}

// fetchInputs gathers the four collaborator lookups concurrently. A missing
// user is reported as a nil user, not an error.
func (rs *recommendationService) fetchInputs(ctx context.Context, userID uuid.UUID, mood types.MoodSliders) (fetchedInputs, error) {
	ctx, span := rs.tracer.Start(ctx, "recommendation.fetch")
	defer span.End()

	var inputs fetchedInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := rs.users.GetByID(gctx, nil, userID)
		if err != nil {
			if errors.Is(err, pkgerrors.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("fetch user profile: %w", err)
		}
		inputs.user = user
		return nil
	})
	g.Go(func() error {
		pool, err := rs.games.ListActive(gctx, nil, candidatePoolLimit)
		if err != nil {
			return fmt.Errorf("fetch candidate games: %w", err)
		}
		inputs.pool = pool
		return nil
	})
	g.Go(func() error {
		history, err := rs.sessions.ListRecentByUser(gctx, nil, userID, historyLookback)
		if err != nil {
			return fmt.Errorf("fetch gaming history: %w", err)
		}
		inputs.history = history
		return nil
	})
	g.Go(func() error {
		similar, err := rs.peers.SimilarUsers(gctx, nil, userID, mood)
		if err != nil {
			// Peer data is an optional signal; degrade to "no peer data"
			// instead of failing the request.
			rs.log.Warn("Peer similarity lookup failed, using neutral score", "error", err)
			return nil
		}
		inputs.peers = similar
		return nil
	})

	if err := g.Wait(); err != nil {
		return fetchedInputs{}, err
	}
	return inputs, nil
}

// narrowPool applies the preference and mood heuristics as pool narrowing.
// If the combined filters empty the pool, the pre-narrowing pool is used so
// edge-case moods still get recommendations.
func (rs *recommendationService) narrowPool(pool []*types.Game, user *types.User, mood types.MoodSliders) []*types.Game {
	active := make([]*types.Game, 0, len(pool))
	for _, game := range pool {
		if game != nil && game.IsActive {
			active = append(active, game)
		}
	}

	narrowed := active
	prefs := user.Preferences.Data()
	if len(prefs.PreferredPlatforms) > 0 {
		narrowed = filterGames(narrowed, func(g *types.Game) bool {
			return overlapCount(g.Platforms, prefs.PreferredPlatforms) > 0
		})
	}
	if len(prefs.FavoriteGenres) > 0 {
		narrowed = filterGames(narrowed, func(g *types.Game) bool {
			return overlapCount(g.Genres, prefs.FavoriteGenres) > 0
		})
	}

	if mood.EnergyLevel >= 7 {
		narrowed = filterGames(narrowed, func(g *types.Game) bool {
			return overlapCount(g.Genres, highEnergyGenres) > 0
		})
	} else if mood.EnergyLevel <= 4 {
		narrowed = filterGames(narrowed, func(g *types.Game) bool {
			return overlapCount(g.Genres, lowEnergyGenres) > 0
		})
	}

	if mood.StressLevel >= 7 {
		narrowed = filterGames(narrowed, func(g *types.Game) bool {
			return g.StressCompatibility <= 3
		})
	} else if mood.StressLevel <= 4 {
		narrowed = filterGames(narrowed, func(g *types.Game) bool {
			return g.StressCompatibility >= 5
		})
	}

	if len(narrowed) == 0 {
		rs.log.Debug("Pool narrowing left no candidates, falling back to full pool")
		return active
	}
	return narrowed
}

func (rs *recommendationService) scorePool(candidates []*types.Game, inputs fetchedInputs, mood types.MoodSliders) []types.ScoredRecommendation {
	prefs := inputs.user.Preferences.Data()
	accessibility := inputs.user.AccessibilitySettings.Data()
	enjoymentByGame := latestEnjoymentByGame(inputs.history)
	peerScore := peerSimilarityScore(inputs.peers)

	scored := make([]types.ScoredRecommendation, 0, len(candidates))
	for _, game := range candidates {
		rec, ok := rs.scoreCandidate(game, inputs.user, prefs, accessibility, mood, enjoymentByGame, peerScore)
		if !ok {
			continue
		}
		scored = append(scored, rec)
	}
	return scored
}

// scoreCandidate computes the weighted sum for one game. A fault in one
// candidate never aborts the batch.
func (rs *recommendationService) scoreCandidate(
	game *types.Game,
	user *types.User,
	prefs types.UserPreferences,
	accessibility types.AccessibilitySettings,
	mood types.MoodSliders,
	enjoymentByGame map[uuid.UUID]int,
	peerScore float64,
) (rec types.ScoredRecommendation, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			rs.log.Warn("Skipping candidate after scoring fault", "game_id", game.ID, "panic", r)
			ok = false
		}
	}()

	moodScore := calculateMoodMatch(game, mood)
	preferenceScore := calculatePreferenceMatch(game, prefs)
	wellnessScore := calculateWellnessMatch(game, user.WellnessStreak, accessibility)
	historyScore := calculateHistoryScore(game.ID, enjoymentByGame)
	accessibilityScore := calculateAccessibilityScore(game, accessibility)

	total := moodScore*rs.weights.MoodMatch +
		preferenceScore*rs.weights.PreferenceMatch +
		wellnessScore*rs.weights.WellnessMatch +
		peerScore*rs.weights.PeerSimilarity +
		historyScore*rs.weights.History +
		accessibilityScore*rs.weights.Accessibility
	total = clamp01(total)

	reasoning := []string{
		fmt.Sprintf("Mood match: %d%%", roundPercent(moodScore)),
		fmt.Sprintf("Preference match: %d%%", roundPercent(preferenceScore)),
		fmt.Sprintf("Wellness benefits: %d%%", roundPercent(wellnessScore)),
		fmt.Sprintf("Similar users liked: %d%%", roundPercent(peerScore)),
	}

	return types.ScoredRecommendation{
		GameID:            game.ID,
		Title:             game.Title,
		Score:             total,
		ConfidenceScore:   roundPercent(total),
		Reasoning:         reasoning,
		MoodMatch:         moodScore,
		WellnessBenefits:  wellnessBenefits(game),
		SimilarUsersLiked: roundPercent(peerScore),
	}, true
}

func calculateMoodMatch(game *types.Game, mood types.MoodSliders) float64 {
	match := 0.5

	energyMatch := 1 - math.Abs(float64(game.IdealEnergyMin-mood.EnergyLevel))/10
	match += energyMatch * 0.3

	stressMatch := 1 - math.Abs(float64(game.StressCompatibility-mood.StressLevel))/10
	match += stressMatch * 0.3

	if mood.SocialDesire > 7 && game.HasGenre("Multiplayer") {
		match += 0.2
	} else if mood.SocialDesire < 4 && !game.HasGenre("Multiplayer") {
		match += 0.2
	}

	if mood.ChallengeSeeking > 7 && game.HasGenre("Strategy") {
		match += 0.2
	} else if mood.ChallengeSeeking < 4 && game.HasGenre("Casual") {
		match += 0.2
	}

	return clamp01(match)
}

func calculatePreferenceMatch(game *types.Game, prefs types.UserPreferences) float64 {
	match := 0.5

	if len(prefs.PreferredPlatforms) > 0 {
		platformMatch := float64(overlapCount(game.Platforms, prefs.PreferredPlatforms)) / float64(len(prefs.PreferredPlatforms))
		match += platformMatch * 0.4
	}

	if len(prefs.FavoriteGenres) > 0 {
		genreMatch := float64(overlapCount(game.Genres, prefs.FavoriteGenres)) / float64(len(prefs.FavoriteGenres))
		match += genreMatch * 0.4
	}

	if prefs.PreferredSessionLength > 0 {
		sessionMatch := 1 - math.Abs(float64(game.SessionLengthMinutes-prefs.PreferredSessionLength))/120
		match += sessionMatch * 0.2
	}

	return clamp01(match)
}

func calculateWellnessMatch(game *types.Game, wellnessStreak int, accessibility types.AccessibilitySettings) float64 {
	match := 0.5

	match += float64(game.WellnessRating) / 10 * 0.3

	if wellnessStreak > 7 && game.WellnessRating >= 7 {
		match += 0.2
	}

	if accessibility.ColorblindSupport && game.HasAccessibilityFeature("colorblind_support") {
		match += 0.1
	}
	if accessibility.ReducedMotion && game.HasAccessibilityFeature("reduced_motion") {
		match += 0.1
	}

	return clamp01(match)
}

func calculateHistoryScore(gameID uuid.UUID, enjoymentByGame map[uuid.UUID]int) float64 {
	if enjoyment, played := enjoymentByGame[gameID]; played {
		return float64(enjoyment-5) / 5 * 0.2
	}
	// Slight penalty for completely new games so repeat favorites still
	// surface, without blocking novelty.
	return -0.05
}

func calculateAccessibilityScore(game *types.Game, accessibility types.AccessibilitySettings) float64 {
	score := 0.0
	if accessibility.HighContrast && game.HasAccessibilityFeature("high_contrast") {
		score += 0.2
	}
	if accessibility.ScreenReader && game.HasAccessibilityFeature("screen_reader") {
		score += 0.2
	}
	if accessibility.OneHandedControls && game.HasAccessibilityFeature("one_handed_controls") {
		score += 0.2
	}
	if accessibility.SubtitleRequired && game.HasAccessibilityFeature("subtitles") {
		score += 0.2
	}
	return math.Min(score, 0.2)
}

// peerSimilarityScore is a deterministic stand-in for a real peer-affinity
// computation: the average similarity weight of nearby users, neutral 0.5
// when there is no peer data.
func peerSimilarityScore(peers []types.PeerSimilarity) float64 {
	if len(peers) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, peer := range peers {
		sum += peer.SimilarityWeight
	}
	return clamp01(sum / float64(len(peers)))
}

func wellnessBenefits(game *types.Game) []string {
	benefits := []string{}
	if game.WellnessRating >= 8 {
		benefits = append(benefits, "High wellness rating")
	}
	if game.HasGenre("Puzzle") {
		benefits = append(benefits, "Improves cognitive function")
	}
	if game.HasGenre("Sports") {
		benefits = append(benefits, "Encourages physical activity")
	}
	if game.HasGenre("Simulation") {
		benefits = append(benefits, "Promotes relaxation")
	}
	if game.HasGenre("Multiplayer") {
		benefits = append(benefits, "Enhances social connections")
	}
	return benefits
}

func latestEnjoymentByGame(history []*types.GameSession) map[uuid.UUID]int {
	enjoyment := make(map[uuid.UUID]int, len(history))
	for _, session := range history {
		// History is newest-first; the first rating seen per game wins.
		if _, seen := enjoyment[session.GameID]; seen {
			continue
		}
		if session.EnjoymentRating > 0 {
			enjoyment[session.GameID] = session.EnjoymentRating
		}
	}
	return enjoyment
}

func (rs *recommendationService) persistRecommendations(ctx context.Context, userID uuid.UUID, mood types.MoodSliders, scored []types.ScoredRecommendation) {
	if rs.recs == nil || len(scored) == 0 {
		return
	}

	moodContext, err := json.Marshal(mood)
	if err != nil {
		moodContext = []byte("{}")
	}

	rows := make([]*types.Recommendation, 0, len(scored))
	for _, rec := range scored {
		confidence := rec.ConfidenceScore
		if confidence < 1 {
			confidence = 1
		}
		rows = append(rows, &types.Recommendation{
			UserID:             userID,
			GameID:             rec.GameID,
			RecommendationType: "mood_based",
			ConfidenceScore:    confidence,
			Reasoning:          strings.Join(rec.Reasoning, ", "),
			MoodContext:        moodContext,
		})
	}
	if _, err := rs.recs.Create(ctx, nil, rows); err != nil {
		rs.log.Warn("Failed to persist recommendations", "user_id", userID, "error", err)
	}
}

func (rs *recommendationService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Recommendation, error) {
	return rs.recs.ListByUser(ctx, nil, userID, limit)
}

func recommendationCacheKey(userID uuid.UUID, mood types.MoodSliders, limit int) string {
	return fmt.Sprintf("rec:%s:e%d-s%d-f%d-so%d-c%d:l%d",
		userID, mood.EnergyLevel, mood.StressLevel, mood.FocusLevel, mood.SocialDesire, mood.ChallengeSeeking, limit)
}

func filterGames(pool []*types.Game, keep func(*types.Game) bool) []*types.Game {
	filtered := make([]*types.Game, 0, len(pool))
	for _, game := range pool {
		if keep(game) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}

func overlapCount(have []string, want []string) int {
	count := 0
	for _, w := range want {
		for _, h := range have {
			if h == w {
				count++
				break
			}
		}
	}
	return count
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundPercent(v float64) int {
	return int(math.Round(v * 100))
}
