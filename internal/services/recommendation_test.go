package services

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	pkgerrors "github.com/gamewell/gamewell-backend/internal/pkg/errors"
	"github.com/gamewell/gamewell-backend/internal/types"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*types.User
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	return users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error) {
	if user, ok := f.users[userID]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("user %s: %w", userID, pkgerrors.ErrNotFound)
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return false, nil
}

type fakeGameRepo struct {
	games []*types.Game
}

func (f *fakeGameRepo) Create(ctx context.Context, tx *gorm.DB, games []*types.Game) ([]*types.Game, error) {
	return games, nil
}

func (f *fakeGameRepo) GetByID(ctx context.Context, tx *gorm.DB, gameID uuid.UUID) (*types.Game, error) {
	for _, game := range f.games {
		if game.ID == gameID {
			return game, nil
		}
	}
	return nil, fmt.Errorf("game %s: %w", gameID, pkgerrors.ErrNotFound)
}

func (f *fakeGameRepo) ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Game, error) {
	return f.games, nil
}

type fakeSessionRepo struct {
	sessions []*types.GameSession
}

func (f *fakeSessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.GameSession) ([]*types.GameSession, error) {
	return sessions, nil
}

func (f *fakeSessionRepo) ListRecentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.GameSession, error) {
	return f.sessions, nil
}

type fakePeerRepo struct {
	peers []types.PeerSimilarity
}

func (f *fakePeerRepo) SimilarUsers(ctx context.Context, tx *gorm.DB, userID uuid.UUID, mood types.MoodSliders) ([]types.PeerSimilarity, error) {
	return f.peers, nil
}

type fakeRecRepo struct {
	created []*types.Recommendation
}

func (f *fakeRecRepo) Create(ctx context.Context, tx *gorm.DB, recs []*types.Recommendation) ([]*types.Recommendation, error) {
	f.created = append(f.created, recs...)
	return recs, nil
}

func (f *fakeRecRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Recommendation, error) {
	return f.created, nil
}

func (f *fakeRecRepo) MarkViewed(ctx context.Context, tx *gorm.DB, recID uuid.UUID) error {
	return nil
}

type engineFixture struct {
	engine RecommendationService
	userID uuid.UUID
	recs   *fakeRecRepo
}

func newEngineFixture(t *testing.T, user *types.User, games []*types.Game, sessions []*types.GameSession, peers []types.PeerSimilarity) engineFixture {
	t.Helper()

	users := &fakeUserRepo{users: map[uuid.UUID]*types.User{}}
	userID := uuid.New()
	if user != nil {
		user.ID = userID
		users.users[userID] = user
	}
	recs := &fakeRecRepo{}

	engine := NewRecommendationService(
		nil,
		testLogger(t),
		users,
		&fakeGameRepo{games: games},
		&fakeSessionRepo{sessions: sessions},
		&fakePeerRepo{peers: peers},
		recs,
		nil,
		0,
		DefaultScoringConfig(),
	)
	return engineFixture{engine: engine, userID: userID, recs: recs}
}

func plainUser() *types.User {
	return &types.User{DisplayName: "test player"}
}

func gameWith(title string, genres []string, energyMin, stressCompat, wellness int) *types.Game {
	return &types.Game{
		ID:                   uuid.New(),
		Title:                title,
		Genres:               datatypes.NewJSONSlice(genres),
		Platforms:            datatypes.NewJSONSlice([]string{"PC"}),
		MoodTags:             datatypes.NewJSONSlice([]string{}),
		IdealEnergyMin:       energyMin,
		IdealEnergyMax:       10,
		StressCompatibility:  stressCompat,
		SessionLengthMinutes: 30,
		WellnessRating:       wellness,
		IsActive:             true,
	}
}

func TestGenerateRecommendationsUnknownUser(t *testing.T) {
	fx := newEngineFixture(t, nil, []*types.Game{gameWith("Solo Drift", []string{"Racing"}, 5, 5, 5)}, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), uuid.New(), types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty list for unknown user, got=%d entries", len(got))
	}
}

func TestHighEnergyMoodPrefersActionOverPuzzle(t *testing.T) {
	action := gameWith("Blast Lane", []string{"Action"}, 7, 3, 5)
	puzzle := gameWith("Quiet Tiles", []string{"Puzzle"}, 3, 7, 5)
	fx := newEngineFixture(t, plainUser(), []*types.Game{action, puzzle}, nil, nil)

	mood := types.MoodSliders{EnergyLevel: 8, StressLevel: 2, FocusLevel: 5, SocialDesire: 5, ChallengeSeeking: 5}
	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, mood, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want both candidates scored, got=%d", len(got))
	}
	if got[0].GameID != action.ID {
		t.Fatalf("want the action game ranked first, got=%q", got[0].Title)
	}

	var actionMood, puzzleMood float64
	for _, rec := range got {
		if rec.GameID == action.ID {
			actionMood = rec.MoodMatch
		} else {
			puzzleMood = rec.MoodMatch
		}
	}
	if actionMood <= puzzleMood {
		t.Fatalf("mood match: action=%v should beat puzzle=%v", actionMood, puzzleMood)
	}
}

func TestRecommendationsSortedAndLimited(t *testing.T) {
	var pool []*types.Game
	for i := 1; i <= 15; i++ {
		pool = append(pool, gameWith(fmt.Sprintf("Game %02d", i), []string{"Casual"}, 5, 5, 1+(i%10)))
	}
	fx := newEngineFixture(t, plainUser(), pool, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) > 10 {
		t.Fatalf("limit exceeded: %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not sorted descending at %d: %v > %v", i, got[i].Score, got[i-1].Score)
		}
	}
	for _, rec := range got {
		if rec.Score < 0 || rec.Score > 1 {
			t.Fatalf("score out of range for %q: %v", rec.Title, rec.Score)
		}
	}
}

func TestEqualScoresKeepInputOrder(t *testing.T) {
	first := gameWith("Twin A", []string{"Casual"}, 5, 5, 5)
	second := gameWith("Twin B", []string{"Casual"}, 5, 5, 5)
	fx := newEngineFixture(t, plainUser(), []*types.Game{first, second}, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].GameID != first.ID || got[1].GameID != second.ID {
		t.Fatalf("equal scores must keep input order, got=%v", []string{got[0].Title, got[1].Title})
	}
}

func TestGenerateRecommendationsIdempotent(t *testing.T) {
	pool := []*types.Game{
		gameWith("Blast Lane", []string{"Action"}, 7, 3, 8),
		gameWith("Quiet Tiles", []string{"Puzzle"}, 3, 7, 9),
		gameWith("Farm Days", []string{"Simulation"}, 4, 8, 7),
	}
	fx := newEngineFixture(t, plainUser(), pool, nil, []types.PeerSimilarity{{PeerID: uuid.New(), SimilarityWeight: 0.8}})
	mood := types.MoodSliders{EnergyLevel: 6, StressLevel: 5, FocusLevel: 6, SocialDesire: 4, ChallengeSeeking: 6}

	first, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, mood, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, mood, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different rankings:\nfirst=%v\nsecond=%v", first, second)
	}
}

func TestNarrowingFallsBackToFullPool(t *testing.T) {
	// Stress 9 narrows to stress_compatibility <= 3, which excludes the
	// whole pool; the engine must fall back instead of returning nothing.
	pool := []*types.Game{
		gameWith("Loud One", []string{"Action"}, 8, 8, 5),
		gameWith("Louder One", []string{"Sports"}, 9, 9, 5),
	}
	fx := newEngineFixture(t, plainUser(), pool, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{EnergyLevel: 8, StressLevel: 9, FocusLevel: 5, SocialDesire: 5, ChallengeSeeking: 5}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want fallback to the full pool, got=%d entries", len(got))
	}
}

func TestInactiveGamesAreNeverScored(t *testing.T) {
	inactive := gameWith("Sunset Game", []string{"Casual"}, 5, 5, 9)
	inactive.IsActive = false
	active := gameWith("Live Game", []string{"Casual"}, 5, 5, 5)
	fx := newEngineFixture(t, plainUser(), []*types.Game{inactive, active}, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].GameID != active.ID {
		t.Fatalf("inactive game leaked into recommendations: %v", got)
	}
}

func TestHistoryAdjustment(t *testing.T) {
	loved := gameWith("Old Favorite", []string{"Casual"}, 5, 5, 5)
	disliked := gameWith("Old Regret", []string{"Casual"}, 5, 5, 5)
	fresh := gameWith("Never Played", []string{"Casual"}, 5, 5, 5)
	sessions := []*types.GameSession{
		{GameID: loved.ID, EnjoymentRating: 10},
		{GameID: disliked.ID, EnjoymentRating: 1},
	}
	fx := newEngineFixture(t, plainUser(), []*types.Game{loved, disliked, fresh}, sessions, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byID := map[uuid.UUID]float64{}
	for _, rec := range got {
		byID[rec.GameID] = rec.Score
	}
	if byID[loved.ID] <= byID[fresh.ID] {
		t.Fatalf("enjoyed game should outrank unplayed: loved=%v fresh=%v", byID[loved.ID], byID[fresh.ID])
	}
	if byID[disliked.ID] >= byID[fresh.ID] {
		t.Fatalf("disliked game should rank below unplayed: disliked=%v fresh=%v", byID[disliked.ID], byID[fresh.ID])
	}
}

func TestPeerScoreDefaultsToNeutral(t *testing.T) {
	fx := newEngineFixture(t, plainUser(), []*types.Game{gameWith("Any Game", []string{"Casual"}, 5, 5, 5)}, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].SimilarUsersLiked != 50 {
		t.Fatalf("similar_users_liked: want neutral 50, got=%d", got[0].SimilarUsersLiked)
	}
}

func TestReasoningFactorOrder(t *testing.T) {
	fx := newEngineFixture(t, plainUser(), []*types.Game{gameWith("Any Game", []string{"Casual"}, 5, 5, 5)}, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reasoning := got[0].Reasoning
	wantPrefixes := []string{"Mood match:", "Preference match:", "Wellness benefits:", "Similar users liked:"}
	if len(reasoning) != len(wantPrefixes) {
		t.Fatalf("reasoning: want %d entries, got=%v", len(wantPrefixes), reasoning)
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(reasoning[i], prefix) {
			t.Fatalf("reasoning[%d]: want prefix %q, got=%q", i, prefix, reasoning[i])
		}
	}
}

func TestPreferenceNarrowingAndMatch(t *testing.T) {
	matching := gameWith("Genre Fit", []string{"Strategy"}, 5, 5, 5)
	other := gameWith("Genre Miss", []string{"Racing"}, 5, 5, 5)
	user := plainUser()
	user.Preferences = datatypes.NewJSONType(types.UserPreferences{
		FavoriteGenres:         []string{"Strategy"},
		PreferredPlatforms:     []string{"PC"},
		PreferredSessionLength: 30,
	})
	fx := newEngineFixture(t, user, []*types.Game{matching, other}, nil, nil)

	got, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("stated genre preference should narrow the pool, got=%d entries", len(got))
	}
	if got[0].GameID != matching.ID {
		t.Fatalf("want the preferred-genre game, got=%q", got[0].Title)
	}
}

func TestRecommendationsPersisted(t *testing.T) {
	fx := newEngineFixture(t, plainUser(), []*types.Game{gameWith("Any Game", []string{"Casual"}, 5, 5, 5)}, nil, nil)

	_, err := fx.engine.GenerateRecommendations(context.Background(), fx.userID, types.MoodSliders{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fx.recs.created) != 1 {
		t.Fatalf("want 1 persisted recommendation, got=%d", len(fx.recs.created))
	}
	row := fx.recs.created[0]
	if row.RecommendationType != "mood_based" {
		t.Fatalf("recommendation_type: want=mood_based got=%q", row.RecommendationType)
	}
	if row.ConfidenceScore < 1 || row.ConfidenceScore > 100 {
		t.Fatalf("confidence_score out of range: %d", row.ConfidenceScore)
	}
}
