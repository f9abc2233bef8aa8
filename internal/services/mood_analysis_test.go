package services

import (
	"strings"
	"testing"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development", "error")
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixedScorer struct {
	score float64
}

func (f fixedScorer) Score(string) float64 { return f.score }

type panicScorer struct{}

func (panicScorer) Score(string) float64 { panic("lexicon exploded") }

func newTestAnalyzer(t *testing.T, score float64) MoodAnalysisService {
	t.Helper()
	return newMoodAnalysisServiceWithScorer(testLogger(t), DefaultScoringConfig(), fixedScorer{score: score})
}

func assertNeutralDefault(t *testing.T, got types.MoodAnalysis) {
	t.Helper()
	if got.MoodScore != 5 {
		t.Fatalf("mood_score: want=5 got=%d", got.MoodScore)
	}
	if got.OverallSentiment != "neutral" {
		t.Fatalf("overall_sentiment: want=neutral got=%q", got.OverallSentiment)
	}
	if got.Confidence != 0.5 {
		t.Fatalf("confidence: want=0.5 got=%v", got.Confidence)
	}
	for _, emotion := range []string{"joy", "sadness", "anger", "fear", "surprise"} {
		if got.Emotions[emotion] != 0.2 {
			t.Fatalf("emotions[%s]: want=0.2 got=%v", emotion, got.Emotions[emotion])
		}
	}
	if len(got.Keywords) != 0 {
		t.Fatalf("keywords: want empty, got=%v", got.Keywords)
	}
	if len(got.Suggestions) != 1 {
		t.Fatalf("suggestions: want 1 generic suggestion, got=%v", got.Suggestions)
	}
}

func TestAnalyzeMoodFromTextEmptyInput(t *testing.T) {
	analyzer := newTestAnalyzer(t, 3)

	for _, input := range []string{"", "   ", "\n\t "} {
		assertNeutralDefault(t, analyzer.AnalyzeMoodFromText(input))
	}
}

func TestAnalyzeMoodFromTextInternalFaultFallsBack(t *testing.T) {
	analyzer := newMoodAnalysisServiceWithScorer(testLogger(t), DefaultScoringConfig(), panicScorer{})

	assertNeutralDefault(t, analyzer.AnalyzeMoodFromText("anything at all"))
}

func TestAnalyzeMoodFromTextBounds(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		text  string
	}{
		{name: "very_positive", score: 10, text: "happy excited thrilled about this amazing game"},
		{name: "very_negative", score: -10, text: "sad angry miserable furious about everything"},
		{name: "neutral_rambling", score: 0, text: "played some games today then made dinner"},
		{name: "overflow_sentiment", score: 25, text: "words beyond the usual scale"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := newTestAnalyzer(t, tc.score).AnalyzeMoodFromText(tc.text)
			if got.MoodScore < 1 || got.MoodScore > 10 {
				t.Fatalf("mood_score out of range: %d", got.MoodScore)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Fatalf("confidence out of range: %v", got.Confidence)
			}
			for emotion, intensity := range got.Emotions {
				if intensity < 0 || intensity > 1 {
					t.Fatalf("emotions[%s] out of range: %v", emotion, intensity)
				}
			}
			if len(got.Emotions) != 5 {
				t.Fatalf("emotion vector: want 5 keys, got=%d", len(got.Emotions))
			}
		})
	}
}

func TestAnalyzeMoodFromTextSadAnxious(t *testing.T) {
	got := newTestAnalyzer(t, -5).AnalyzeMoodFromText("I feel so sad and anxious about everything")

	if got.Emotions["sadness"] <= 0 {
		t.Fatalf("sadness: want > 0, got=%v", got.Emotions["sadness"])
	}
	if got.Emotions["fear"] <= 0 {
		t.Fatalf("fear: want > 0, got=%v", got.Emotions["fear"])
	}
	if got.MoodScore >= 5 {
		t.Fatalf("mood_score: want < 5, got=%d", got.MoodScore)
	}
	if got.OverallSentiment != "negative" {
		t.Fatalf("overall_sentiment: want=negative got=%q", got.OverallSentiment)
	}
	if len(got.Suggestions) == 0 {
		t.Fatalf("suggestions: want supportive suggestions for a low mood")
	}
}

func TestAnalyzeMoodFromTextEmotionBranchSuggestions(t *testing.T) {
	// Five of eight sadness keywords pushes the sadness intensity past 0.5.
	got := newTestAnalyzer(t, -3).AnalyzeMoodFromText("sad depressed gloomy sorrowful miserable")

	if got.Emotions["sadness"] <= 0.5 {
		t.Fatalf("sadness: want > 0.5, got=%v", got.Emotions["sadness"])
	}
	found := false
	for _, s := range got.Suggestions {
		if strings.Contains(s, "uplifting") {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestions missing the uplifting branch: %v", got.Suggestions)
	}
}

func TestAnalyzeMoodFromTextMoodScoreDerivation(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		text  string
		want  int
	}{
		{name: "max_sentiment_clamps_high", score: 10, text: "nothing emotional here today", want: 10},
		{name: "min_sentiment_clamps_low", score: -10, text: "nothing emotional here today", want: 1},
		{name: "full_joy_vector_boost", score: 0, text: "happy excited joyful cheerful elated thrilled delighted ecstatic", want: 6},
		{name: "plain_neutral", score: 0, text: "went outside and walked around", want: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := newTestAnalyzer(t, tc.score).AnalyzeMoodFromText(tc.text)
			if got.MoodScore != tc.want {
				t.Fatalf("mood_score: want=%d got=%d", tc.want, got.MoodScore)
			}
		})
	}
}

func TestAnalyzeMoodFromTextKeywords(t *testing.T) {
	analyzer := newTestAnalyzer(t, 1)

	got := analyzer.AnalyzeMoodFromText("Gaming gaming GAMING tonight, maybe racing or racing puzzles as a tiny treat")

	if len(got.Keywords) == 0 {
		t.Fatalf("keywords: want non-empty")
	}
	if got.Keywords[0] != "gaming" {
		t.Fatalf("top keyword: want=gaming got=%q", got.Keywords[0])
	}
	if got.Keywords[1] != "racing" {
		t.Fatalf("second keyword: want=racing got=%q", got.Keywords[1])
	}
	for _, keyword := range got.Keywords {
		if len(keyword) <= 2 {
			t.Fatalf("keyword below length threshold leaked through: %q", keyword)
		}
		if keyword != strings.ToLower(keyword) {
			t.Fatalf("keyword not case-normalized: %q", keyword)
		}
	}

	long := analyzer.AnalyzeMoodFromText(strings.Repeat("alpha beta gamma delta epsilon zeta eta theta iota kappa lambda omicron ", 3))
	if len(long.Keywords) > 10 {
		t.Fatalf("keywords: want at most 10, got=%d", len(long.Keywords))
	}
}

func TestAnalyzeMoodFromSliders(t *testing.T) {
	analyzer := newTestAnalyzer(t, 0)

	cases := []struct {
		name         string
		sliders      types.MoodSliders
		wantScore    int
		wantCategory string
	}{
		{
			name:         "excellent_checkin",
			sliders:      types.MoodSliders{EnergyLevel: 9, StressLevel: 2, FocusLevel: 7, SocialDesire: 8, ChallengeSeeking: 6},
			wantScore:    8,
			wantCategory: "excellent",
		},
		{
			name:         "flat_midscale",
			sliders:      types.MoodSliders{EnergyLevel: 5, StressLevel: 5, FocusLevel: 5, SocialDesire: 5, ChallengeSeeking: 5},
			wantScore:    5,
			wantCategory: "fair",
		},
		{
			name:         "rough_day",
			sliders:      types.MoodSliders{EnergyLevel: 1, StressLevel: 10, FocusLevel: 1, SocialDesire: 1, ChallengeSeeking: 1},
			wantScore:    1,
			wantCategory: "poor",
		},
		{
			name:         "out_of_range_is_clamped",
			sliders:      types.MoodSliders{EnergyLevel: 25, StressLevel: -4, FocusLevel: 7, SocialDesire: 8, ChallengeSeeking: 6},
			wantScore:    8,
			wantCategory: "excellent",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzer.AnalyzeMoodFromSliders(tc.sliders)
			if got.MoodScore != tc.wantScore {
				t.Fatalf("mood_score: want=%d got=%d", tc.wantScore, got.MoodScore)
			}
			if got.MoodCategory != tc.wantCategory {
				t.Fatalf("mood_category: want=%q got=%q", tc.wantCategory, got.MoodCategory)
			}
		})
	}
}

func TestSliderMoodScoreMonotonicity(t *testing.T) {
	analyzer := newTestAnalyzer(t, 0)
	base := types.MoodSliders{EnergyLevel: 5, StressLevel: 5, FocusLevel: 5, SocialDesire: 5, ChallengeSeeking: 5}

	prev := -1
	for energy := 1; energy <= 10; energy++ {
		sliders := base
		sliders.EnergyLevel = energy
		score := analyzer.AnalyzeMoodFromSliders(sliders).MoodScore
		if prev >= 0 && score < prev {
			t.Fatalf("mood_score decreased when energy rose: energy=%d score=%d prev=%d", energy, score, prev)
		}
		prev = score
	}

	prev = -1
	for stress := 1; stress <= 10; stress++ {
		sliders := base
		sliders.StressLevel = stress
		score := analyzer.AnalyzeMoodFromSliders(sliders).MoodScore
		if prev >= 0 && score > prev {
			t.Fatalf("mood_score increased when stress rose: stress=%d score=%d prev=%d", stress, score, prev)
		}
		prev = score
	}
}

func TestSliderInsightTables(t *testing.T) {
	analyzer := newTestAnalyzer(t, 0)

	got := analyzer.AnalyzeMoodFromSliders(types.MoodSliders{
		EnergyLevel: 9, StressLevel: 2, FocusLevel: 8, SocialDesire: 9, ChallengeSeeking: 2,
	})

	wantFragments := []string{"high energy", "multiplayer", "easier games"}
	for _, fragment := range wantFragments {
		found := false
		for _, insight := range got.Insights {
			if strings.Contains(strings.ToLower(insight), fragment) {
				found = true
			}
		}
		if !found {
			t.Fatalf("insights missing %q: %v", fragment, got.Insights)
		}
	}

	recs := analyzer.AnalyzeMoodFromSliders(types.MoodSliders{
		EnergyLevel: 9, StressLevel: 9, FocusLevel: 2, SocialDesire: 5, ChallengeSeeking: 5,
	}).Recommendations
	joined := strings.ToLower(strings.Join(recs, " | "))
	for _, fragment := range []string{"action or sports", "calming", "casual"} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("recommendations missing %q: %v", fragment, recs)
		}
	}
}
