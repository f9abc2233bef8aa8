package services

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

// SentimentScorer estimates a signed sentiment intensity for a piece of text,
// roughly on a [-10,10] scale. The exact lexicon behavior is not part of the
// analyzer's contract, only its role as a signed estimator.
type SentimentScorer interface {
	Score(text string) float64
}

type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer wraps the VADER lexicon. VADER's compound score lives in
// [-1,1]; scale it to the [-10,10] convention the mood math expects.
func NewVaderScorer() SentimentScorer {
	return &vaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderScorer) Score(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound * 10
}

type MoodAnalysisService interface {
	AnalyzeMoodFromText(text string) types.MoodAnalysis
	AnalyzeMoodFromSliders(sliders types.MoodSliders) types.MoodInsights
}

type moodAnalysisService struct {
	log             *logger.Logger
	scorer          SentimentScorer
	emotionWeights  EmotionWeights
	emotionKeywords map[string][]string
	stopwords       map[string]struct{}
}

func NewMoodAnalysisService(baseLog *logger.Logger, cfg ScoringConfig) MoodAnalysisService {
	return newMoodAnalysisServiceWithScorer(baseLog, cfg, NewVaderScorer())
}

func newMoodAnalysisServiceWithScorer(baseLog *logger.Logger, cfg ScoringConfig, scorer SentimentScorer) MoodAnalysisService {
	serviceLog := baseLog.With("service", "MoodAnalysisService")
	return &moodAnalysisService{
		log:             serviceLog,
		scorer:          scorer,
		emotionWeights:  cfg.Emotions,
		emotionKeywords: defaultEmotionKeywords(),
		stopwords:       defaultStopwords(),
	}
}

func defaultEmotionKeywords() map[string][]string {
	return map[string][]string{
		"joy":      {"happy", "excited", "joyful", "cheerful", "elated", "thrilled", "delighted", "ecstatic"},
		"sadness":  {"sad", "depressed", "down", "blue", "melancholy", "gloomy", "sorrowful", "miserable"},
		"anger":    {"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "rage", "livid"},
		"fear":     {"afraid", "scared", "terrified", "anxious", "worried", "nervous", "fearful", "panicked"},
		"surprise": {"surprised", "shocked", "amazed", "astonished", "startled", "bewildered", "stunned"},
	}
}

var nonWordPattern = regexp.MustCompile(`[^a-z0-9_\s]+`)

// AnalyzeMoodFromText converts a free-text mood description into a structured
// analysis. It never fails: empty input and any internal fault both resolve
// to the neutral default.
func (ms *moodAnalysisService) AnalyzeMoodFromText(text string) (analysis types.MoodAnalysis) {
	if strings.TrimSpace(text) == "" {
		return ms.defaultMoodAnalysis()
	}

	defer func() {
		if r := recover(); r != nil {
			ms.log.Warn("Mood analysis failed, falling back to neutral default", "panic", r)
			analysis = ms.defaultMoodAnalysis()
		}
	}()

	cleaned := preprocessText(text)
	sentimentScore := ms.scorer.Score(cleaned)
	emotions := ms.extractEmotions(cleaned)
	moodScore := ms.calculateMoodScore(sentimentScore, emotions)
	keywords := ms.extractKeywords(cleaned)
	suggestions := ms.generateSuggestions(moodScore, emotions)

	return types.MoodAnalysis{
		OverallSentiment: overallSentiment(sentimentScore),
		Confidence:       math.Min(math.Abs(sentimentScore)/10, 1),
		Emotions:         emotions,
		MoodScore:        moodScore,
		SentimentScore:   sentimentScore,
		Keywords:         keywords,
		Suggestions:      suggestions,
	}
}

func preprocessText(text string) string {
	lowered := strings.ToLower(text)
	stripped := nonWordPattern.ReplaceAllString(lowered, "")
	return strings.Join(strings.Fields(stripped), " ")
}

// extractEmotions counts keyword hits per emotion, normalized by the length
// of that emotion's keyword list and clamped to [0,1].
func (ms *moodAnalysisService) extractEmotions(cleaned string) map[string]float64 {
	words := strings.Fields(cleaned)

	emotions := make(map[string]float64, len(ms.emotionKeywords))
	for emotion, keywords := range ms.emotionKeywords {
		matches := 0
		for _, word := range words {
			for _, keyword := range keywords {
				if word == keyword {
					matches++
					break
				}
			}
		}
		emotions[emotion] = math.Min(float64(matches)/float64(len(keywords)), 1)
	}
	return emotions
}

func (ms *moodAnalysisService) calculateMoodScore(sentimentScore float64, emotions map[string]float64) int {
	score := (sentimentScore + 10) / 2

	score += emotions["joy"] * ms.emotionWeights.Joy * 2
	score += emotions["sadness"] * ms.emotionWeights.Sadness * 2
	score += emotions["anger"] * ms.emotionWeights.Anger * 2
	score += emotions["fear"] * ms.emotionWeights.Fear * 2
	score += emotions["surprise"] * ms.emotionWeights.Surprise * 2

	rounded := int(math.Round(score))
	if rounded < 1 {
		return 1
	}
	if rounded > 10 {
		return 10
	}
	return rounded
}

// extractKeywords ranks non-stopword tokens by frequency, ties broken by
// first occurrence, and returns up to 10.
func (ms *moodAnalysisService) extractKeywords(cleaned string) []string {
	tokens := strings.Fields(cleaned)

	frequency := map[string]int{}
	var order []string
	for _, token := range tokens {
		if len(token) <= 2 {
			continue
		}
		if _, stop := ms.stopwords[token]; stop {
			continue
		}
		if _, seen := frequency[token]; !seen {
			order = append(order, token)
		}
		frequency[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return frequency[order[i]] > frequency[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

func (ms *moodAnalysisService) generateSuggestions(moodScore int, emotions map[string]float64) []string {
	var suggestions []string

	switch {
	case moodScore <= 3:
		suggestions = append(suggestions,
			"Consider trying calming games like puzzle or simulation games",
			"Take a break and practice deep breathing exercises",
			"Connect with friends for social gaming",
		)
	case moodScore >= 8:
		suggestions = append(suggestions,
			"Great mood! Try challenging games or competitive multiplayer",
			"Consider sharing your positive energy with the community",
		)
	default:
		suggestions = append(suggestions,
			"Try games that match your current energy level",
			"Consider setting a gaming goal for today",
		)
	}

	if emotions["sadness"] > 0.5 {
		suggestions = append(suggestions, "Try uplifting games or connect with supportive gaming communities")
	}
	if emotions["anger"] > 0.5 {
		suggestions = append(suggestions, "Consider relaxing games or take a break before gaming")
	}
	if emotions["fear"] > 0.5 {
		suggestions = append(suggestions, "Try familiar, comfortable games or play with friends")
	}

	return suggestions
}

func overallSentiment(score float64) string {
	if score > 2 {
		return "positive"
	}
	if score < -2 {
		return "negative"
	}
	return "neutral"
}

func (ms *moodAnalysisService) defaultMoodAnalysis() types.MoodAnalysis {
	return types.MoodAnalysis{
		OverallSentiment: "neutral",
		Confidence:       0.5,
		Emotions: map[string]float64{
			"joy":      0.2,
			"sadness":  0.2,
			"anger":    0.2,
			"fear":     0.2,
			"surprise": 0.2,
		},
		MoodScore:   5,
		Keywords:    []string{},
		Suggestions: []string{"Try describing your mood in more detail for better analysis"},
	}
}

// AnalyzeMoodFromSliders derives a mood score, category, pattern ratios and
// rule-based insights from the five slider dimensions. Out-of-range inputs
// are clamped, never rejected.
func (ms *moodAnalysisService) AnalyzeMoodFromSliders(sliders types.MoodSliders) types.MoodInsights {
	sliders = sliders.Clamped()

	sum := sliders.EnergyLevel + (10 - sliders.StressLevel) + sliders.FocusLevel +
		sliders.SocialDesire + sliders.ChallengeSeeking
	moodScore := int(math.Round(float64(sum) / 5))

	category := "poor"
	switch {
	case moodScore >= 8:
		category = "excellent"
	case moodScore >= 6:
		category = "good"
	case moodScore >= 4:
		category = "fair"
	}

	patterns := types.MoodPatterns{
		EnergyStressRatio:   float64(sliders.EnergyLevel) / float64(sliders.StressLevel),
		SocialEngagement:    sliders.SocialDesire,
		ChallengePreference: sliders.ChallengeSeeking,
		FocusLevel:          sliders.FocusLevel,
	}

	return types.MoodInsights{
		MoodScore:       moodScore,
		MoodCategory:    category,
		Patterns:        patterns,
		Insights:        generateMoodInsights(patterns),
		Recommendations: generateMoodRecommendations(sliders),
	}
}

func generateMoodInsights(patterns types.MoodPatterns) []string {
	var insights []string

	if patterns.EnergyStressRatio > 2 {
		insights = append(insights, "You have high energy with low stress - great for action games!")
	} else if patterns.EnergyStressRatio < 0.5 {
		insights = append(insights, "You might be feeling stressed - consider relaxing games")
	}

	if patterns.SocialEngagement > 7 {
		insights = append(insights, "You're feeling social - try multiplayer games!")
	} else if patterns.SocialEngagement < 3 {
		insights = append(insights, "You prefer solo gaming today - single-player games might be perfect")
	}

	if patterns.ChallengePreference > 7 {
		insights = append(insights, "You're seeking challenge - try difficult or competitive games")
	} else if patterns.ChallengePreference < 3 {
		insights = append(insights, "You prefer easier games today - casual or puzzle games might be ideal")
	}

	return insights
}

func generateMoodRecommendations(sliders types.MoodSliders) []string {
	var recommendations []string

	if sliders.EnergyLevel > 7 {
		recommendations = append(recommendations, "High energy - try action or sports games")
	} else if sliders.EnergyLevel < 4 {
		recommendations = append(recommendations, "Low energy - try puzzle or strategy games")
	}

	if sliders.StressLevel > 7 {
		recommendations = append(recommendations, "High stress - try calming games like Stardew Valley or Animal Crossing")
	} else if sliders.StressLevel < 4 {
		recommendations = append(recommendations, "Low stress - you can handle more intense games")
	}

	if sliders.FocusLevel > 7 {
		recommendations = append(recommendations, "High focus - try complex strategy or puzzle games")
	} else if sliders.FocusLevel < 4 {
		recommendations = append(recommendations, "Low focus - try simple, casual games")
	}

	return recommendations
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"about", "after", "again", "all", "and", "any", "are", "because",
		"been", "before", "being", "between", "both", "but", "can", "could",
		"did", "does", "doing", "down", "during", "each", "feel", "feeling",
		"few", "for", "from", "further", "had", "has", "have", "having",
		"her", "here", "hers", "him", "his", "how", "into", "its", "just",
		"more", "most", "myself", "nor", "not", "now", "off", "once", "only",
		"other", "our", "ours", "out", "over", "own", "same", "she", "should",
		"some", "such", "than", "that", "the", "their", "theirs", "them",
		"then", "there", "these", "they", "this", "those", "through", "too",
		"under", "until", "very", "was", "were", "what", "when", "where",
		"which", "while", "who", "whom", "why", "will", "with", "you", "your",
		"yours", "yourself",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
