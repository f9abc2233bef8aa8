package types

// MoodSliders carries the five slider dimensions of a mood check-in, each on
// a 1-10 scale.
type MoodSliders struct {
	EnergyLevel      int `json:"energy_level"`
	StressLevel      int `json:"stress_level"`
	FocusLevel       int `json:"focus_level"`
	SocialDesire     int `json:"social_desire"`
	ChallengeSeeking int `json:"challenge_seeking"`
}

// Clamped returns a copy with every dimension forced into [1,10]. Zero values
// (unset) become the mid-scale 5.
func (s MoodSliders) Clamped() MoodSliders {
	return MoodSliders{
		EnergyLevel:      clampSlider(s.EnergyLevel),
		StressLevel:      clampSlider(s.StressLevel),
		FocusLevel:       clampSlider(s.FocusLevel),
		SocialDesire:     clampSlider(s.SocialDesire),
		ChallengeSeeking: clampSlider(s.ChallengeSeeking),
	}
}

func clampSlider(v int) int {
	if v == 0 {
		return 5
	}
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// MoodAnalysis is the output of text-based mood analysis.
type MoodAnalysis struct {
	OverallSentiment string             `json:"overall_sentiment"`
	Confidence       float64            `json:"confidence"`
	Emotions         map[string]float64 `json:"emotions"`
	MoodScore        int                `json:"mood_score"`
	SentimentScore   float64            `json:"sentiment_score"`
	Keywords         []string           `json:"keywords"`
	Suggestions      []string           `json:"suggestions"`
}

// MoodPatterns are the derived ratios used by slider-based insights.
type MoodPatterns struct {
	EnergyStressRatio   float64 `json:"energy_stress_ratio"`
	SocialEngagement    int     `json:"social_engagement"`
	ChallengePreference int     `json:"challenge_preference"`
	FocusLevel          int     `json:"focus_level"`
}

// MoodInsights is the output of slider-based mood analysis.
type MoodInsights struct {
	MoodScore       int          `json:"mood_score"`
	MoodCategory    string       `json:"mood_category"`
	Patterns        MoodPatterns `json:"patterns"`
	Insights        []string     `json:"insights"`
	Recommendations []string     `json:"recommendations"`
}
