package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
)

// FactorWeights are the per-factor weights of the recommendation engine's
// weighted sum.
type FactorWeights struct {
	MoodMatch       float64 `yaml:"mood_match"`
	PreferenceMatch float64 `yaml:"preference_match"`
	WellnessMatch   float64 `yaml:"wellness_match"`
	PeerSimilarity  float64 `yaml:"peer_similarity"`
	History         float64 `yaml:"history"`
	Accessibility   float64 `yaml:"accessibility"`
}

// EmotionWeights adjust the derived mood score per unit of detected emotion
// intensity.
type EmotionWeights struct {
	Joy      float64 `yaml:"joy"`
	Sadness  float64 `yaml:"sadness"`
	Anger    float64 `yaml:"anger"`
	Fear     float64 `yaml:"fear"`
	Surprise float64 `yaml:"surprise"`
}

// ScoringConfig bundles every tunable constant of the mood analyzer and the
// recommendation engine. It is built once at startup and passed into the
// service constructors; nothing mutates it afterwards.
type ScoringConfig struct {
	Factors  FactorWeights  `yaml:"factors"`
	Emotions EmotionWeights `yaml:"emotions"`
}

// DefaultScoringConfig returns the reference weight policy.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Factors: FactorWeights{
			MoodMatch:       0.4,
			PreferenceMatch: 0.3,
			WellnessMatch:   0.2,
			PeerSimilarity:  0.1,
			History:         0.1,
			Accessibility:   0.05,
		},
		Emotions: EmotionWeights{
			Joy:      0.3,
			Sadness:  -0.3,
			Anger:    -0.2,
			Fear:     -0.2,
			Surprise: 0.1,
		},
	}
}

// LoadScoringConfig returns the defaults, overridden by the YAML file at path
// when one is given. A missing or unreadable file is an error; an empty path
// just means defaults.
func LoadScoringConfig(path string, log *logger.Logger) (ScoringConfig, error) {
	cfg := DefaultScoringConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scoring config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scoring config: %w", err)
	}
	if log != nil {
		log.Info("Loaded scoring config overrides", "path", path)
	}
	return cfg, nil
}
