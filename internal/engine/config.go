// Package engine orchestrates the recommendation pipeline: summarize,
// pre-filter, guard, score, categorize, explain.
package engine

import (
	"time"

	"github.com/jonathan/career-compass/internal/categorize"
	"github.com/jonathan/career-compass/internal/prefilter"
	"github.com/jonathan/career-compass/internal/scoring"
)

// Engine-level defaults.
const (
	DefaultMaxRecommendations = 20
	DefaultMinRecommendations = 5
	DefaultExplorationLevel   = 3
	DefaultRefineTimeout      = 15 * time.Second

	// scoreConcurrency bounds parallel candidate scoring within one request.
	scoreConcurrency = 8
)

// Config holds every engine knob. Construction fails on invalid values.
type Config struct {
	Scoring    scoring.Config         `json:"scoring"`
	Thresholds categorize.Thresholds  `json:"thresholds"`
	Prefilter  prefilter.Config       `json:"prefilter"`
	Guard      prefilter.GuardConfig  `json:"guard"`

	MaxRecommendations int `json:"max_recommendations"`
	MinRecommendations int `json:"min_recommendations"`
	ExplorationLevel   int `json:"exploration_level"`

	// UseTraditionalFilter re-applies a plain skill/interest filter after the
	// guard; when it would empty the set, the guard output is kept.
	UseTraditionalFilter bool `json:"use_traditional_filter"`

	// RefineTimeout bounds an external refinement call.
	RefineTimeout time.Duration `json:"refine_timeout"`
}

// DefaultConfig returns the engine defaults, with the enhanced pre-filter
// path enabled.
func DefaultConfig() Config {
	return Config{
		Scoring:    scoring.DefaultConfig(),
		Thresholds: categorize.DefaultThresholds(),
		Prefilter: prefilter.Config{
			Limit:       prefilter.DefaultLimit,
			UseEnhanced: true,
		},
		Guard: prefilter.GuardConfig{
			MaxPromptSize: prefilter.DefaultMaxPromptSize,
			MaxCandidates: prefilter.DefaultMaxCandidatesForPrompt,
		},
		MaxRecommendations: DefaultMaxRecommendations,
		MinRecommendations: DefaultMinRecommendations,
		ExplorationLevel:   DefaultExplorationLevel,
		RefineTimeout:      DefaultRefineTimeout,
	}
}

// Validate checks the engine configuration. An engine must refuse to start
// on any violation.
func (c Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if c.MaxRecommendations <= 0 {
		return &ConfigError{Message: "max recommendations must be positive"}
	}
	if c.MinRecommendations < 0 {
		return &ConfigError{Message: "min recommendations must not be negative"}
	}
	if c.MinRecommendations > c.MaxRecommendations {
		return &ConfigError{Message: "min recommendations exceeds max"}
	}
	if c.ExplorationLevel < 1 || c.ExplorationLevel > 5 {
		return &ConfigError{Message: "exploration level must be in 1..5"}
	}
	return nil
}
