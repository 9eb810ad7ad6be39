// Package scoring computes per-candidate weighted scores across four axes
// and applies the field-consistency penalty that makes exploration levels
// meaningful.
package scoring

import "fmt"

// Default axis weights. They must sum to 1.0.
const (
	DefaultSkillWeight      = 0.40
	DefaultInterestWeight   = 0.25
	DefaultSalaryWeight     = 0.20
	DefaultExperienceWeight = 0.15
)

// Default skill scoring adjustments.
const (
	DefaultCertificationBonus  = 0.10
	DefaultRecencyBonus        = 0.05
	DefaultRecencyWindowDays   = 180
	DefaultMandatoryPenalty    = 0.50
	proficiencyPenaltyPerLevel = 0.25
)

// Default consistency penalty parameters.
const (
	DefaultBasePenalty = 0.30
	DefaultMaxPenalty  = 0.60
)

// weightTolerance is how far the axis weights may drift from 1.0.
const weightTolerance = 0.01

// Weights holds the four axis weights.
type Weights struct {
	Skill      float64 `json:"skill"`
	Interest   float64 `json:"interest"`
	Salary     float64 `json:"salary"`
	Experience float64 `json:"experience"`
}

// PenaltyConfig controls the field-consistency penalty.
type PenaltyConfig struct {
	// BasePenalty is the penalty before the exploration multiplier.
	BasePenalty float64 `json:"base_penalty"`
	// MaxPenalty caps the applied penalty so no single axis can push the
	// total below zero.
	MaxPenalty float64 `json:"max_penalty"`
}

// Config holds all scorer parameters.
type Config struct {
	Weights Weights `json:"weights"`

	CertificationBonus float64 `json:"certification_bonus"`
	RecencyBonus       float64 `json:"recency_bonus"`
	RecencyWindowDays  int     `json:"recency_window_days"`
	MandatoryPenalty   float64 `json:"mandatory_penalty"`

	Penalty PenaltyConfig `json:"penalty"`
}

// explorationMultipliers scales the consistency penalty by exploration level
// 1..5. Level 1 is conservative, level 5 barely penalizes field crossing.
var explorationMultipliers = map[int]float64{
	1: 2.0,
	2: 1.5,
	3: 1.0,
	4: 0.7,
	5: 0.4,
}

// DefaultConfig returns the scorer defaults.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skill:      DefaultSkillWeight,
			Interest:   DefaultInterestWeight,
			Salary:     DefaultSalaryWeight,
			Experience: DefaultExperienceWeight,
		},
		CertificationBonus: DefaultCertificationBonus,
		RecencyBonus:       DefaultRecencyBonus,
		RecencyWindowDays:  DefaultRecencyWindowDays,
		MandatoryPenalty:   DefaultMandatoryPenalty,
		Penalty: PenaltyConfig{
			BasePenalty: DefaultBasePenalty,
			MaxPenalty:  DefaultMaxPenalty,
		},
	}
}

// Validate checks that the configuration can produce scores in [0,1].
// A scorer must refuse to start on an invalid configuration.
func (c Config) Validate() error {
	sum := c.Weights.Skill + c.Weights.Interest + c.Weights.Salary + c.Weights.Experience
	if sum < 1.0-weightTolerance || sum > 1.0+weightTolerance {
		return &ConfigError{Message: fmt.Sprintf("axis weights sum to %.3f, want 1.0", sum)}
	}
	for name, weight := range map[string]float64{
		"skill":      c.Weights.Skill,
		"interest":   c.Weights.Interest,
		"salary":     c.Weights.Salary,
		"experience": c.Weights.Experience,
	} {
		if weight < 0 {
			return &ConfigError{Message: fmt.Sprintf("%s weight is negative", name)}
		}
	}
	if c.Penalty.BasePenalty < 0 || c.Penalty.MaxPenalty < 0 {
		return &ConfigError{Message: "penalty values must not be negative"}
	}
	if c.Penalty.BasePenalty > c.Penalty.MaxPenalty {
		return &ConfigError{Message: "base penalty exceeds max penalty"}
	}
	return nil
}

// ExplorationMultiplier returns the penalty multiplier for an exploration
// level, clamping out-of-range levels to the nearest defined level.
func ExplorationMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return explorationMultipliers[level]
}

// ConfigError represents an invalid scorer configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid scoring config: " + e.Message
}
