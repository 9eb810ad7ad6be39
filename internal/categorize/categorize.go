// Package categorize assigns scored candidates to exploration zones and
// generates the human-readable reasons attached to each recommendation.
package categorize

import (
	"github.com/jonathan/career-compass/internal/types"
)

// Default zone thresholds on the total score.
const (
	DefaultSafeThreshold      = 0.7
	DefaultStretchThreshold   = 0.5
	DefaultAdventureThreshold = 0.3
)

// Thresholds holds the absolute score cut-offs for each zone.
type Thresholds struct {
	Safe      float64 `json:"safe"`
	Stretch   float64 `json:"stretch"`
	Adventure float64 `json:"adventure"`
}

// DefaultThresholds returns the default zone thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Safe:      DefaultSafeThreshold,
		Stretch:   DefaultStretchThreshold,
		Adventure: DefaultAdventureThreshold,
	}
}

// Validate checks that the thresholds are ordered.
func (t Thresholds) Validate() error {
	if t.Safe < t.Stretch || t.Stretch < t.Adventure {
		return &ConfigError{Message: "thresholds must satisfy safe >= stretch >= adventure"}
	}
	return nil
}

// ConfigError represents invalid categorizer configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid categorizer config: " + e.Message
}

// Context carries the field and seniority alignment facts the zone decision
// needs alongside the score.
type Context struct {
	UserField       types.FieldMatch
	CareerField     types.FieldMatch
	UserSeniority   string
	CareerSeniority string
	// RelatedFields reports whether the two fields are taxonomy-adjacent.
	RelatedFields bool
}

// SameField reports whether user and career share a field.
func (c Context) SameField() bool {
	return c.UserField.Value == c.CareerField.Value
}

// SeniorityGap is the career's ladder position minus the user's. Positive
// means a step up, negative a step down.
func (c Context) SeniorityGap() int {
	return types.SeniorityIndex(c.CareerSeniority) - types.SeniorityIndex(c.UserSeniority)
}

// Categorize assigns the exploration zone for a scored candidate. The
// decision is two-dimensional: absolute score against the thresholds, and
// the field/seniority alignment tuple.
func Categorize(score types.ScoreBreakdown, ctx Context, thresholds Thresholds) types.Category {
	same := ctx.SameField()
	related := ctx.RelatedFields
	gap := ctx.SeniorityGap()

	if same && score.SkillMatch >= DefaultSafeThreshold && gap <= 1 && score.Total >= thresholds.Safe {
		return types.CategorySafe
	}

	if (same || related) && gap <= 2 && score.Total >= thresholds.Safe {
		return types.CategoryStretch
	}

	if score.Total >= thresholds.Stretch {
		if same && gap <= 0 {
			return types.CategorySafe
		}
		if same || related {
			return types.CategoryStretch
		}
		return types.CategoryAdventure
	}

	// Below the stretch threshold only a same-field step down in seniority
	// still counts as a stretch; everything else is an adventure.
	if same && gap <= -1 {
		return types.CategoryStretch
	}
	return types.CategoryAdventure
}

// Confidence computes a recommendation's confidence from its total score,
// zone, and the classifier's certainty about both fields. Clamped to [0.1, 1].
func Confidence(score types.ScoreBreakdown, category types.Category, ctx Context) float64 {
	confidence := score.Total
	switch category {
	case types.CategorySafe:
		confidence += 0.1
	case types.CategoryAdventure:
		confidence -= 0.1
		if confidence < 0.3 {
			confidence = 0.3
		}
	}

	fieldCertainty := (ctx.UserField.Confidence + ctx.CareerField.Confidence) / 2
	confidence *= 0.7 + 0.3*fieldCertainty

	if confidence < 0.1 {
		return 0.1
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
