package classify

import (
	"strings"

	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// Keyword scoring constants for career-field inference.
const (
	primaryTextScore    = 2.0
	primaryTitleScore   = 3.0
	secondaryTextScore  = 1.0
	secondaryTitleScore = 2.0

	// Exclusion tokens in the title boost executive leadership and penalize
	// every other field. This keeps "VP of Engineering" out of technology.
	exclusionExecutiveBoost = 4.0
	exclusionPenalty        = 2.0

	executiveSeniorityBoost = 3.0
	seniorityIndicatorBoost = 0.5

	// confidenceDivisor normalizes the winning score into [0,1].
	confidenceDivisor = 5.0
)

// Classifier infers fields and seniority against a taxonomy registry.
type Classifier struct {
	registry *taxonomy.Registry
}

// New creates a classifier over the given registry.
func New(registry *taxonomy.Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Registry exposes the underlying taxonomy registry.
func (c *Classifier) Registry() *taxonomy.Registry {
	return c.registry
}

// CareerField infers the field of a career record from its title and
// description. Returns ("other", 0.0) when no field scores above zero.
func (c *Classifier) CareerField(career *types.Career) types.FieldMatch {
	return c.ClassifyText(career.Title, career.Description)
}

// ClassifyText infers the field of free career text. The title is scored
// separately so title hits can carry a boost over description hits.
func (c *Classifier) ClassifyText(title, description string) types.FieldMatch {
	titleLower := strings.ToLower(title)
	textLower := titleLower + " " + strings.ToLower(description)
	seniority := Seniority(title)

	bestField := types.FieldOther
	bestScore := 0.0

	for _, field := range c.registry.Fields() {
		profile, _ := c.registry.Lookup(field)
		score := 0.0

		for _, keyword := range profile.Primary {
			if strings.Contains(textLower, keyword) {
				if strings.Contains(titleLower, keyword) {
					score += primaryTitleScore * profile.Weight
				} else {
					score += primaryTextScore * profile.Weight
				}
			}
		}

		for _, keyword := range profile.Secondary {
			if strings.Contains(textLower, keyword) {
				if strings.Contains(titleLower, keyword) {
					score += secondaryTitleScore * profile.Weight
				} else {
					score += secondaryTextScore * profile.Weight
				}
			}
		}

		for _, keyword := range profile.Exclusions {
			if strings.Contains(titleLower, keyword) {
				if field == types.FieldExecutiveLeadership {
					score += exclusionExecutiveBoost * profile.Weight
				} else {
					score -= exclusionPenalty
				}
			}
		}

		if seniority == types.SeniorityExecutive && field == types.FieldExecutiveLeadership {
			score += executiveSeniorityBoost
		}
		// The indicator boost is a tie-breaker for fields that already have
		// keyword evidence; on its own it must not pull text out of "other".
		if score > 0 {
			for _, indicator := range profile.SeniorityIndicators {
				if indicator == seniority {
					score += seniorityIndicatorBoost
					break
				}
			}
		}

		if score > bestScore {
			bestScore = score
			bestField = field
		}
	}

	if bestScore <= 0 {
		return types.FieldMatch{Value: types.FieldOther, Confidence: 0.0}
	}

	confidence := bestScore / confidenceDivisor
	if confidence > 1.0 {
		confidence = 1.0
	}

	return types.FieldMatch{Value: bestField, Confidence: confidence}
}
