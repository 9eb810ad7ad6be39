package classify

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Fragment weights for user-field inference. The current role carries the
// strongest signal; individual skills and resume text are weaker evidence.
const (
	roleFragmentWeight  = 3.0
	skillFragmentWeight = 1.5

	secondaryFragmentFactor = 0.7
)

// weightedFragment is one piece of profile text with its evidence weight.
type weightedFragment struct {
	text   string
	weight float64
}

// UserField infers the user's field from the weighted text fragments of a
// summarized profile. Confidence is the winning field's share of the total
// score across all fields, so a profile split between fields scores low.
func (c *Classifier) UserField(summary *types.SummarizedProfile) types.FieldMatch {
	fragments := collectFragments(summary)
	if len(fragments) == 0 {
		return types.FieldMatch{Value: types.FieldOther, Confidence: 0.0}
	}

	bestField := types.FieldOther
	bestScore := 0.0
	totalScore := 0.0

	for _, field := range c.registry.Fields() {
		profile, _ := c.registry.Lookup(field)
		score := 0.0

		for _, fragment := range fragments {
			for _, keyword := range profile.Primary {
				if strings.Contains(fragment.text, keyword) {
					score += fragment.weight * profile.Weight
				}
			}
			for _, keyword := range profile.Secondary {
				if strings.Contains(fragment.text, keyword) {
					score += secondaryFragmentFactor * fragment.weight * profile.Weight
				}
			}
		}

		totalScore += score
		if score > bestScore {
			bestScore = score
			bestField = field
		}
	}

	if bestScore <= 0 || totalScore <= 0 {
		return types.FieldMatch{Value: types.FieldOther, Confidence: 0.0}
	}

	return types.FieldMatch{Value: bestField, Confidence: bestScore / totalScore}
}

// UserSeniority maps the user's current role title to a seniority tag.
func (c *Classifier) UserSeniority(summary *types.SummarizedProfile) string {
	return Seniority(summary.CurrentRole)
}

// collectFragments gathers lowercased weighted text fragments from a summary.
func collectFragments(summary *types.SummarizedProfile) []weightedFragment {
	fragments := make([]weightedFragment, 0, len(summary.TechnicalSkills)+2)

	if summary.CurrentRole != "" {
		fragments = append(fragments, weightedFragment{
			text:   strings.ToLower(summary.CurrentRole),
			weight: roleFragmentWeight,
		})
	}

	for _, skill := range summary.TechnicalSkills {
		if skill.Name == "" {
			continue
		}
		fragments = append(fragments, weightedFragment{
			text:   strings.ToLower(skill.Name),
			weight: skillFragmentWeight,
		})
	}

	if summary.ResumeExcerpt != "" {
		fragments = append(fragments, weightedFragment{
			text:   strings.ToLower(summary.ResumeExcerpt),
			weight: skillFragmentWeight,
		})
	}

	return fragments
}
