package categorize

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// maxReasons caps the reason list on every recommendation.
const maxReasons = 5

// Skill statement thresholds on the skill sub-score.
const (
	strongSkillThreshold     = 0.7
	foundationSkillThreshold = 0.4
)

// Reasons generates the ordered reason strings for a recommendation: field
// transition first, then seniority, skills, a zone statement, and a market
// demand note when the catalog carries one. At most five survive.
func Reasons(career *types.Career, score types.ScoreBreakdown, category types.Category, ctx Context) []string {
	reasons := make([]string, 0, maxReasons)

	reasons = append(reasons, fieldReason(ctx))
	reasons = append(reasons, seniorityReason(ctx))
	reasons = append(reasons, skillReason(score))
	reasons = append(reasons, categoryReason(category))

	if demand := demandReason(career); demand != "" {
		reasons = append(reasons, demand)
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

func fieldReason(ctx Context) string {
	switch {
	case ctx.SameField():
		return fmt.Sprintf("Stays within your current field of %s", fieldLabel(ctx.UserField.Value))
	case ctx.RelatedFields:
		return fmt.Sprintf("A transition into %s, a field related to your background in %s",
			fieldLabel(ctx.CareerField.Value), fieldLabel(ctx.UserField.Value))
	default:
		return fmt.Sprintf("A move into a new field: %s", fieldLabel(ctx.CareerField.Value))
	}
}

func seniorityReason(ctx Context) string {
	gap := ctx.SeniorityGap()
	switch {
	case gap == 0:
		return "Matches your current seniority level"
	case gap > 0 && ctx.CareerSeniority == types.SeniorityExecutive:
		return "An executive advancement from your current level"
	case gap > 0:
		return "A step up in seniority from your current level"
	default:
		return "Room to grow back up after a deliberate step down"
	}
}

func skillReason(score types.ScoreBreakdown) string {
	missing := score.Explanation.MissingMandatorySkills
	if len(missing) > 0 {
		return fmt.Sprintf("An opportunity to develop %s", strings.Join(missing, ", "))
	}

	switch {
	case score.SkillMatch >= strongSkillThreshold:
		matched := score.Explanation.MatchedSkills
		if len(matched) > 0 {
			return fmt.Sprintf("Strong skill alignment (%s)", strings.Join(matched, ", "))
		}
		return "Strong skill alignment with the role's requirements"
	case score.SkillMatch >= foundationSkillThreshold:
		return "A good foundation of the required skills"
	default:
		return "An opportunity to learn a largely new skill set"
	}
}

func categoryReason(category types.Category) string {
	switch category {
	case types.CategorySafe:
		return "A high-confidence match you could step into today"
	case types.CategoryStretch:
		return "An achievable stretch with moderate skill or seniority growth"
	default:
		return "An aspirational move that would significantly broaden your path"
	}
}

func demandReason(career *types.Career) string {
	switch career.DemandLevel {
	case "very_high":
		return "Market demand for this role is very high"
	case "high":
		return "Market demand for this role is high"
	}
	return ""
}

// fieldLabel renders a field tag for display.
func fieldLabel(field string) string {
	if field == "" {
		return types.FieldOther
	}
	return strings.ReplaceAll(field, "_", " ")
}
