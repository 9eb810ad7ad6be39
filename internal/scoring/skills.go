package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// proficiencyOrder ranks skill levels. Unknown or empty levels are treated as
// intermediate.
var proficiencyOrder = map[string]int{
	"beginner":     0,
	"intermediate": 1,
	"advanced":     2,
	"expert":       3,
}

func proficiencyIndex(level string) int {
	if idx, ok := proficiencyOrder[strings.ToLower(level)]; ok {
		return idx
	}
	return proficiencyOrder["intermediate"]
}

// skillMatchResult carries the skill sub-score plus the facts recorded in the
// explanation.
type skillMatchResult struct {
	score            float64
	matchedSkills    []string
	missingMandatory []string
}

// skillMatch scores the user's skills against a career's requirements.
// Each requirement contributes a weighted proficiency score when the user has
// the skill, with bonuses for certification and recent use. Missing mandatory
// skills accumulate a separate penalty subtracted from the weighted average.
func (s *Scorer) skillMatch(summary *types.SummarizedProfile, career *types.Career, now time.Time) skillMatchResult {
	if len(career.RequiredSkills) == 0 {
		return skillMatchResult{score: 1.0}
	}

	userSkills := make(map[string]types.UserSkill, len(summary.TechnicalSkills))
	for _, skill := range summary.TechnicalSkills {
		userSkills[normalizeSkill(skill.Name)] = skill
	}

	certifications := make([]string, 0, len(summary.Certifications))
	for _, certification := range summary.Certifications {
		certifications = append(certifications, strings.ToLower(certification))
	}

	weightedSum := 0.0
	totalWeight := 0.0
	mandatoryPenalty := 0.0
	matched := make([]string, 0)
	missing := make([]string, 0)

	for _, requirement := range career.RequiredSkills {
		weight := requirement.Weight
		if weight <= 0 {
			weight = 1.0
		}
		totalWeight += weight

		userSkill, found := userSkills[normalizeSkill(requirement.Name)]
		if !found {
			if requirement.Mandatory {
				mandatoryPenalty += s.config.MandatoryPenalty * weight
				missing = append(missing, requirement.Name)
			}
			continue
		}

		score := proficiencyScore(userSkill.Level, requirement.Level)
		if isCertified(certifications, requirement.Name) {
			score += s.config.CertificationBonus
		}
		if recentlyUsed(userSkill.LastUsed, now, s.config.RecencyWindowDays) {
			score += s.config.RecencyBonus
		}

		weightedSum += score * weight
		matched = append(matched, requirement.Name)
	}

	average := weightedSum / totalWeight
	return skillMatchResult{
		score:            clamp01(average - mandatoryPenalty),
		matchedSkills:    matched,
		missingMandatory: missing,
	}
}

// proficiencyScore is 1.0 when the user meets the required level, dropping by
// a quarter per missing level.
func proficiencyScore(userLevel, requiredLevel string) float64 {
	gap := proficiencyIndex(requiredLevel) - proficiencyIndex(userLevel)
	if gap <= 0 {
		return 1.0
	}

	score := 1.0 - proficiencyPenaltyPerLevel*float64(gap)
	if score < 0 {
		return 0.0
	}
	return score
}

// isCertified reports whether any certification mentions the skill.
func isCertified(certifications []string, skillName string) bool {
	needle := strings.ToLower(skillName)
	for _, certification := range certifications {
		if strings.Contains(certification, needle) {
			return true
		}
	}
	return false
}

// recentlyUsed reports whether the skill was used within the recency window.
func recentlyUsed(lastUsed *time.Time, now time.Time, windowDays int) bool {
	if lastUsed == nil {
		return false
	}
	return now.Sub(*lastUsed) <= time.Duration(windowDays)*24*time.Hour
}

// normalizeSkill canonicalizes a skill name for comparison.
func normalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0.0
	}
	if value > 1 {
		return 1.0
	}
	return value
}
