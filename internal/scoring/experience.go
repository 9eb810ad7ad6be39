package scoring

import (
	"github.com/jonathan/career-compass/internal/types"
)

// Experience levels form a five-step ladder distinct from career seniority
// tags. The two taxonomies meet only here and in the categorizer's gap
// computation.
const (
	ExperienceEntry  = "entry"
	ExperienceJunior = "junior"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
	ExperienceExpert = "expert"
)

var experienceOrder = map[string]int{
	ExperienceEntry:  0,
	ExperienceJunior: 1,
	ExperienceMid:    2,
	ExperienceSenior: 3,
	ExperienceExpert: 4,
}

// experienceDistanceScores maps the level distance to the sub-score.
// Distances of three or more all score the minimum.
var experienceDistanceScores = []float64{1.0, 0.8, 0.6, 0.4}

// UserExperienceLevel maps total years of experience to a ladder level.
func UserExperienceLevel(years float64) string {
	switch {
	case years < 1:
		return ExperienceEntry
	case years < 3:
		return ExperienceJunior
	case years < 7:
		return ExperienceMid
	case years < 12:
		return ExperienceSenior
	default:
		return ExperienceExpert
	}
}

// careerExperienceLevel derives a career's target experience level. The
// stored minimum years are authoritative; the seniority tag is the fallback,
// and careers with neither default to mid.
func careerExperienceLevel(career *types.Career) string {
	if career.MinYears > 0 {
		return UserExperienceLevel(float64(career.MinYears))
	}

	switch career.Seniority {
	case types.SeniorityJunior:
		return ExperienceJunior
	case types.SeniorityMid:
		return ExperienceMid
	case types.SenioritySenior:
		return ExperienceSenior
	case types.SeniorityExecutive:
		return ExperienceExpert
	}
	return ExperienceMid
}

// experienceMatch scores the distance between the user's level and the
// career's target level. Returns the score and the user's level tag.
func experienceMatch(summary *types.SummarizedProfile, career *types.Career) (float64, string) {
	userLevel := UserExperienceLevel(summary.YearsExperience)
	targetLevel := careerExperienceLevel(career)

	distance := experienceOrder[userLevel] - experienceOrder[targetLevel]
	if distance < 0 {
		distance = -distance
	}
	if distance >= len(experienceDistanceScores) {
		distance = len(experienceDistanceScores) - 1
	}

	return experienceDistanceScores[distance], userLevel
}
