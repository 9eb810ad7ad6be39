package scoring

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// interestLevelWeights maps declared interest levels to their weight in the
// interest sub-score. Free-form interests carry the free-form weight.
var interestLevelWeights = map[string]float64{
	types.InterestLow:      0.25,
	types.InterestMedium:   0.50,
	types.InterestHigh:     0.75,
	types.InterestVeryHigh: 1.00,
}

const freeFormInterestWeight = 0.5

// neutralInterestScore applies when the user declared no interests at all.
const neutralInterestScore = 0.5

// interestMatch scores how much of the user's declared interest weight the
// career text covers. Returns the score and the matched interest names.
func interestMatch(summary *types.SummarizedProfile, career *types.Career) (float64, []string) {
	if len(summary.Interests) == 0 {
		return neutralInterestScore, nil
	}

	textLower := strings.ToLower(career.Title + " " + career.Description)

	numerator := 0.0
	denominator := 0.0
	matched := make([]string, 0)

	for _, interest := range summary.Interests {
		weight := freeFormInterestWeight
		if levelWeight, ok := interestLevelWeights[interest.Level]; ok {
			weight = levelWeight
		}
		denominator += weight

		if strings.Contains(textLower, strings.ToLower(interest.Name)) {
			numerator += weight
			matched = append(matched, interest.Name)
		}
	}

	if denominator == 0 {
		return neutralInterestScore, nil
	}
	return clamp01(numerator / denominator), matched
}
