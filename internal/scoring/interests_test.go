package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func TestInterestMatchNeutralWithoutInterests(t *testing.T) {
	score, matched := interestMatch(&types.SummarizedProfile{}, &types.Career{Title: "Analyst"})
	assert.InDelta(t, 0.5, score, 1e-9)
	assert.Empty(t, matched)
}

func TestInterestMatchWeightedByLevel(t *testing.T) {
	summary := &types.SummarizedProfile{
		Interests: []types.Interest{
			{Name: "machine learning", Level: types.InterestVeryHigh},
			{Name: "gardening", Level: types.InterestLow},
		},
	}
	career := &types.Career{
		Title:       "Machine Learning Engineer",
		Description: "Train and deploy models",
	}

	score, matched := interestMatch(summary, career)

	// 1.0 of 1.25 total interest weight is covered.
	assert.InDelta(t, 0.8, score, 1e-9)
	assert.Equal(t, []string{"machine learning"}, matched)
}

func TestInterestMatchFreeFormWeight(t *testing.T) {
	summary := &types.SummarizedProfile{
		Interests: []types.Interest{
			{Name: "robotics"}, // free-form, no level
			{Name: "teaching", Level: types.InterestVeryHigh},
		},
	}
	career := &types.Career{Title: "Robotics Technician"}

	score, matched := interestMatch(summary, career)

	// Free-form weight 0.5 of 1.5 total.
	assert.InDelta(t, 1.0/3.0, score, 1e-9)
	assert.Equal(t, []string{"robotics"}, matched)
}

func TestInterestMatchFullCoverage(t *testing.T) {
	summary := &types.SummarizedProfile{
		Interests: []types.Interest{
			{Name: "design", Level: types.InterestHigh},
		},
	}
	career := &types.Career{Title: "Product Designer", Description: "Own design systems"}

	score, matched := interestMatch(summary, career)
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Len(t, matched, 1)
}

func TestInterestMatchNoCoverage(t *testing.T) {
	summary := &types.SummarizedProfile{
		Interests: []types.Interest{
			{Name: "sailing", Level: types.InterestHigh},
		},
	}
	career := &types.Career{Title: "Accountant"}

	score, matched := interestMatch(summary, career)
	assert.Zero(t, score)
	assert.Empty(t, matched)
}
