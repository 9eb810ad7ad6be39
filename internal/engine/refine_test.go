package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func rankedRecommendations() []types.Recommendation {
	return []types.Recommendation{
		{
			Career: &types.Career{ID: "acct", Title: "Accountant", Description: "Prepare financial statements"},
			Score:  types.ScoreBreakdown{Total: 0.80},
		},
		{
			Career: &types.Career{ID: "ds", Title: "Data Scientist", Description: "Analyze data with remote teams"},
			Score:  types.ScoreBreakdown{Total: 0.75},
		},
		{
			Career: &types.Career{ID: "chef", Title: "Chef", Description: "Lead a kitchen"},
			Score:  types.ScoreBreakdown{Total: 0.70},
		},
	}
}

func TestRefineLocalBoostsMatchingCareers(t *testing.T) {
	eng := newTestEngine(t, nil)

	result := eng.Refine(context.Background(), rankedRecommendations(), "remote data", nil)

	require.False(t, result.RefineFailed)
	require.Len(t, result.Recommendations, 3)

	// Both prompt tokens appear in the data scientist's text: 0.75 + 2*0.1.
	assert.Equal(t, "ds", result.Recommendations[0].Career.ID)
	assert.InDelta(t, 0.95, result.Recommendations[0].Score.Total, 1e-9)
	assert.Equal(t, "acct", result.Recommendations[1].Career.ID)
}

func TestRefineEmptyPromptKeepsOrder(t *testing.T) {
	eng := newTestEngine(t, nil)
	input := rankedRecommendations()

	result := eng.Refine(context.Background(), input, "", nil)

	require.False(t, result.RefineFailed)
	require.Len(t, result.Recommendations, 3)
	for i := range input {
		assert.Equal(t, input[i].Career.ID, result.Recommendations[i].Career.ID)
		assert.InDelta(t, input[i].Score.Total, result.Recommendations[i].Score.Total, 1e-9)
	}
}

func TestRefineBoostClampedAtOne(t *testing.T) {
	eng := newTestEngine(t, nil)
	input := []types.Recommendation{
		{
			Career: &types.Career{ID: "r", Title: "Remote Data Analyst", Description: "Remote data work"},
			Score:  types.ScoreBreakdown{Total: 0.95},
		},
	}

	result := eng.Refine(context.Background(), input, "remote data analyst", nil)
	assert.InDelta(t, 1.0, result.Recommendations[0].Score.Total, 1e-9)
}

func TestRefineDoesNotMutateInput(t *testing.T) {
	eng := newTestEngine(t, nil)
	input := rankedRecommendations()

	_ = eng.Refine(context.Background(), input, "data", nil)

	assert.Equal(t, "acct", input[0].Career.ID)
	assert.InDelta(t, 0.80, input[0].Score.Total, 1e-9)
}

type stubRefiner struct {
	result []types.Recommendation
	err    error
}

func (s *stubRefiner) Refine(_ context.Context, recommendations []types.Recommendation, _ string) ([]types.Recommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return recommendations, nil
}

func TestRefineExternalRefinerUsed(t *testing.T) {
	input := rankedRecommendations()
	reversed := []types.Recommendation{input[2], input[1], input[0]}

	eng := newTestEngine(t, nil).WithRefiner(&stubRefiner{result: reversed})

	result := eng.Refine(context.Background(), input, "kitchens", nil)

	require.False(t, result.RefineFailed)
	assert.Equal(t, "chef", result.Recommendations[0].Career.ID)
}

func TestRefineExternalFailureFallsBack(t *testing.T) {
	eng := newTestEngine(t, nil).WithRefiner(&stubRefiner{err: errors.New("model unavailable")})
	input := rankedRecommendations()

	result := eng.Refine(context.Background(), input, "anything", nil)

	assert.True(t, result.RefineFailed)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, "acct", result.Recommendations[0].Career.ID)
}
