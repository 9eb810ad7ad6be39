package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	lastTier   ModelTier
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier ModelTier) (string, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func recommendations(ids ...string) []types.Recommendation {
	result := make([]types.Recommendation, 0, len(ids))
	for i, id := range ids {
		result = append(result, types.Recommendation{
			Career: &types.Career{ID: id, Title: "Career " + id},
			Score:  types.ScoreBreakdown{Total: 1.0 - float64(i)*0.1},
		})
	}
	return result
}

func TestRefineReordersByModelResponse(t *testing.T) {
	client := &fakeClient{response: `["c", "a", "b"]`}
	refiner := NewRefiner(client)

	result, err := refiner.Refine(context.Background(), recommendations("a", "b", "c"), "prefer hands-on work")
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "c", result[0].Career.ID)
	assert.Equal(t, "a", result[1].Career.ID)
	assert.Equal(t, "b", result[2].Career.ID)

	assert.Equal(t, TierLite, client.lastTier)
	assert.Contains(t, client.lastPrompt, "prefer hands-on work")
	assert.Contains(t, client.lastPrompt, `"id":"a"`)
}

func TestRefineEmptyPromptSkipsModel(t *testing.T) {
	client := &fakeClient{response: `["b", "a"]`}
	refiner := NewRefiner(client)

	input := recommendations("a", "b")
	result, err := refiner.Refine(context.Background(), input, "   ")
	require.NoError(t, err)

	assert.Equal(t, input, result)
	assert.Empty(t, client.lastPrompt)
}

func TestRefineClientErrorPropagates(t *testing.T) {
	refiner := NewRefiner(&fakeClient{err: errors.New("quota exceeded")})

	_, err := refiner.Refine(context.Background(), recommendations("a"), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refinement call failed")
}

func TestRefineMalformedResponse(t *testing.T) {
	refiner := NewRefiner(&fakeClient{response: "not json"})

	_, err := refiner.Refine(context.Background(), recommendations("a"), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse refinement response")
}

func TestRefineTruncatesLongDescriptions(t *testing.T) {
	client := &fakeClient{response: `["a"]`}
	refiner := NewRefiner(client)

	input := recommendations("a")
	input[0].Career.Description = strings.Repeat("x", 1000)

	_, err := refiner.Refine(context.Background(), input, "shorter")
	require.NoError(t, err)
	assert.NotContains(t, client.lastPrompt, strings.Repeat("x", 201))
}

func TestRefineTruncatesDescriptionsOnRuneBoundary(t *testing.T) {
	client := &fakeClient{response: `["a"]`}
	refiner := NewRefiner(client)

	input := recommendations("a")
	input[0].Career.Description = strings.Repeat("好", 300)

	_, err := refiner.Refine(context.Background(), input, "shorter")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(client.lastPrompt))
	assert.Contains(t, client.lastPrompt, strings.Repeat("好", 200))
	assert.NotContains(t, client.lastPrompt, strings.Repeat("好", 201))
}

func TestApplyOrder(t *testing.T) {
	input := recommendations("a", "b", "c")

	t.Run("omitted ids keep their original order at the tail", func(t *testing.T) {
		result := applyOrder(input, []string{"b"})
		require.Len(t, result, 3)
		assert.Equal(t, "b", result[0].Career.ID)
		assert.Equal(t, "a", result[1].Career.ID)
		assert.Equal(t, "c", result[2].Career.ID)
	})

	t.Run("invented ids are ignored", func(t *testing.T) {
		result := applyOrder(input, []string{"ghost", "c", "a", "b"})
		require.Len(t, result, 3)
		assert.Equal(t, "c", result[0].Career.ID)
	})

	t.Run("duplicate ids count once", func(t *testing.T) {
		result := applyOrder(input, []string{"c", "c", "a", "b"})
		require.Len(t, result, 3)
		assert.Equal(t, "c", result[0].Career.ID)
		assert.Equal(t, "a", result[1].Career.ID)
	})
}
