package prefilter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func guardCandidates(n int, descriptionLen int) []Candidate {
	candidates := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, Candidate{
			Career: &types.Career{
				ID:          fmt.Sprintf("c-%03d", i),
				Title:       fmt.Sprintf("Career %03d", i),
				Description: strings.Repeat("x", descriptionLen),
			},
			Relevance: 1.0 - float64(i)/1000,
		})
	}
	return candidates
}

func TestGuardPassesSmallPayloads(t *testing.T) {
	candidates := guardCandidates(10, 100)

	kept, truncated := Guard(devSummary(), candidates, GuardConfig{})

	assert.False(t, truncated)
	assert.Len(t, kept, 10)
}

func TestGuardTruncatesOversizedPayloads(t *testing.T) {
	candidates := guardCandidates(100, 400)

	// A budget far below the payload size forces truncation to a prefix.
	kept, truncated := Guard(devSummary(), candidates, GuardConfig{MaxPromptSize: 5000})

	assert.True(t, truncated)
	require.NotEmpty(t, kept)
	assert.Less(t, len(kept), 100)

	// The survivors are the highest-relevance prefix, order preserved.
	for i, candidate := range kept {
		assert.Equal(t, fmt.Sprintf("c-%03d", i), candidate.Career.ID)
	}

	// The kept prefix itself fits the budget.
	size, err := projectionSize(devSummary(), kept)
	require.NoError(t, err)
	assert.LessOrEqual(t, size, 5000)
}

func TestGuardRespectsCandidateCap(t *testing.T) {
	// Descriptions long enough that the default byte budget trips on a large
	// catalog; the cap then bounds the surviving count.
	candidates := guardCandidates(600, 200)

	kept, truncated := Guard(devSummary(), candidates, GuardConfig{})

	assert.True(t, truncated)
	assert.LessOrEqual(t, len(kept), DefaultMaxCandidatesForPrompt)
}

func TestGuardKeepsAtLeastOneCandidate(t *testing.T) {
	candidates := guardCandidates(5, 400)

	kept, truncated := Guard(devSummary(), candidates, GuardConfig{MaxPromptSize: 10})

	assert.True(t, truncated)
	assert.Len(t, kept, 1)
}

func TestGuardDescriptionsTruncatedInProjection(t *testing.T) {
	short := guardCandidates(1, maxDescriptionChars)
	long := guardCandidates(1, maxDescriptionChars*10)

	shortSize, err := projectionSize(devSummary(), short)
	require.NoError(t, err)
	longSize, err := projectionSize(devSummary(), long)
	require.NoError(t, err)

	// Only the first 200 description characters count toward the budget.
	assert.Equal(t, shortSize, longSize)
}

func TestGuardDescriptionTruncationOnRuneBoundary(t *testing.T) {
	exact := guardCandidates(1, 1)
	exact[0].Career.Description = strings.Repeat("好", maxDescriptionChars)
	long := guardCandidates(1, 1)
	long[0].Career.Description = strings.Repeat("好", maxDescriptionChars+100)

	exactSize, err := projectionSize(devSummary(), exact)
	require.NoError(t, err)
	longSize, err := projectionSize(devSummary(), long)
	require.NoError(t, err)

	// Multi-byte descriptions truncate at the same rune count; a byte-offset
	// cut would split a character and change the serialized size.
	assert.Equal(t, exactSize, longSize)
}
