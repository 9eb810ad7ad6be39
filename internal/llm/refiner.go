package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Refiner delegates recommendation reordering to an LLM. It implements the
// engine's Refiner contract: any failure is returned as an error so the
// engine can fall back to the unmodified list.
type Refiner struct {
	client Client
}

// NewRefiner creates a refinement provider over an LLM client.
func NewRefiner(client Client) *Refiner {
	return &Refiner{client: client}
}

// refineEntry is the per-recommendation projection sent to the model.
type refineEntry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
}

// Refine asks the model to reorder the recommendations according to the
// prompt and applies the returned ID order. Recommendations the model drops
// or invents are handled conservatively: dropped ones keep their relative
// order at the tail, invented ones are ignored.
func (r *Refiner) Refine(ctx context.Context, recommendations []types.Recommendation, prompt string) ([]types.Recommendation, error) {
	if len(recommendations) == 0 || strings.TrimSpace(prompt) == "" {
		return recommendations, nil
	}

	entries := make([]refineEntry, 0, len(recommendations))
	for _, recommendation := range recommendations {
		description := recommendation.Career.Description
		if runes := []rune(description); len(runes) > 200 {
			description = string(runes[:200])
		}
		entries = append(entries, refineEntry{
			ID:          recommendation.Career.ID,
			Title:       recommendation.Career.Title,
			Description: description,
			Score:       recommendation.Score.Total,
		})
	}

	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	request := fmt.Sprintf(refinePromptTemplate, prompt, entriesJSON)

	responseText, err := r.client.GenerateJSON(ctx, request, TierLite)
	if err != nil {
		return nil, fmt.Errorf("refinement call failed: %w", err)
	}

	var orderedIDs []string
	if err := json.Unmarshal([]byte(responseText), &orderedIDs); err != nil {
		return nil, fmt.Errorf("failed to parse refinement response: %w", err)
	}

	return applyOrder(recommendations, orderedIDs), nil
}

// applyOrder reorders recommendations to match the given ID sequence,
// appending anything the sequence omits in original order.
func applyOrder(recommendations []types.Recommendation, orderedIDs []string) []types.Recommendation {
	byID := make(map[string]types.Recommendation, len(recommendations))
	for _, recommendation := range recommendations {
		byID[recommendation.Career.ID] = recommendation
	}

	reordered := make([]types.Recommendation, 0, len(recommendations))
	used := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if recommendation, ok := byID[id]; ok && !used[id] {
			reordered = append(reordered, recommendation)
			used[id] = true
		}
	}
	for _, recommendation := range recommendations {
		if !used[recommendation.Career.ID] {
			reordered = append(reordered, recommendation)
		}
	}
	return reordered
}

// refinePromptTemplate asks for a bare JSON array of career IDs.
const refinePromptTemplate = `You reorder career recommendations for a user.
User instruction: %q

Current recommendations (JSON array of {id, title, description, score}):
%s

Return ONLY a JSON array of the recommendation ids, reordered so the careers
best matching the user instruction come first. Include every id exactly once.`
