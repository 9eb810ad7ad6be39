package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// refineBoostPerMatch is added to a recommendation's total score for every
// prompt token found in its career text.
const refineBoostPerMatch = 0.1

// Refiner reorders recommendations according to a free-form prompt. External
// implementations must complete within the engine's refine timeout.
type Refiner interface {
	Refine(ctx context.Context, recommendations []types.Recommendation, prompt string) ([]types.Recommendation, error)
}

// Refine reorders the current recommendations according to a free-form
// prompt. With an external refiner attached the call is delegated under the
// configured timeout; any failure returns the input unchanged with the
// RefineFailed tag set. Without one, local keyword boosting applies.
func (e *Engine) Refine(ctx context.Context, recommendations []types.Recommendation, prompt string, _ *types.UserProfile) types.RefineResult {
	if e.refiner != nil {
		refineCtx, cancel := context.WithTimeout(ctx, e.config.RefineTimeout)
		defer cancel()

		refined, err := e.refiner.Refine(refineCtx, recommendations, prompt)
		if err != nil {
			return types.RefineResult{Recommendations: recommendations, RefineFailed: true}
		}
		return types.RefineResult{Recommendations: refined}
	}

	return types.RefineResult{Recommendations: localRefine(recommendations, prompt)}
}

// localRefine boosts each recommendation's total by a fixed amount per prompt
// token appearing in its career text, then re-sorts. An empty prompt returns
// the input order untouched.
func localRefine(recommendations []types.Recommendation, prompt string) []types.Recommendation {
	tokens := strings.Fields(strings.ToLower(prompt))
	if len(tokens) == 0 {
		return recommendations
	}

	refined := append([]types.Recommendation(nil), recommendations...)
	for i := range refined {
		textLower := strings.ToLower(refined[i].Career.Title + " " + refined[i].Career.Description)

		matches := 0
		for _, token := range tokens {
			if strings.Contains(textLower, token) {
				matches++
			}
		}

		total := refined[i].Score.Total + refineBoostPerMatch*float64(matches)
		if total > 1.0 {
			total = 1.0
		}
		refined[i].Score.Total = total
	}

	sort.SliceStable(refined, func(i, j int) bool {
		return refined[i].Score.Total > refined[j].Score.Total
	})
	return refined
}
