package engine

import (
	"context"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/types"
)

// Explain produces the structured explanation for one user/career pair. It is
// a pure projection of the same breakdown used to rank: scoring a career and
// explaining it never disagree.
func (e *Engine) Explain(_ context.Context, userProfile *types.UserProfile, career *types.Career, explorationLevel int) (*types.Explanation, error) {
	if err := profile.Validate(userProfile); err != nil {
		return nil, err
	}
	if explorationLevel < 1 || explorationLevel > 5 {
		explorationLevel = e.config.ExplorationLevel
	}

	summary := profile.Summarize(userProfile)
	userField := e.classifier.UserField(summary)
	userSeniority := e.classifier.UserSeniority(summary)

	recommendation := e.buildRecommendation(summary, career, userField, userSeniority, explorationLevel)
	careerField := e.scorer.CareerField(career)

	return &types.Explanation{
		CareerID:        career.ID,
		CareerTitle:     career.Title,
		Score:           recommendation.Score,
		UserField:       userField,
		CareerField:     careerField,
		UserSeniority:   userSeniority,
		CareerSeniority: classify.CareerSeniority(career),
		Category:        recommendation.Category,
		Reasons:         recommendation.Reasons,
		Confidence:      recommendation.Confidence,
	}, nil
}
