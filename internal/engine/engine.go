package engine

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/categorize"
	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/prefilter"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/scoring"
	"github.com/jonathan/career-compass/internal/types"
)

// Composite ranking bonuses applied on top of the total score.
const (
	sameFieldBonus      = 0.10
	executiveMatchBonus = 0.05
	confidenceBonusRate = 0.05
)

// Engine is the recommendation orchestrator. An engine is immutable after
// construction and safe for concurrent use; all state is request-scoped.
type Engine struct {
	config     Config
	classifier *classify.Classifier
	scorer     *scoring.Scorer
	refiner    Refiner
}

// Options adjusts a single recommendation request.
type Options struct {
	// Limit caps the result size. Zero means the configured maximum.
	Limit int
	// ExplorationLevel overrides the configured level when in 1..5.
	ExplorationLevel int
}

// New constructs an engine, refusing invalid configuration.
func New(config Config, classifier *classify.Classifier) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	scorer, err := scoring.New(config.Scoring, classifier)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:     config,
		classifier: classifier,
		scorer:     scorer,
	}, nil
}

// WithRefiner returns the engine with an external refinement provider
// attached. Refinement stays optional; the engine falls back to local
// keyword refinement without one.
func (e *Engine) WithRefiner(refiner Refiner) *Engine {
	e.refiner = refiner
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// GetRecommendations runs the full pipeline for one user profile against a
// catalog and returns ranked recommendations partitioned into zones.
func (e *Engine) GetRecommendations(ctx context.Context, userProfile *types.UserProfile, provider catalog.Provider, opts Options) ([]types.Recommendation, error) {
	if err := profile.Validate(userProfile); err != nil {
		return nil, err
	}

	careers, err := provider.ListAll(ctx)
	if err != nil {
		return nil, &RetrievalError{Cause: err}
	}

	summary := profile.Summarize(userProfile)
	level := e.explorationLevel(opts)

	candidates := prefilter.Filter(summary, careers, e.classifier, e.config.Prefilter)
	if len(candidates) == 0 {
		candidates = e.salaryFallback(summary, careers)
	}
	if len(candidates) == 0 {
		candidates = e.unfilteredFallback(careers)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates, _ = prefilter.Guard(summary, candidates, e.config.Guard)

	if e.config.UseTraditionalFilter {
		if filtered := traditionalFilter(summary, candidates); len(filtered) > 0 {
			candidates = filtered
		}
	}

	userField := e.classifier.UserField(summary)
	userSeniority := e.classifier.UserSeniority(summary)

	recommendations, err := e.scoreAndCategorize(ctx, summary, candidates, userField, userSeniority, level)
	if err != nil {
		return nil, err
	}

	e.sortByCompositeKey(recommendations, userField, userSeniority)

	limit := opts.Limit
	if limit <= 0 || limit > e.config.MaxRecommendations {
		limit = e.config.MaxRecommendations
	}
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	recommendations, err = e.topUp(ctx, summary, careers, recommendations, userField, userSeniority, level, limit)
	if err != nil {
		return nil, err
	}

	return recommendations, nil
}

// explorationLevel resolves the per-request exploration level.
func (e *Engine) explorationLevel(opts Options) int {
	if opts.ExplorationLevel >= 1 && opts.ExplorationLevel <= 5 {
		return opts.ExplorationLevel
	}
	return e.config.ExplorationLevel
}

// salaryFallback keeps careers with any salary compatibility when the main
// pre-filter comes back empty.
func (e *Engine) salaryFallback(summary *types.SummarizedProfile, careers []*types.Career) []prefilter.Candidate {
	if summary.Salary.IsZero() {
		return nil
	}

	candidates := make([]prefilter.Candidate, 0)
	for _, career := range careers {
		if career.Salary.IsZero() {
			continue
		}
		if career.Salary.Max >= summary.Salary.Min && career.Salary.Min <= summary.Salary.Max {
			candidates = append(candidates, prefilter.Candidate{Career: career})
			if len(candidates) >= e.config.MaxRecommendations {
				break
			}
		}
	}
	return candidates
}

// unfilteredFallback takes the head of the catalog when every filter failed;
// returning nothing is worse than returning generic careers.
func (e *Engine) unfilteredFallback(careers []*types.Career) []prefilter.Candidate {
	limit := e.config.MaxRecommendations
	if len(careers) < limit {
		limit = len(careers)
	}

	candidates := make([]prefilter.Candidate, 0, limit)
	for _, career := range careers[:limit] {
		candidates = append(candidates, prefilter.Candidate{Career: career})
	}
	return candidates
}

// traditionalFilter keeps candidates with any direct skill or interest
// overlap, ignoring classifier signals.
func traditionalFilter(summary *types.SummarizedProfile, candidates []prefilter.Candidate) []prefilter.Candidate {
	skills := make(map[string]bool, len(summary.TechnicalSkills))
	for _, skill := range summary.TechnicalSkills {
		skills[strings.ToLower(skill.Name)] = true
	}

	kept := make([]prefilter.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if hasDirectOverlap(candidate.Career, skills, summary.Interests) {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func hasDirectOverlap(career *types.Career, skills map[string]bool, interests []types.Interest) bool {
	for _, requirement := range career.RequiredSkills {
		if skills[strings.ToLower(requirement.Name)] {
			return true
		}
	}

	textLower := strings.ToLower(career.Title + " " + career.Description)
	for _, interest := range interests {
		if strings.Contains(textLower, strings.ToLower(interest.Name)) {
			return true
		}
	}
	return false
}

// scoreAndCategorize scores every candidate concurrently and builds the
// recommendation structures. Output order matches input order; ranking
// happens afterwards.
func (e *Engine) scoreAndCategorize(ctx context.Context, summary *types.SummarizedProfile, candidates []prefilter.Candidate, userField types.FieldMatch, userSeniority string, level int) ([]types.Recommendation, error) {
	recommendations := make([]types.Recommendation, len(candidates))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(scoreConcurrency)

	for i, candidate := range candidates {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			recommendations[i] = e.buildRecommendation(summary, candidate.Career, userField, userSeniority, level)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return recommendations, nil
}

// buildRecommendation runs the scorer and categorizer for one career.
func (e *Engine) buildRecommendation(summary *types.SummarizedProfile, career *types.Career, userField types.FieldMatch, userSeniority string, level int) types.Recommendation {
	score := e.scorer.Score(summary, career, userField, level)
	careerField := e.scorer.CareerField(career)

	ctx := categorize.Context{
		UserField:       userField,
		CareerField:     careerField,
		UserSeniority:   userSeniority,
		CareerSeniority: classify.CareerSeniority(career),
		RelatedFields:   e.classifier.Registry().Related(userField.Value, careerField.Value),
	}

	category := categorize.Categorize(score, ctx, e.config.Thresholds)

	return types.Recommendation{
		Career:     career,
		Score:      score,
		Category:   category,
		Reasons:    categorize.Reasons(career, score, category, ctx),
		Confidence: categorize.Confidence(score, category, ctx),
	}
}

// sortByCompositeKey ranks recommendations by total score plus the field
// alignment and confidence bonuses, with career ID as deterministic tie-break.
// Field alignment goes through the scorer so untagged careers resolve via the
// classifier, the same way the scoring stages see them.
func (e *Engine) sortByCompositeKey(recommendations []types.Recommendation, userField types.FieldMatch, userSeniority string) {
	key := func(r types.Recommendation) float64 {
		bonus := 0.0
		if e.scorer.CareerField(r.Career).Value == userField.Value {
			bonus += sameFieldBonus
		}
		if userSeniority == types.SeniorityExecutive &&
			classify.CareerSeniority(r.Career) == types.SeniorityExecutive {
			bonus += executiveMatchBonus
		}
		return r.Score.Total + bonus + r.Confidence*confidenceBonusRate
	}

	sort.Slice(recommendations, func(i, j int) bool {
		ki, kj := key(recommendations[i]), key(recommendations[j])
		if ki != kj {
			return ki > kj
		}
		return recommendations[i].Career.ID < recommendations[j].Career.ID
	})
}

// topUp appends the best-scoring careers from the unscored remainder when the
// result is below the configured minimum and the catalog has more to give.
func (e *Engine) topUp(ctx context.Context, summary *types.SummarizedProfile, careers []*types.Career, recommendations []types.Recommendation, userField types.FieldMatch, userSeniority string, level, limit int) ([]types.Recommendation, error) {
	minimum := e.config.MinRecommendations
	if minimum > limit {
		minimum = limit
	}
	if len(recommendations) >= minimum {
		return recommendations, nil
	}

	seen := make(map[string]bool, len(recommendations))
	for _, recommendation := range recommendations {
		seen[recommendation.Career.ID] = true
	}

	remainder := make([]prefilter.Candidate, 0)
	for _, career := range careers {
		if !seen[career.ID] {
			remainder = append(remainder, prefilter.Candidate{Career: career})
		}
	}
	if len(remainder) == 0 {
		return recommendations, nil
	}

	extra, err := e.scoreAndCategorize(ctx, summary, remainder, userField, userSeniority, level)
	if err != nil {
		return nil, err
	}
	e.sortByCompositeKey(extra, userField, userSeniority)

	for _, recommendation := range extra {
		if len(recommendations) >= minimum {
			break
		}
		recommendations = append(recommendations, recommendation)
	}
	return recommendations, nil
}
