package scoring

import (
	"time"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/types"
)

// Scorer computes score breakdowns for candidates. A scorer is immutable
// after construction and safe for concurrent use.
type Scorer struct {
	config     Config
	classifier *classify.Classifier
	now        func() time.Time
}

// New creates a scorer, refusing invalid configuration.
func New(config Config, classifier *classify.Classifier) (*Scorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{config: config, classifier: classifier, now: time.Now}, nil
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config {
	return s.config
}

// CareerField returns the stored field tag of a career with full confidence,
// falling back to classifier inference for untagged records.
func (s *Scorer) CareerField(career *types.Career) types.FieldMatch {
	if career.Field != "" && career.Field != types.FieldOther {
		return types.FieldMatch{Value: career.Field, Confidence: 1.0}
	}
	return s.classifier.CareerField(career)
}

// Score computes the full breakdown for one candidate. The user field is
// computed once per request by the caller and passed in.
func (s *Scorer) Score(summary *types.SummarizedProfile, career *types.Career, userField types.FieldMatch, explorationLevel int) types.ScoreBreakdown {
	now := s.now()

	skillResult := s.skillMatch(summary, career, now)
	interestScore, matchedInterests := interestMatch(summary, career)
	salaryScore, salaryTag := salaryCompatibility(summary.Salary, career.Salary)
	experienceScore, experienceLevel := experienceMatch(summary, career)

	total := s.config.Weights.Skill*skillResult.score +
		s.config.Weights.Interest*interestScore +
		s.config.Weights.Salary*salaryScore +
		s.config.Weights.Experience*experienceScore

	penalty := s.consistencyPenalty(userField, career, explorationLevel)
	total = clamp01(total - penalty)

	return types.ScoreBreakdown{
		Total:               total,
		SkillMatch:          skillResult.score,
		InterestMatch:       interestScore,
		SalaryCompatibility: salaryScore,
		ExperienceMatch:     experienceScore,
		ConsistencyPenalty:  penalty,
		Explanation: types.ScoreExplanation{
			MatchedSkills:          skillResult.matchedSkills,
			MissingMandatorySkills: skillResult.missingMandatory,
			MatchedInterests:       matchedInterests,
			SalaryCompatibility:    salaryTag,
			ExperienceLevel:        experienceLevel,
		},
	}
}

// consistencyPenalty is the subtractive adjustment applied when the user and
// career fields diverge and are not related. The exploration level scales the
// base penalty; the cap guarantees the penalty alone cannot dominate.
func (s *Scorer) consistencyPenalty(userField types.FieldMatch, career *types.Career, explorationLevel int) float64 {
	careerField := s.CareerField(career)

	if careerField.Value == userField.Value {
		return 0.0
	}
	if s.classifier.Registry().Related(userField.Value, careerField.Value) {
		return 0.0
	}

	penalty := s.config.Penalty.BasePenalty * ExplorationMultiplier(explorationLevel)
	if penalty > s.config.Penalty.MaxPenalty {
		penalty = s.config.Penalty.MaxPenalty
	}
	return penalty
}
