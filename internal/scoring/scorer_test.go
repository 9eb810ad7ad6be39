package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Weights.Skill = 0.9

	_, err := New(config, classify.New(taxonomy.Default()))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestScorerCareerField(t *testing.T) {
	s := testScorer(t)

	t.Run("stored tag is authoritative", func(t *testing.T) {
		match := s.CareerField(&types.Career{Title: "Software Engineer", Field: types.FieldHealthcare})
		assert.Equal(t, types.FieldHealthcare, match.Value)
		assert.InDelta(t, 1.0, match.Confidence, 1e-9)
	})

	t.Run("untagged records are inferred", func(t *testing.T) {
		match := s.CareerField(&types.Career{Title: "Registered Nurse"})
		assert.Equal(t, types.FieldHealthcare, match.Value)
		assert.Less(t, match.Confidence, 1.0)
	})
}

func TestScoreAssemblesWeightedTotal(t *testing.T) {
	s := testScorer(t)

	summary := &types.SummarizedProfile{YearsExperience: 5}
	career := &types.Career{
		ID:        "c-1",
		Title:     "Business Analyst",
		Field:     types.FieldTechnology,
		Seniority: types.SeniorityMid,
	}
	userField := types.FieldMatch{Value: types.FieldTechnology, Confidence: 0.9}

	breakdown := s.Score(summary, career, userField, 3)

	// skill 1.0 (no requirements), interest 0.5 (none declared),
	// salary 1.0 (unknown), experience 1.0 (mid vs mid), no penalty.
	assert.InDelta(t, 1.0, breakdown.SkillMatch, 1e-9)
	assert.InDelta(t, 0.5, breakdown.InterestMatch, 1e-9)
	assert.InDelta(t, 1.0, breakdown.SalaryCompatibility, 1e-9)
	assert.InDelta(t, 1.0, breakdown.ExperienceMatch, 1e-9)
	assert.Zero(t, breakdown.ConsistencyPenalty)
	assert.InDelta(t, 0.875, breakdown.Total, 1e-9)
	assert.Equal(t, types.SalaryUnknown, breakdown.Explanation.SalaryCompatibility)
	assert.Equal(t, ExperienceMid, breakdown.Explanation.ExperienceLevel)
}

func TestConsistencyPenalty(t *testing.T) {
	s := testScorer(t)
	techUser := types.FieldMatch{Value: types.FieldTechnology, Confidence: 0.9}

	t.Run("same field", func(t *testing.T) {
		career := &types.Career{Field: types.FieldTechnology}
		assert.Zero(t, s.consistencyPenalty(techUser, career, 1))
	})

	t.Run("related field", func(t *testing.T) {
		career := &types.Career{Field: types.FieldBusinessFinance}
		assert.Zero(t, s.consistencyPenalty(techUser, career, 1))
	})

	t.Run("unrelated field scales with exploration level", func(t *testing.T) {
		career := &types.Career{Field: types.FieldHospitalityService}

		assert.InDelta(t, 0.60, s.consistencyPenalty(techUser, career, 1), 1e-9) // capped
		assert.InDelta(t, 0.45, s.consistencyPenalty(techUser, career, 2), 1e-9)
		assert.InDelta(t, 0.30, s.consistencyPenalty(techUser, career, 3), 1e-9)
		assert.InDelta(t, 0.21, s.consistencyPenalty(techUser, career, 4), 1e-9)
		assert.InDelta(t, 0.12, s.consistencyPenalty(techUser, career, 5), 1e-9)
	})
}

func TestScoreFieldCrossingLowersTotal(t *testing.T) {
	s := testScorer(t)

	summary := &types.SummarizedProfile{YearsExperience: 5}
	career := &types.Career{
		Title:     "Hotel Manager",
		Field:     types.FieldHospitalityService,
		Seniority: types.SeniorityMid,
	}
	userField := types.FieldMatch{Value: types.FieldTechnology, Confidence: 0.9}

	conservative := s.Score(summary, career, userField, 1)
	exploratory := s.Score(summary, career, userField, 5)

	assert.Less(t, conservative.Total, exploratory.Total)
	assert.InDelta(t, 0.275, conservative.Total, 1e-9) // 0.875 - 0.60
	assert.InDelta(t, 0.755, exploratory.Total, 1e-9)  // 0.875 - 0.12
}

func TestScoreTotalStaysInRange(t *testing.T) {
	s := testScorer(t)

	summary := &types.SummarizedProfile{
		YearsExperience: 0,
		Interests:       []types.Interest{{Name: "sailing", Level: types.InterestVeryHigh}},
		Salary:          types.SalaryRange{Min: 500000, Max: 600000},
	}
	career := &types.Career{
		Title:     "Chief Executive Officer",
		Field:     types.FieldExecutiveLeadership,
		Seniority: types.SeniorityExecutive,
		Salary:    types.SalaryRange{Min: 1000, Max: 2000},
		RequiredSkills: []types.SkillRequirement{
			{Name: "Leadership", Mandatory: true},
		},
	}
	userField := types.FieldMatch{Value: types.FieldTechnology, Confidence: 1.0}

	breakdown := s.Score(summary, career, userField, 1)
	assert.GreaterOrEqual(t, breakdown.Total, 0.0)
	assert.LessOrEqual(t, breakdown.Total, 1.0)
}
