package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func TestUserFieldFromRoleAndSkills(t *testing.T) {
	c := newTestClassifier()

	summary := &types.SummarizedProfile{
		CurrentRole: "Backend Developer",
		TechnicalSkills: []types.UserSkill{
			{Name: "PostgreSQL"},
			{Name: "Kubernetes"},
		},
	}

	match := c.UserField(summary)
	assert.Equal(t, types.FieldTechnology, match.Value)
	assert.Greater(t, match.Confidence, 0.8)
}

func TestUserFieldSplitProfileLowersConfidence(t *testing.T) {
	c := newTestClassifier()

	// A finance role with a technology skill: the winning field takes only a
	// share of the total evidence, so confidence stays below 1.0.
	summary := &types.SummarizedProfile{
		CurrentRole: "Financial Analyst",
		TechnicalSkills: []types.UserSkill{
			{Name: "Python"},
		},
	}

	match := c.UserField(summary)
	assert.Equal(t, types.FieldBusinessFinance, match.Value)
	assert.Greater(t, match.Confidence, 0.5)
	assert.Less(t, match.Confidence, 1.0)
}

func TestUserFieldEmptySummary(t *testing.T) {
	c := newTestClassifier()

	match := c.UserField(&types.SummarizedProfile{})
	assert.Equal(t, types.FieldOther, match.Value)
	assert.Zero(t, match.Confidence)
}

func TestUserFieldNoKeywordEvidence(t *testing.T) {
	c := newTestClassifier()

	summary := &types.SummarizedProfile{
		CurrentRole: "Dragon Wrangler",
		TechnicalSkills: []types.UserSkill{
			{Name: "Juggling"},
		},
	}

	match := c.UserField(summary)
	assert.Equal(t, types.FieldOther, match.Value)
	assert.Zero(t, match.Confidence)
}

func TestUserFieldResumeExcerptContributes(t *testing.T) {
	c := newTestClassifier()

	// No role and no skills: the resume excerpt alone is enough evidence.
	match := c.UserField(&types.SummarizedProfile{
		ResumeExcerpt: "Led audit and budget forecasting engagements as a consultant",
	})

	assert.Equal(t, types.FieldBusinessFinance, match.Value)
	assert.Greater(t, match.Confidence, 0.5)
}

func TestUserSeniority(t *testing.T) {
	c := newTestClassifier()

	summary := &types.SummarizedProfile{CurrentRole: "Senior Platform Engineer"}
	assert.Equal(t, types.SenioritySenior, c.UserSeniority(summary))

	summary = &types.SummarizedProfile{CurrentRole: "Platform Engineer"}
	assert.Equal(t, types.SeniorityMid, c.UserSeniority(summary))
}
