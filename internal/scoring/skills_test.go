package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func testScorer(t *testing.T) *Scorer {
	t.Helper()
	scorer, err := New(DefaultConfig(), classify.New(taxonomy.Default()))
	require.NoError(t, err)
	scorer.now = func() time.Time { return fixedNow }
	return scorer
}

func skillSummary(skills ...types.UserSkill) *types.SummarizedProfile {
	return &types.SummarizedProfile{TechnicalSkills: skills}
}

func TestSkillMatchNoRequirements(t *testing.T) {
	s := testScorer(t)

	result := s.skillMatch(skillSummary(), &types.Career{Title: "Generalist"}, fixedNow)
	assert.InDelta(t, 1.0, result.score, 1e-9)
	assert.Empty(t, result.missingMandatory)
}

func TestSkillMatchProficiency(t *testing.T) {
	s := testScorer(t)

	career := &types.Career{
		Title: "Backend Engineer",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Go", Level: "advanced"},
		},
	}

	t.Run("meets required level", func(t *testing.T) {
		result := s.skillMatch(skillSummary(types.UserSkill{Name: "Go", Level: "advanced"}), career, fixedNow)
		assert.InDelta(t, 1.0, result.score, 1e-9)
		assert.Equal(t, []string{"Go"}, result.matchedSkills)
	})

	t.Run("exceeding the level is not penalized", func(t *testing.T) {
		result := s.skillMatch(skillSummary(types.UserSkill{Name: "Go", Level: "expert"}), career, fixedNow)
		assert.InDelta(t, 1.0, result.score, 1e-9)
	})

	t.Run("one level short", func(t *testing.T) {
		result := s.skillMatch(skillSummary(types.UserSkill{Name: "Go", Level: "intermediate"}), career, fixedNow)
		assert.InDelta(t, 0.75, result.score, 1e-9)
	})

	t.Run("unknown level treated as intermediate", func(t *testing.T) {
		result := s.skillMatch(skillSummary(types.UserSkill{Name: "Go"}), career, fixedNow)
		assert.InDelta(t, 0.75, result.score, 1e-9)
	})

	t.Run("name comparison ignores case and spacing", func(t *testing.T) {
		result := s.skillMatch(skillSummary(types.UserSkill{Name: "  gO ", Level: "expert"}), career, fixedNow)
		assert.InDelta(t, 1.0, result.score, 1e-9)
	})
}

func TestSkillMatchCertificationBonus(t *testing.T) {
	s := testScorer(t)

	career := &types.Career{
		RequiredSkills: []types.SkillRequirement{{Name: "Kubernetes", Level: "advanced"}},
	}
	summary := skillSummary(types.UserSkill{Name: "Kubernetes", Level: "intermediate"})
	summary.Certifications = []string{"Certified Kubernetes Administrator"}

	result := s.skillMatch(summary, career, fixedNow)
	assert.InDelta(t, 0.85, result.score, 1e-9) // 0.75 + certification bonus
}

func TestSkillMatchRecencyBonus(t *testing.T) {
	s := testScorer(t)

	career := &types.Career{
		RequiredSkills: []types.SkillRequirement{{Name: "Go", Level: "advanced"}},
	}

	recent := fixedNow.AddDate(0, -1, 0)
	stale := fixedNow.AddDate(-2, 0, 0)

	result := s.skillMatch(skillSummary(types.UserSkill{Name: "Go", Level: "intermediate", LastUsed: &recent}), career, fixedNow)
	assert.InDelta(t, 0.80, result.score, 1e-9) // 0.75 + recency bonus

	result = s.skillMatch(skillSummary(types.UserSkill{Name: "Go", Level: "intermediate", LastUsed: &stale}), career, fixedNow)
	assert.InDelta(t, 0.75, result.score, 1e-9)
}

func TestSkillMatchMissingMandatory(t *testing.T) {
	s := testScorer(t)

	career := &types.Career{
		Title: "Machine Learning Engineer",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Python", Level: "advanced", Weight: 3, Mandatory: false},
			{Name: "TensorFlow", Level: "intermediate", Weight: 1, Mandatory: true},
		},
	}
	summary := skillSummary(types.UserSkill{Name: "Python", Level: "expert"})

	result := s.skillMatch(summary, career, fixedNow)

	// Matched weight 3/4 = 0.75, minus the mandatory penalty 0.5 * 1.
	assert.InDelta(t, 0.25, result.score, 1e-9)
	assert.Equal(t, []string{"TensorFlow"}, result.missingMandatory)
	assert.Equal(t, []string{"Python"}, result.matchedSkills)
}

func TestSkillMatchMissingMandatoryCapsScore(t *testing.T) {
	s := testScorer(t)

	// A single missing mandatory skill keeps the sub-score at 0.5 or below no
	// matter how strong the remaining matches are.
	career := &types.Career{
		Title: "Data Engineer",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Python", Level: "advanced", Weight: 1},
			{Name: "SQL", Level: "advanced", Weight: 1},
			{Name: "Airflow", Level: "intermediate", Weight: 1},
			{Name: "Spark", Level: "intermediate", Weight: 1, Mandatory: true},
		},
	}
	summary := skillSummary(
		types.UserSkill{Name: "Python", Level: "expert"},
		types.UserSkill{Name: "SQL", Level: "expert"},
		types.UserSkill{Name: "Airflow", Level: "expert"},
	)

	result := s.skillMatch(summary, career, fixedNow)

	assert.LessOrEqual(t, result.score, 0.5)
	assert.InDelta(t, 0.25, result.score, 1e-9)
	assert.Equal(t, []string{"Spark"}, result.missingMandatory)
}

func TestSkillMatchMissingOptionalNotPenalized(t *testing.T) {
	s := testScorer(t)

	career := &types.Career{
		RequiredSkills: []types.SkillRequirement{
			{Name: "Go", Level: "advanced"},
			{Name: "Rust", Level: "intermediate"}, // optional, absent
		},
	}
	summary := skillSummary(types.UserSkill{Name: "Go", Level: "expert"})

	result := s.skillMatch(summary, career, fixedNow)

	// The optional miss dilutes the average but adds no extra penalty.
	assert.InDelta(t, 0.5, result.score, 1e-9)
	assert.Empty(t, result.missingMandatory)
}

func TestSkillMatchScoreNeverNegative(t *testing.T) {
	s := testScorer(t)

	career := &types.Career{
		RequiredSkills: []types.SkillRequirement{
			{Name: "Welding", Mandatory: true},
			{Name: "Rigging", Mandatory: true},
		},
	}

	result := s.skillMatch(skillSummary(), career, fixedNow)
	assert.Zero(t, result.score)
	assert.Len(t, result.missingMandatory, 2)
}
