package profile

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestSummarizeBounds(t *testing.T) {
	p := validProfile()
	for i := 0; i < 15; i++ {
		p.TechnicalSkills = append(p.TechnicalSkills, types.UserSkill{Name: fmt.Sprintf("skill-%d", i)})
	}
	for i := 0; i < 8; i++ {
		p.SoftSkills = append(p.SoftSkills, fmt.Sprintf("soft-%d", i))
		p.Interests = append(p.Interests, types.Interest{Name: fmt.Sprintf("interest-%d", i)})
	}
	p.Industries = []string{"fintech", "healthcare", "retail", "logistics", "media"}
	p.ResumeText = strings.Repeat("a", 800)

	summary := Summarize(p)

	assert.Len(t, summary.TechnicalSkills, 10)
	assert.Len(t, summary.SoftSkills, 5)
	assert.Len(t, summary.Industries, 3)
	assert.Len(t, summary.Interests, 5)

	require.True(t, strings.HasSuffix(summary.ResumeExcerpt, "…"))
	assert.Equal(t, strings.Repeat("a", 500), strings.TrimSuffix(summary.ResumeExcerpt, "…"))

	// Order is preserved: the first entries survive truncation.
	assert.Equal(t, "Go", summary.TechnicalSkills[0].Name)
	assert.Equal(t, []string{"fintech", "healthcare", "retail"}, summary.Industries)
}

func TestSummarizeResumeExcerptKeepsRuneBoundaries(t *testing.T) {
	p := validProfile()
	p.ResumeText = strings.Repeat("é", 600)

	summary := Summarize(p)

	assert.True(t, utf8.ValidString(summary.ResumeExcerpt))
	assert.Equal(t, strings.Repeat("é", 500)+"…", summary.ResumeExcerpt)
}

func TestSummarizeShortProfileUnchanged(t *testing.T) {
	p := validProfile()
	p.ResumeText = "Short resume."
	p.SoftSkills = []string{"communication"}

	summary := Summarize(p)

	assert.Equal(t, "Short resume.", summary.ResumeExcerpt)
	assert.Equal(t, []string{"communication"}, summary.SoftSkills)
	assert.Equal(t, p.YearsExperience, summary.YearsExperience)
	assert.Equal(t, p.Preferences, summary.Preferences)
	assert.Equal(t, p.SalaryExpectations, summary.Salary)
	assert.Equal(t, p.CurrentRole, summary.CurrentRole)
}

func TestSummarizeDoesNotAliasInput(t *testing.T) {
	p := validProfile()
	summary := Summarize(p)

	summary.TechnicalSkills[0].Name = "mutated"
	assert.Equal(t, "Go", p.TechnicalSkills[0].Name)
}

func TestSummarizeKeepsAllCertifications(t *testing.T) {
	p := validProfile()
	p.Certifications = []string{"AWS SA", "CKA", "PMP", "CPA", "CFA", "RN", "Series 7"}

	summary := Summarize(p)
	assert.Equal(t, p.Certifications, summary.Certifications)
}
