package types

import "time"

// Interest levels recognized on declared interests. Free-form interests carry no level.
const (
	InterestLow      = "low"
	InterestMedium   = "medium"
	InterestHigh     = "high"
	InterestVeryHigh = "very_high"
)

// UserSkill represents a technical skill the user reports, with optional
// proficiency and recency metadata used by the scorer.
type UserSkill struct {
	Name     string     `json:"name" validate:"required"`
	Level    string     `json:"level,omitempty"` // beginner, intermediate, advanced, expert
	LastUsed *time.Time `json:"last_used,omitempty"`
}

// Interest represents a declared interest. Level is one of the Interest*
// constants; an empty level marks a free-form interest.
type Interest struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level,omitempty" validate:"omitempty,oneof=low medium high very_high"`
}

// UserProfile represents the self-reported input to a recommendation run.
// Profiles are constructed per request and treated as immutable while the
// engine runs.
type UserProfile struct {
	UserID string `json:"user_id"`

	CurrentRole     string  `json:"current_role"`
	YearsExperience float64 `json:"years_experience" validate:"min=0"`
	Education       string  `json:"education,omitempty"`
	Location        string  `json:"location,omitempty"`

	TechnicalSkills []UserSkill `json:"technical_skills,omitempty" validate:"dive"`
	SoftSkills      []string    `json:"soft_skills,omitempty"`
	Certifications  []string    `json:"certifications,omitempty"`

	Preferences WorkPreferences `json:"preferences"`

	Interests   []Interest `json:"interests,omitempty" validate:"dive"`
	Industries  []string   `json:"industries,omitempty"`
	CareerGoals string     `json:"career_goals,omitempty"`

	SalaryExpectations SalaryRange `json:"salary_expectations"`

	ResumeText   string `json:"resume_text,omitempty"`
	LinkedInText string `json:"linkedin_text,omitempty"`
}

// SummarizedProfile is the bounded projection of a user profile produced by
// the summarizer and consumed by the pre-filter, scorer, and classifier.
type SummarizedProfile struct {
	TechnicalSkills []UserSkill     `json:"technical_skills,omitempty"`
	SoftSkills      []string        `json:"soft_skills,omitempty"`
	Certifications  []string        `json:"certifications,omitempty"`
	YearsExperience float64         `json:"years_experience"`
	Industries      []string        `json:"industries,omitempty"`
	CareerGoals     string          `json:"career_goals,omitempty"`
	Interests       []Interest      `json:"interests,omitempty"`
	Preferences     WorkPreferences `json:"preferences"`
	Salary          SalaryRange     `json:"salary"`
	Education       string          `json:"education,omitempty"`
	CurrentRole     string          `json:"current_role,omitempty"`
	Location        string          `json:"location,omitempty"`
	ResumeExcerpt   string          `json:"resume_excerpt,omitempty"`
}

// SkillNames returns the names of the summarized technical skills in order.
func (s *SummarizedProfile) SkillNames() []string {
	names := make([]string, 0, len(s.TechnicalSkills))
	for _, skill := range s.TechnicalSkills {
		names = append(names, skill.Name)
	}
	return names
}
