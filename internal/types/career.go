// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field tags recognized by the taxonomy. Careers outside the taxonomy carry FieldOther.
const (
	FieldTechnology              = "technology"
	FieldBusinessFinance         = "business_finance"
	FieldExecutiveLeadership     = "executive_leadership"
	FieldSalesMarketing          = "sales_marketing"
	FieldHealthcare              = "healthcare"
	FieldEducation               = "education"
	FieldSkilledTrades           = "skilled_trades"
	FieldGovernmentPublicService = "government_public_service"
	FieldLegalLaw                = "legal_law"
	FieldCreativeArts            = "creative_arts"
	FieldHospitalityService      = "hospitality_service"
	FieldAgricultureEnvironment  = "agriculture_environment"
	FieldManufacturingIndustrial = "manufacturing_industrial"
	FieldOther                   = "other"
)

// Seniority tags for career titles, ordered from junior to executive.
const (
	SeniorityJunior    = "junior"
	SeniorityMid       = "mid"
	SenioritySenior    = "senior"
	SeniorityExecutive = "executive"
)

// seniorityOrder maps seniority tags to their position on the career ladder.
var seniorityOrder = map[string]int{
	SeniorityJunior:    0,
	SeniorityMid:       1,
	SenioritySenior:    2,
	SeniorityExecutive: 3,
}

// SeniorityIndex returns the ladder position of a seniority tag.
// Unknown tags are treated as mid-level.
func SeniorityIndex(seniority string) int {
	if idx, ok := seniorityOrder[seniority]; ok {
		return idx
	}
	return seniorityOrder[SeniorityMid]
}

// SalaryRange represents a salary band with its currency.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// IsZero reports whether no salary information is present.
func (s SalaryRange) IsZero() bool {
	return s.Min == 0 && s.Max == 0
}

// SkillRequirement represents a single skill a career requires.
type SkillRequirement struct {
	Name      string  `json:"name"`
	Level     string  `json:"level,omitempty"`  // beginner, intermediate, advanced, expert
	Weight    float64 `json:"weight,omitempty"` // relative importance; defaults to 1.0
	Mandatory bool    `json:"mandatory,omitempty"`
}

// WorkPreferences holds the nine 1-5 preference axes shared by careers and user profiles.
type WorkPreferences struct {
	DataOriented       int `json:"data_oriented" validate:"min=1,max=5"`
	PeopleOriented     int `json:"people_oriented" validate:"min=1,max=5"`
	Creative           int `json:"creative" validate:"min=1,max=5"`
	ProblemSolving     int `json:"problem_solving" validate:"min=1,max=5"`
	Leadership         int `json:"leadership" validate:"min=1,max=5"`
	HandsOn            int `json:"hands_on" validate:"min=1,max=5"`
	Physical           int `json:"physical" validate:"min=1,max=5"`
	Outdoor            int `json:"outdoor" validate:"min=1,max=5"`
	MechanicalAptitude int `json:"mechanical_aptitude" validate:"min=1,max=5"`
}

// Career represents a single catalog entry. Records are created at bulk load
// and never mutated at runtime; the catalog owns every record exclusively.
type Career struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Field     string `json:"field"`     // taxonomy field tag or "other"
	Seniority string `json:"seniority"` // junior, mid, senior, executive

	Salary SalaryRange `json:"salary"`

	RequiredSkills     []SkillRequirement `json:"required_skills,omitempty"`
	RequiredSoftSkills []string           `json:"required_soft_skills,omitempty"`
	PreferredSkills    []string           `json:"preferred_skills,omitempty"`

	Education string `json:"education,omitempty"`
	MinYears  int    `json:"min_years_experience"`
	MaxYears  int    `json:"max_years_experience"`

	Preferences WorkPreferences `json:"preferences"`

	Industries       []string `json:"industries,omitempty"`
	Companies        []string `json:"companies,omitempty"`
	WorkEnvironments []string `json:"work_environments,omitempty"`
	RemoteOptions    string   `json:"remote_options,omitempty"`

	LearningPath    string `json:"learning_path,omitempty"`
	DemandLevel     string `json:"demand_level,omitempty"`     // low, moderate, high, very_high
	GrowthPotential string `json:"growth_potential,omitempty"` // low, moderate, high
	DayInLife       string `json:"day_in_life,omitempty"`
}

// RequiredSkillNames returns the names of all required technical skills in catalog order.
func (c *Career) RequiredSkillNames() []string {
	names := make([]string, 0, len(c.RequiredSkills))
	for _, req := range c.RequiredSkills {
		names = append(names, req.Name)
	}
	return names
}
