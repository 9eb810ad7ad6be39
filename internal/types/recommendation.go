package types

// Category identifies the exploration zone a recommendation falls into.
type Category string

// Exploration zones, from most conservative to most aspirational.
const (
	CategorySafe      Category = "safe"
	CategoryStretch   Category = "stretch"
	CategoryAdventure Category = "adventure"
)

// Salary compatibility tags recorded in score explanations.
const (
	SalaryCompatible    = "compatible"
	SalaryBelowExpected = "below_expected"
	SalaryAboveExpected = "above_expected"
	SalaryUnknown       = "unknown"
)

// ScoreExplanation carries the structured facts behind a score breakdown.
// Explanations are a pure projection of the breakdown; there is no hidden
// state beyond what the scorer recorded.
type ScoreExplanation struct {
	MatchedSkills          []string `json:"matched_skills,omitempty"`
	MissingMandatorySkills []string `json:"missing_mandatory_skills,omitempty"`
	MatchedInterests       []string `json:"matched_interests,omitempty"`
	SalaryCompatibility    string   `json:"salary_compatibility,omitempty"`
	ExperienceLevel        string   `json:"experience_level,omitempty"`
}

// ScoreBreakdown holds the per-candidate sub-scores and the consistency
// penalty applied to the total. All sub-scores are in [0,1].
type ScoreBreakdown struct {
	Total               float64          `json:"total"`
	SkillMatch          float64          `json:"skill_match"`
	InterestMatch       float64          `json:"interest_match"`
	SalaryCompatibility float64          `json:"salary_compatibility"`
	ExperienceMatch     float64          `json:"experience_match"`
	ConsistencyPenalty  float64          `json:"consistency_penalty"`
	Explanation         ScoreExplanation `json:"explanation"`
}

// FieldMatch is a field or seniority inference result with its confidence.
type FieldMatch struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Recommendation is a single ranked result: a catalog career with its score
// breakdown, exploration zone, reasons, and overall confidence.
type Recommendation struct {
	Career     *Career        `json:"career"`
	Score      ScoreBreakdown `json:"score"`
	Category   Category       `json:"category"`
	Reasons    []string       `json:"reasons,omitempty"` // at most five, in priority order
	Confidence float64        `json:"confidence"`
}

// Explanation is the structured output of the engine's explain operation.
type Explanation struct {
	CareerID        string         `json:"career_id"`
	CareerTitle     string         `json:"career_title"`
	Score           ScoreBreakdown `json:"score"`
	UserField       FieldMatch     `json:"user_field"`
	CareerField     FieldMatch     `json:"career_field"`
	UserSeniority   string         `json:"user_seniority"`
	CareerSeniority string         `json:"career_seniority"`
	Category        Category       `json:"category"`
	Reasons         []string       `json:"reasons,omitempty"`
	Confidence      float64        `json:"confidence"`
}

// RefineResult is the outcome of a refinement pass. RefineFailed is set when
// an external refiner was configured but failed; the recommendations are then
// the unmodified input.
type RefineResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	RefineFailed    bool             `json:"refine_failed,omitempty"`
}
