package prefilter

import (
	"encoding/json"

	"github.com/jonathan/career-compass/internal/types"
)

// Payload bound defaults. The guard applies to any downstream transport that
// carries the candidate list, not just an LLM prompt.
const (
	DefaultMaxPromptSize          = 100_000
	DefaultMaxCandidatesForPrompt = 50

	maxDescriptionChars = 200
)

// GuardConfig controls the prompt-size guard.
type GuardConfig struct {
	// MaxPromptSize bounds the serialized payload size in bytes.
	// Zero means DefaultMaxPromptSize.
	MaxPromptSize int
	// MaxCandidates caps the candidate count whenever truncation happens.
	// Zero means DefaultMaxCandidatesForPrompt.
	MaxCandidates int
}

// promptProjection is the structural payload whose size the guard measures.
type promptProjection struct {
	Skills     []string           `json:"skills,omitempty"`
	Interests  []string           `json:"interests,omitempty"`
	Experience float64            `json:"experience"`
	Salary     types.SalaryRange  `json:"salary"`
	Candidates []candidateSummary `json:"candidates"`
}

type candidateSummary struct {
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	RequiredSkills []string          `json:"required_skills,omitempty"`
	Salary         types.SalaryRange `json:"salary"`
	Field          string            `json:"field,omitempty"`
}

// Guard enforces the payload bound on a candidate list. When the serialized
// projection exceeds the budget it binary-searches the largest prefix that
// fits, never exceeding MaxCandidates. The returned flag reports truncation.
func Guard(summary *types.SummarizedProfile, candidates []Candidate, cfg GuardConfig) ([]Candidate, bool) {
	maxSize := cfg.MaxPromptSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPromptSize
	}
	maxCandidates := cfg.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidatesForPrompt
	}

	size, err := projectionSize(summary, candidates)
	if err != nil {
		// Measurement failure: fall back to the hard candidate cap.
		if len(candidates) <= maxCandidates {
			return candidates, false
		}
		return candidates[:maxCandidates], true
	}

	if size <= maxSize {
		return candidates, false
	}

	// Binary search the largest prefix that fits the budget.
	low, high := 1, len(candidates)
	best := 1
	for low <= high {
		mid := (low + high) / 2
		size, err := projectionSize(summary, candidates[:mid])
		if err != nil {
			break
		}
		if size <= maxSize {
			best = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if best > maxCandidates {
		best = maxCandidates
	}
	return candidates[:best], true
}

// projectionSize measures the serialized byte length of the guard projection.
func projectionSize(summary *types.SummarizedProfile, candidates []Candidate) (int, error) {
	projection := promptProjection{
		Skills:     summary.SkillNames(),
		Experience: summary.YearsExperience,
		Salary:     summary.Salary,
		Candidates: make([]candidateSummary, 0, len(candidates)),
	}
	for _, interest := range summary.Interests {
		projection.Interests = append(projection.Interests, interest.Name)
	}

	for _, candidate := range candidates {
		career := candidate.Career
		description := career.Description
		if runes := []rune(description); len(runes) > maxDescriptionChars {
			description = string(runes[:maxDescriptionChars])
		}
		projection.Candidates = append(projection.Candidates, candidateSummary{
			Title:          career.Title,
			Description:    description,
			RequiredSkills: career.RequiredSkillNames(),
			Salary:         career.Salary,
			Field:          career.Field,
		})
	}

	payload, err := json.Marshal(projection)
	if err != nil {
		return 0, err
	}
	return len(payload), nil
}
