// Package classify infers fields and seniority from short career text using
// keyword scoring against the taxonomy registry. Titles and descriptions are
// short enough that keyword arithmetic beats a learned model here, and the
// exclusion buckets keep executive titles out of the functional fields.
package classify

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Seniority indicator tokens in priority order. Executive tokens win over
// senior tokens, which win over mid and junior tokens.
var (
	executiveTokens = []string{
		"ceo", "cto", "cfo", "coo", "chief", "president", "svp",
		"vice president", "vp", "executive director", "managing director",
	}
	seniorTokens = []string{"director", "head of", "senior", "principal", "lead"}
	midTokens    = []string{"manager", "supervisor", "coordinator", "specialist"}
	juniorTokens = []string{"junior", "associate", "assistant", "entry", "trainee", "intern"}
)

// Seniority infers the seniority tag for a career title. Titles without any
// indicator token default to mid-level.
func Seniority(title string) string {
	lower := strings.ToLower(title)

	for _, token := range executiveTokens {
		if strings.Contains(lower, token) {
			return types.SeniorityExecutive
		}
	}
	for _, token := range seniorTokens {
		if strings.Contains(lower, token) {
			return types.SenioritySenior
		}
	}
	for _, token := range midTokens {
		if strings.Contains(lower, token) {
			return types.SeniorityMid
		}
	}
	for _, token := range juniorTokens {
		if strings.Contains(lower, token) {
			return types.SeniorityJunior
		}
	}

	return types.SeniorityMid
}

// CareerSeniority returns the stored seniority tag of a career, falling back
// to title inference when the record carries no tag.
func CareerSeniority(career *types.Career) string {
	if career.Seniority != "" {
		return career.Seniority
	}
	return Seniority(career.Title)
}
