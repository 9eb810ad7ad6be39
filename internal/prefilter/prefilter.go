// Package prefilter reduces the full catalog to a tractable candidate set
// using cheap keyword arithmetic, and enforces the downstream payload bound.
package prefilter

import (
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/types"
)

// Defaults for the pre-filter stage.
const (
	DefaultLimit = 100

	// minRelevance is the threshold candidates normally must clear. When
	// fewer than minCandidates clear it, the threshold is relaxed and the
	// top candidates are taken unconditionally.
	minRelevance  = 0.15
	minCandidates = 10
)

// Classic scoring weights.
const (
	skillWeight    = 0.40
	industryWeight = 0.30
	interestWeight = 0.20
	titleWeight    = 0.10
)

// Enhanced scoring weights. Field and seniority alignment take over most of
// the budget; the keyword components shrink accordingly.
const (
	enhancedSkillWeight    = 0.20
	enhancedIndustryWeight = 0.10
	enhancedInterestWeight = 0.05

	fieldAlignmentBudget  = 0.40
	relatedFieldAlignment = 0.25
	unrelatedAlignment    = 0.10
)

// Candidate is a career that survived pre-filtering, with its relevance score.
type Candidate struct {
	Career    *types.Career
	Relevance float64
}

// Config controls the pre-filter stage.
type Config struct {
	// Limit bounds the candidate list size. Zero means DefaultLimit.
	Limit int
	// UseEnhanced selects the classifier-aware scoring path.
	UseEnhanced bool
}

// Filter scores every catalog entry against the summary and returns the top
// candidates sorted by descending relevance, career ID as tie-break.
func Filter(summary *types.SummarizedProfile, careers []*types.Career, classifier *classify.Classifier, cfg Config) []Candidate {
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var userField types.FieldMatch
	var userSeniority string
	if cfg.UseEnhanced {
		userField = classifier.UserField(summary)
		userSeniority = classifier.UserSeniority(summary)
	}

	scored := make([]Candidate, 0, len(careers))
	for _, career := range careers {
		relevance := relevanceScore(summary, career)
		if cfg.UseEnhanced {
			relevance = enhancedScore(summary, career, classifier, userField, userSeniority)
		}
		scored = append(scored, Candidate{Career: career, Relevance: relevance})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Relevance != scored[j].Relevance {
			return scored[i].Relevance > scored[j].Relevance
		}
		return scored[i].Career.ID < scored[j].Career.ID
	})

	// Prefer candidates above the relevance threshold; relax it when too few
	// careers qualify so sparse profiles still get a full candidate set.
	passing := 0
	for _, candidate := range scored {
		if candidate.Relevance >= minRelevance {
			passing++
		}
	}

	if passing >= minCandidates {
		filtered := make([]Candidate, 0, limit)
		for _, candidate := range scored {
			if candidate.Relevance >= minRelevance {
				filtered = append(filtered, candidate)
				if len(filtered) >= limit {
					break
				}
			}
		}
		return filtered
	}

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// relevanceScore is the classic keyword-only relevance in [0, ~1].
func relevanceScore(summary *types.SummarizedProfile, career *types.Career) float64 {
	titleLower := strings.ToLower(career.Title)
	textLower := titleLower + " " + strings.ToLower(career.Description)

	skill := skillOverlap(summary.SkillNames(), career.RequiredSkillNames())
	industry := industryOverlap(summary.Industries, career.Industries)
	interest := interestFraction(summary.Interests, textLower)
	title := titleRelevance(summary.SkillNames(), titleLower)

	return skillWeight*skill + industryWeight*industry +
		interestWeight*interest + titleWeight*title
}

// enhancedScore folds classifier confidence and seniority alignment into the
// relevance so the candidate set already leans toward reachable careers.
func enhancedScore(summary *types.SummarizedProfile, career *types.Career, classifier *classify.Classifier, userField types.FieldMatch, userSeniority string) float64 {
	titleLower := strings.ToLower(career.Title)
	textLower := titleLower + " " + strings.ToLower(career.Description)

	skill := skillOverlap(summary.SkillNames(), career.RequiredSkillNames())
	industry := industryOverlap(summary.Industries, career.Industries)
	interest := interestFraction(summary.Interests, textLower)

	careerField := careerFieldMatch(career, classifier)

	fieldComponent := unrelatedAlignment
	switch {
	case careerField.Value == userField.Value:
		fieldComponent = fieldAlignmentBudget * userField.Confidence * careerField.Confidence
	case classifier.Registry().Related(userField.Value, careerField.Value):
		fieldComponent = relatedFieldAlignment
	}

	gap := types.SeniorityIndex(classify.CareerSeniority(career)) - types.SeniorityIndex(userSeniority)
	if gap < 0 {
		gap = -gap
	}
	seniorityComponent := 0.05
	switch gap {
	case 0:
		seniorityComponent = 0.25
	case 1:
		seniorityComponent = 0.20
	case 2:
		seniorityComponent = 0.10
	}

	return fieldComponent + seniorityComponent +
		enhancedSkillWeight*skill + enhancedIndustryWeight*industry +
		enhancedInterestWeight*interest
}

// careerFieldMatch uses the stored field tag when present, with full
// confidence; inference is the fallback for untagged records.
func careerFieldMatch(career *types.Career, classifier *classify.Classifier) types.FieldMatch {
	if career.Field != "" && career.Field != types.FieldOther {
		return types.FieldMatch{Value: career.Field, Confidence: 1.0}
	}
	return classifier.CareerField(career)
}

// skillOverlap is a Jaccard-like overlap normalized by the larger skill set.
func skillOverlap(userSkills, careerSkills []string) float64 {
	if len(userSkills) == 0 || len(careerSkills) == 0 {
		return 0.0
	}

	userSet := lowerSet(userSkills)
	matches := 0
	for _, skill := range careerSkills {
		if userSet[strings.ToLower(skill)] {
			matches++
		}
	}

	denominator := len(userSkills)
	if len(careerSkills) > denominator {
		denominator = len(careerSkills)
	}
	return float64(matches) / float64(denominator)
}

// industryOverlap is the fraction of the user's industries the career serves.
func industryOverlap(userIndustries, careerIndustries []string) float64 {
	if len(userIndustries) == 0 {
		return 0.0
	}

	careerSet := lowerSet(careerIndustries)
	matches := 0
	for _, industry := range userIndustries {
		if careerSet[strings.ToLower(industry)] {
			matches++
		}
	}
	return float64(matches) / float64(len(userIndustries))
}

// interestFraction is the fraction of user interests mentioned in the career text.
func interestFraction(interests []types.Interest, textLower string) float64 {
	if len(interests) == 0 {
		return 0.0
	}

	matches := 0
	for _, interest := range interests {
		if strings.Contains(textLower, strings.ToLower(interest.Name)) {
			matches++
		}
	}
	return float64(matches) / float64(len(interests))
}

// titleRelevance is the fraction of user skills mentioned in the title, clamped at 1.
func titleRelevance(userSkills []string, titleLower string) float64 {
	if len(userSkills) == 0 {
		return 0.0
	}

	matches := 0
	for _, skill := range userSkills {
		if strings.Contains(titleLower, strings.ToLower(skill)) {
			matches++
		}
	}

	score := float64(matches) / float64(len(userSkills))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[strings.ToLower(value)] = true
	}
	return set
}
