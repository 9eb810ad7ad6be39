package profile

import "github.com/jonathan/career-compass/internal/types"

// Bounds applied by the summarizer. Downstream components rely on these to
// keep per-request memory proportional to the candidate list, not the profile.
const (
	maxTechnicalSkills = 10
	maxSoftSkills      = 5
	maxIndustries      = 3
	maxInterests       = 5
	maxResumeChars     = 500
)

// Summarize projects a raw profile into its bounded summary. Pure function:
// no external calls, no mutation of the input.
func Summarize(userProfile *types.UserProfile) *types.SummarizedProfile {
	return &types.SummarizedProfile{
		TechnicalSkills: firstSkills(userProfile.TechnicalSkills, maxTechnicalSkills),
		SoftSkills:      firstStrings(userProfile.SoftSkills, maxSoftSkills),
		Certifications:  firstStrings(userProfile.Certifications, len(userProfile.Certifications)),
		YearsExperience: userProfile.YearsExperience,
		Industries:      firstStrings(userProfile.Industries, maxIndustries),
		CareerGoals:     userProfile.CareerGoals,
		Interests:       firstInterests(userProfile.Interests, maxInterests),
		Preferences:     userProfile.Preferences,
		Salary:          userProfile.SalaryExpectations,
		Education:       userProfile.Education,
		CurrentRole:     userProfile.CurrentRole,
		Location:        userProfile.Location,
		ResumeExcerpt:   truncate(userProfile.ResumeText, maxResumeChars),
	}
}

func firstSkills(skills []types.UserSkill, n int) []types.UserSkill {
	if len(skills) <= n {
		return append([]types.UserSkill(nil), skills...)
	}
	return append([]types.UserSkill(nil), skills[:n]...)
}

func firstStrings(values []string, n int) []string {
	if len(values) <= n {
		return append([]string(nil), values...)
	}
	return append([]string(nil), values[:n]...)
}

func firstInterests(interests []types.Interest, n int) []types.Interest {
	if len(interests) <= n {
		return append([]types.Interest(nil), interests...)
	}
	return append([]types.Interest(nil), interests[:n]...)
}

// truncate cuts text to at most n runes, appending an ellipsis marker when
// anything was dropped. Counting runes keeps the cut off the middle of a
// multi-byte character.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}
