package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func TestSeniority(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"chief title", "Chief Technology Officer", types.SeniorityExecutive},
		{"vp title", "VP of Engineering", types.SeniorityExecutive},
		{"vice president spelled out", "Vice President, Marketing", types.SeniorityExecutive},
		{"director", "Director of Operations", types.SenioritySenior},
		{"senior prefix", "Senior Data Analyst", types.SenioritySenior},
		{"principal", "Principal Software Engineer", types.SenioritySenior},
		{"manager", "Marketing Manager", types.SeniorityMid},
		{"coordinator", "Event Coordinator", types.SeniorityMid},
		{"junior prefix", "Junior Developer", types.SeniorityJunior},
		{"intern", "Software Engineering Intern", types.SeniorityJunior},
		{"no indicator defaults to mid", "Data Analyst", types.SeniorityMid},
		{"empty title defaults to mid", "", types.SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Seniority(tt.title))
		})
	}
}

func TestSeniorityExecutiveWinsOverSenior(t *testing.T) {
	// "Senior Vice President" carries both a senior and an executive token;
	// the executive token has priority.
	assert.Equal(t, types.SeniorityExecutive, Seniority("Senior Vice President of Sales"))
}

func TestCareerSeniority(t *testing.T) {
	t.Run("stored tag wins over title", func(t *testing.T) {
		career := &types.Career{Title: "Junior Analyst", Seniority: types.SenioritySenior}
		assert.Equal(t, types.SenioritySenior, CareerSeniority(career))
	})

	t.Run("falls back to title inference", func(t *testing.T) {
		career := &types.Career{Title: "Junior Analyst"}
		assert.Equal(t, types.SeniorityJunior, CareerSeniority(career))
	})
}
