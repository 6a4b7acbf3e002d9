package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstGPA_ScansInOrder(t *testing.T) {
	first, second := 3.2, 2.0
	profile := &CandidateProfile{
		Education: []EducationEntry{
			{Institution: "No GPA Here"},
			{Institution: "First College", GPA: &first},
			{Institution: "Old School", GPA: &second},
		},
	}

	got := profile.FirstGPA()
	require.NotNil(t, got)
	assert.InDelta(t, 3.2, *got, 0.001)
}

func TestFirstGPA_NoneFound(t *testing.T) {
	profile := &CandidateProfile{
		Education: []EducationEntry{{Institution: "State University"}},
	}

	assert.Nil(t, profile.FirstGPA())
}

func TestCombinedSkillSet_LowercasesAndMerges(t *testing.T) {
	profile := &CandidateProfile{
		SkillsGeneral: []string{"Go", "  Python "},
		SkillsSoft:    []string{"Teamwork"},
	}

	set := profile.CombinedSkillSet()

	assert.Len(t, set, 3)
	assert.Contains(t, set, "go")
	assert.Contains(t, set, "python")
	assert.Contains(t, set, "teamwork")
}

func TestCandidateProfile_JSONRoundTrip(t *testing.T) {
	g := 3.7
	profile := CandidateProfile{
		Name:          "Jane Doe",
		SkillsGeneral: []string{"go"},
		SkillsSoft:    []string{},
		Education:     []EducationEntry{{Institution: "State University", GPA: &g}},
		Languages:     map[string]int{"English": 100},
		PrimaryField:  "computer_science",
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"skills_general":["go"]`)
	assert.Contains(t, string(data), `"skills_soft":[]`)
	assert.NotContains(t, string(data), `"error"`)

	var decoded CandidateProfile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, profile.Name, decoded.Name)
	assert.Equal(t, 100, decoded.Languages["English"])
}
