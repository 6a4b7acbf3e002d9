package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullResume(t *testing.T) {
	profile := New().Parse(sampleResume)

	assert.Empty(t, profile.Error)
	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, "john.smith@example.com", profile.Email)
	assert.Equal(t, "+15551234567", profile.Phone)
	assert.Contains(t, profile.Summary, "Backend developer")

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Computer Science", profile.Education[0].Field)
	require.NotNil(t, profile.Education[0].GPA)
	assert.InDelta(t, 3.7, *profile.Education[0].GPA, 0.001)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme Corp", profile.Experience[0].Company)

	assert.Contains(t, profile.SkillsGeneral, "python")
	assert.Contains(t, profile.SkillsGeneral, "go")
	assert.Contains(t, profile.SkillsSoft, "communication")

	assert.Equal(t, 100, profile.Languages["English"])
	assert.Equal(t, 50, profile.Languages["Spanish"])

	assert.Equal(t, "computer_science", profile.PrimaryField)
}

func TestParse_EmptyInputSetsError(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		profile := New().Parse(input)

		assert.Equal(t, errNoText, profile.Error)
		assert.Empty(t, profile.Name)
		assert.NotNil(t, profile.SkillsGeneral)
		assert.NotNil(t, profile.SkillsSoft)
		assert.Empty(t, profile.Education)
	}
}

func TestParse_MissingSectionsLeaveFieldsEmpty(t *testing.T) {
	profile := New().Parse("Jane Doe\njane@example.com\nSKILLS\nPython, Excel")

	assert.Empty(t, profile.Error)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Languages)
	assert.Contains(t, profile.SkillsGeneral, "python")
}

func TestParse_SkillsFallBackToFullText(t *testing.T) {
	profile := New().Parse("Jane Doe\nBuilt services with Docker and Kubernetes.")

	assert.Contains(t, profile.SkillsGeneral, "docker")
	assert.Contains(t, profile.SkillsGeneral, "kubernetes")
}

func TestParse_PrimaryFieldOverride(t *testing.T) {
	parser := &Parser{PrimaryField: "Computer Science"}
	profile := parser.Parse("Jane Doe\nAudit and tax compliance specialist.")

	assert.Equal(t, "computer_science", profile.PrimaryField)
}

func TestParse_PrimaryFieldUnknownWhenNoKeywords(t *testing.T) {
	profile := New().Parse("Jane Doe\nLikes long walks.")

	assert.Equal(t, "", profile.PrimaryField)
}

func TestParse_WindowsLineEndings(t *testing.T) {
	profile := New().Parse("Jane Doe\r\nSKILLS\r\nPython")

	assert.Contains(t, profile.SkillsGeneral, "python")
	assert.Equal(t, "Jane Doe", profile.Name)
}
