package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLanguages_ParenthesizedLevel(t *testing.T) {
	langs := ExtractLanguages("English (Native)\nSpanish (Intermediate)")

	assert.Equal(t, 100, langs["English"])
	assert.Equal(t, 50, langs["Spanish"])
}

func TestExtractLanguages_ColonAndDashForms(t *testing.T) {
	langs := ExtractLanguages("French: Fluent\nGerman - Basic")

	assert.Equal(t, 90, langs["French"])
	assert.Equal(t, 30, langs["German"])
}

func TestExtractLanguages_ExplicitPercentWins(t *testing.T) {
	langs := ExtractLanguages("Japanese (Basic 75%)")

	assert.Equal(t, 75, langs["Japanese"])
}

func TestExtractLanguages_PercentClampedTo100(t *testing.T) {
	langs := ExtractLanguages("Arabic (150%)")

	assert.Equal(t, 100, langs["Arabic"])
}

func TestExtractLanguages_BareNameDefaultsTo90(t *testing.T) {
	langs := ExtractLanguages("• English\n• Hindi")

	assert.Equal(t, 90, langs["English"])
	assert.Equal(t, 90, langs["Hindi"])
}

func TestExtractLanguages_IgnoresNonLanguages(t *testing.T) {
	langs := ExtractLanguages("Python (Fluent)\nEnglish (Fluent)")

	assert.NotContains(t, langs, "Python")
	assert.Equal(t, 90, langs["English"])
}

func TestExtractLanguages_FirstMentionWins(t *testing.T) {
	langs := ExtractLanguages("English (Native)\nEnglish (Basic)")

	assert.Equal(t, 100, langs["English"])
}

func TestExtractLanguages_EmptySection(t *testing.T) {
	assert.Empty(t, ExtractLanguages(""))
}
