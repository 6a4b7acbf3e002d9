package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_PipeSeparatedHeader(t *testing.T) {
	section := "Acme Corp | Software Engineer\nJan 2020 - Present\n• Built REST API services\n• Led migration to Kubernetes"

	entries := ExtractExperience(section)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "Software Engineer", entry.Title)
	assert.Equal(t, "Jan 2020 - Present", entry.DateRange)
	require.Len(t, entry.Responsibilities, 2)
	assert.Equal(t, "Built REST API services", entry.Responsibilities[0])
}

func TestExtractExperience_TitleAtCompany(t *testing.T) {
	section := "Financial Analyst at Global Bank\n2018 - 2021\n• Prepared quarterly forecasts"

	entries := ExtractExperience(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "Global Bank", entries[0].Company)
	assert.Equal(t, "Financial Analyst", entries[0].Title)
	assert.Equal(t, "2018 - 2021", entries[0].DateRange)
}

func TestExtractExperience_TitleOnSecondLine(t *testing.T) {
	section := "City Hospital\nResident Doctor\n2019 - 2022\n• Managed inpatient care"

	entries := ExtractExperience(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "City Hospital", entries[0].Company)
	assert.Equal(t, "Resident Doctor", entries[0].Title)
}

func TestExtractExperience_MultipleEntries(t *testing.T) {
	section := "Acme Corp | Engineer\n2020 - 2022\n• Shipped features\n\nBeta Ltd | Intern\n2019 - 2020\n• Wrote tests"

	entries := ExtractExperience(section)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Beta Ltd", entries[1].Company)
}

func TestExtractExperience_NoCompanySkipped(t *testing.T) {
	assert.Empty(t, ExtractExperience("• floating bullet with no header"))
	assert.Empty(t, ExtractExperience(""))
}

func TestExtractExperience_VariedBulletMarkers(t *testing.T) {
	section := "Acme Corp | Engineer\n2020 - 2022\n- Dash bullet\n* Star bullet"

	entries := ExtractExperience(section)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Dash bullet", "Star bullet"}, entries[0].Responsibilities)
}
