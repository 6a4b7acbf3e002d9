package parsing

import (
	"testing"

	"github.com/jonathan/fairmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractContact_LabeledFields(t *testing.T) {
	text := `Jane Doe
Email: Jane.Doe@Example.com
Phone: +1 (555) 123-4567
Website: www.janedoe.dev
Address: Kuala Lumpur, Malaysia`

	var profile types.CandidateProfile
	ExtractContact(text, &profile)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane.doe@example.com", profile.Email)
	assert.Equal(t, "+15551234567", profile.Phone)
	assert.Equal(t, "https://janedoe.dev", profile.Website)
	assert.Equal(t, "Kuala Lumpur, Malaysia", profile.Address)
}

func TestExtractContact_SkipsDocumentHeadings(t *testing.T) {
	text := "CURRICULUM VITAE\nPersonal Profile\nAhmad Bin Abdullah\nahmad@example.com"

	var profile types.CandidateProfile
	ExtractContact(text, &profile)

	assert.Equal(t, "Ahmad Bin Abdullah", profile.Name)
	assert.Equal(t, "ahmad@example.com", profile.Email)
}

func TestExtractContact_StandalonePhoneLine(t *testing.T) {
	text := "Jane Doe\n012-345 6789\njane@example.com"

	var profile types.CandidateProfile
	ExtractContact(text, &profile)

	assert.Equal(t, "0123456789", profile.Phone)
}

func TestExtractContact_RejectsShortPhone(t *testing.T) {
	text := "Jane Doe\nPhone: 123 456"

	var profile types.CandidateProfile
	ExtractContact(text, &profile)

	assert.Empty(t, profile.Phone)
}

func TestExtractContact_BareWebsiteLineNotEmail(t *testing.T) {
	text := "Jane Doe\njane@example.com\nhttps://github.com/janedoe"

	var profile types.CandidateProfile
	ExtractContact(text, &profile)

	assert.Equal(t, "https://github.com/janedoe", profile.Website)
}

func TestExtractContact_MissingFieldsStayEmpty(t *testing.T) {
	var profile types.CandidateProfile
	ExtractContact("just some text without contact details", &profile)

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Phone)
	assert.Empty(t, profile.Website)
	assert.Empty(t, profile.Address)
}
