// Package parsing turns raw resume text into a structured candidate
// profile. Extraction is best-effort and deterministic: fields the text does
// not yield come back empty, and the only failure mode surfaced to callers
// is an entirely empty input, flagged on the profile itself.
package parsing

import (
	"strings"

	"github.com/jonathan/fairmatch/internal/types"
)

// Parser extracts a CandidateProfile from plain resume text.
type Parser struct {
	// PrimaryField, when set, overrides keyword-based field identification.
	PrimaryField string
}

// New returns a Parser with automatic primary-field identification.
func New() *Parser {
	return &Parser{}
}

// Parse builds a profile from text. The returned profile always has non-nil
// skill slices so downstream JSON encodes empty arrays rather than nulls.
func (p *Parser) Parse(text string) *types.CandidateProfile {
	profile := &types.CandidateProfile{
		SkillsGeneral: []string{},
		SkillsSoft:    []string{},
		Languages:     map[string]int{},
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		profile.Error = errNoText
		return profile
	}

	sections := SplitSections(text)

	contactScope := text
	if personal, ok := sections["personal"]; ok {
		contactScope = firstLines(text, 10) + "\n" + personal
	}
	ExtractContact(contactScope, profile)

	if summary, ok := sections["summary"]; ok {
		profile.Summary = collapseText(summary)
	}
	if education, ok := sections["education"]; ok {
		profile.Education = ExtractEducation(education)
	}
	if experience, ok := sections["experience"]; ok {
		profile.Experience = ExtractExperience(experience)
	}

	skillScope := text
	if skills, ok := sections["skills"]; ok {
		skillScope = skills
	}
	general, soft := ExtractSkills(skillScope)
	if general != nil {
		profile.SkillsGeneral = general
	}
	if soft != nil {
		profile.SkillsSoft = soft
	}

	if languages, ok := sections["languages"]; ok {
		profile.Languages = ExtractLanguages(languages)
	}

	if p.PrimaryField != "" {
		profile.PrimaryField = types.NormalizeField(p.PrimaryField)
	} else {
		profile.PrimaryField = IdentifyPrimaryField(text)
	}

	return profile
}

// firstLines returns at most n leading lines of text, for name and contact
// detection when a personal section exists but the name sits above it.
func firstLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
