// Package types provides type definitions for structured data used throughout the fairmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents the structured data extracted from one resume.
// Every field is optional: extractors that find nothing leave their field
// empty rather than failing. A non-empty Error means the raw text source was
// unavailable and all structural fields are empty.
type CandidateProfile struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
	Summary string `json:"summary,omitempty"`

	SkillsGeneral []string `json:"skills_general"`
	SkillsSoft    []string `json:"skills_soft"`

	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`

	// Languages maps a language name to a 0-100 proficiency score.
	Languages map[string]int `json:"languages,omitempty"`

	// PrimaryField is a normalized domain tag (e.g. "computer_science").
	// Empty means unknown; matching then proceeds without field gating.
	PrimaryField string `json:"primary_field,omitempty"`

	Error string `json:"error,omitempty"`
}

// EducationEntry represents a single education item from the resume.
type EducationEntry struct {
	Institution string   `json:"institution,omitempty"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	DateRange   string   `json:"date_range,omitempty"`
	GPA         *float64 `json:"gpa,omitempty"`
}

// ExperienceEntry represents a single work experience item from the resume.
type ExperienceEntry struct {
	Company          string   `json:"company"`
	Title            string   `json:"title,omitempty"`
	Location         string   `json:"location,omitempty"`
	DateRange        string   `json:"date_range,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// FirstGPA returns the first numeric GPA found among the education entries,
// scanning in order. Returns nil when no entry carries one.
func (p *CandidateProfile) FirstGPA() *float64 {
	for _, edu := range p.Education {
		if edu.GPA != nil {
			return edu.GPA
		}
	}
	return nil
}

// CombinedSkillSet returns the union of general and soft skills as a
// lowercase lookup set.
func (p *CandidateProfile) CombinedSkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.SkillsGeneral)+len(p.SkillsSoft))
	for _, s := range p.SkillsGeneral {
		set[lowerTrim(s)] = struct{}{}
	}
	for _, s := range p.SkillsSoft {
		set[lowerTrim(s)] = struct{}{}
	}
	return set
}
