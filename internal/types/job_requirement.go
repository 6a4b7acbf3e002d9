package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobRequirement represents one target posting to score a candidate against.
// Admin-defined catalog requirements and organizer-defined booth openings are
// structurally identical for matching purposes.
type JobRequirement struct {
	ID                      string   `json:"id,omitempty"`
	JobTitle                string   `json:"job_title" validate:"required"`
	Description             string   `json:"description,omitempty"`
	PrimaryField            string   `json:"primary_field"`
	RequiredSkillsGeneral   []string `json:"required_skills_general"`
	RequiredSkillsSoft      []string `json:"required_skills_soft"`
	RequiredExperienceYears int      `json:"required_experience_years" validate:"gte=0"`
	RequiredCGPA            float64  `json:"required_cgpa" validate:"gte=0,lte=4"`
}

// JobCatalog represents a collection of job requirements (wrapper for schema).
type JobCatalog struct {
	Requirements []JobRequirement `json:"requirements"`
}

// Validate validates the JobRequirement using the validator.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates every requirement in the catalog.
func (c *JobCatalog) Validate() error {
	for i := range c.Requirements {
		if err := c.Requirements[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeField lowercases a primary-field tag and replaces spaces with
// underscores so "Computer Science" and "computer_science" compare equal.
func NormalizeField(field string) string {
	return strings.ReplaceAll(lowerTrim(field), " ", "_")
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
