package types

// ScoreBreakdown represents the per-component contributions to a match score.
// Skills is in [0,40]; Experience and Education are each in [0,30].
type ScoreBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// MatchResult represents the outcome of scoring one candidate against one
// job requirement. Score is in [0,100]. Results are constructed fresh per
// scoring call and never mutated afterwards.
type MatchResult struct {
	JobID        string `json:"job_id,omitempty"`
	JobTitle     string `json:"job_title"`
	Description  string `json:"description,omitempty"`
	PrimaryField string `json:"primary_field,omitempty"`

	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"score_breakdown"`

	MatchedGeneralSkills []string `json:"matched_general_skills"`
	MissingGeneralSkills []string `json:"missing_general_skills"`
	MatchedSoftSkills    []string `json:"matched_soft_skills"`
	MissingSoftSkills    []string `json:"missing_soft_skills"`

	ExperienceMet              bool    `json:"experience_met"`
	RequiredExperienceYears    int     `json:"required_experience_years"`
	CandidateExperienceYears   float64 `json:"candidate_experience_years"`
	CandidateExperienceDisplay string  `json:"candidate_experience_display,omitempty"`

	EducationMet  bool     `json:"education_met"`
	RequiredCGPA  float64  `json:"required_cgpa"`
	CandidateCGPA *float64 `json:"candidate_cgpa,omitempty"`
}
