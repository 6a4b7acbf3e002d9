// Package scoring computes how well a candidate profile matches a single
// job requirement. A match score is the sum of three weighted components:
// skills, experience and education.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/fairmatch/internal/experience"
	"github.com/jonathan/fairmatch/internal/types"
)

// Component weights. Together they define the 0-100 score scale.
const (
	skillsWeight     = 40.0
	experienceWeight = 30.0
	educationWeight  = 30.0
)

// Score evaluates profile against req. totalYears is the candidate's total
// work experience in years, normally computed by the experience package from
// the profile's work history.
func Score(profile *types.CandidateProfile, totalYears float64, req *types.JobRequirement) types.MatchResult {
	result := types.MatchResult{
		JobID:                      req.ID,
		JobTitle:                   req.JobTitle,
		Description:                req.Description,
		PrimaryField:               req.PrimaryField,
		RequiredExperienceYears:    req.RequiredExperienceYears,
		CandidateExperienceYears:   totalYears,
		CandidateExperienceDisplay: experience.FormatYears(totalYears),
		RequiredCGPA:               req.RequiredCGPA,
		CandidateCGPA:              profile.FirstGPA(),
	}

	skillSet := profile.CombinedSkillSet()
	result.MatchedGeneralSkills, result.MissingGeneralSkills = partitionSkills(req.RequiredSkillsGeneral, skillSet)
	result.MatchedSoftSkills, result.MissingSoftSkills = partitionSkills(req.RequiredSkillsSoft, skillSet)

	result.Breakdown.Skills = skillsScore(
		len(result.MatchedGeneralSkills)+len(result.MatchedSoftSkills),
		len(req.RequiredSkillsGeneral)+len(req.RequiredSkillsSoft),
	)
	result.Breakdown.Experience, result.ExperienceMet = experienceScore(totalYears, float64(req.RequiredExperienceYears))
	result.Breakdown.Education, result.EducationMet = educationScore(result.CandidateCGPA, req.RequiredCGPA)

	result.Score = round2(result.Breakdown.Skills + result.Breakdown.Experience + result.Breakdown.Education)
	return result
}

// partitionSkills splits the required skills into those present in the
// candidate's skill set and those absent. Matching is case-insensitive.
func partitionSkills(required []string, candidate map[string]struct{}) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, skill := range required {
		if _, ok := candidate[strings.ToLower(strings.TrimSpace(skill))]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// skillsScore awards a pro-rata share of the skills weight. A job with no
// required skills contributes nothing to the score.
func skillsScore(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(matched) / float64(total) * skillsWeight)
}

// experienceScore awards the full experience weight when the candidate meets
// the requirement, and a pro-rata share otherwise. A job with no experience
// requirement is trivially met.
func experienceScore(candidateYears, requiredYears float64) (float64, bool) {
	if requiredYears <= 0 || candidateYears >= requiredYears {
		return experienceWeight, true
	}
	score := candidateYears / requiredYears * experienceWeight
	return round2(clamp(score, 0, experienceWeight)), false
}

// educationScore mirrors experienceScore for CGPA. A candidate with no
// detectable CGPA scores zero; a job with no CGPA requirement awards the
// full weight to any candidate that has one.
func educationScore(candidateCGPA *float64, requiredCGPA float64) (float64, bool) {
	if candidateCGPA == nil {
		return 0, false
	}
	if requiredCGPA <= 0 || *candidateCGPA >= requiredCGPA {
		return educationWeight, true
	}
	score := *candidateCGPA / requiredCGPA * educationWeight
	return round2(clamp(score, 0, educationWeight)), false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
