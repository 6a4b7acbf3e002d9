// Package ranking orders scored job matches into candidate-facing
// recommendations, both for a flat job catalog and for job-fair booths.
package ranking

import (
	"sort"

	"github.com/jonathan/fairmatch/internal/scoring"
	"github.com/jonathan/fairmatch/internal/types"
)

// minCatalogScore is the cutoff below which a catalog match is not worth
// recommending.
const minCatalogScore = 50.0

// RankCatalog scores the candidate against every requirement in the catalog
// and returns matches at or above the cutoff, sorted descending by score.
// Equal scores keep catalog order. When the candidate carries a primary
// field, requirements whose field does not match are skipped, including
// field-less ones; an unknown candidate field disables the gate.
func RankCatalog(profile *types.CandidateProfile, totalYears float64, catalog *types.JobCatalog) types.RecommendationList {
	results := []types.MatchResult{}
	candidateField := types.NormalizeField(profile.PrimaryField)

	for i := range catalog.Requirements {
		req := &catalog.Requirements[i]
		if fieldMismatch(candidateField, req.PrimaryField) {
			continue
		}
		result := scoring.Score(profile, totalYears, req)
		if result.Score >= minCatalogScore {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return types.RecommendationList{Results: results}
}

// RecommendBooths scores the candidate against every opening of every booth
// and groups the results per booth. All scored openings are kept; the field
// gate still applies. Booths with no eligible openings are omitted. Openings
// sort descending within a booth and booths sort descending by their highest
// opening score, stable in fair order.
func RecommendBooths(profile *types.CandidateProfile, totalYears float64, fair *types.JobFair) types.BoothRecommendationList {
	booths := []types.BoothRecommendation{}
	candidateField := types.NormalizeField(profile.PrimaryField)

	for i := range fair.Booths {
		booth := &fair.Booths[i]
		openings := []types.MatchResult{}
		for j := range booth.Openings {
			opening := &booth.Openings[j]
			if fieldMismatch(candidateField, opening.PrimaryField) {
				continue
			}
			openings = append(openings, scoring.Score(profile, totalYears, opening))
		}
		if len(openings) == 0 {
			continue
		}

		sort.SliceStable(openings, func(a, b int) bool {
			return openings[a].Score > openings[b].Score
		})

		booths = append(booths, types.BoothRecommendation{
			BoothID:      booth.ID,
			CompanyName:  booth.CompanyName,
			BoothNumber:  booth.BoothNumber,
			HighestScore: openings[0].Score,
			Openings:     openings,
		})
	}

	sort.SliceStable(booths, func(a, b int) bool {
		return booths[a].HighestScore > booths[b].HighestScore
	})

	return types.BoothRecommendationList{Booths: booths}
}

// fieldMismatch reports whether the field gate excludes a requirement.
// The gate engages whenever the candidate declares a field; a field-less
// requirement never matches a field-carrying candidate. An unknown
// candidate field disables the gate entirely.
func fieldMismatch(candidateField, requirementField string) bool {
	return candidateField != "" && candidateField != types.NormalizeField(requirementField)
}
