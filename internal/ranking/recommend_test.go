package ranking

import (
	"testing"

	"github.com/jonathan/fairmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongProfile() *types.CandidateProfile {
	g := 3.8
	return &types.CandidateProfile{
		SkillsGeneral: []string{"go", "python", "docker"},
		SkillsSoft:    []string{"teamwork", "communication"},
		Education:     []types.EducationEntry{{Institution: "State University", GPA: &g}},
		PrimaryField:  "computer_science",
	}
}

func requirement(id, title string, skills ...string) types.JobRequirement {
	return types.JobRequirement{
		ID:                    id,
		JobTitle:              title,
		PrimaryField:          "computer_science",
		RequiredSkillsGeneral: skills,
	}
}

func TestRankCatalog_SortsDescendingByScore(t *testing.T) {
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		requirement("weak", "Partial Match", "go", "rust", "kubernetes"),
		requirement("strong", "Full Match", "go", "python"),
	}}

	list := RankCatalog(strongProfile(), 3.0, catalog)

	require.Len(t, list.Results, 2)
	assert.Equal(t, "strong", list.Results[0].JobID)
	assert.Equal(t, "weak", list.Results[1].JobID)
	assert.GreaterOrEqual(t, list.Results[0].Score, list.Results[1].Score)
}

func TestRankCatalog_DropsBelowCutoff(t *testing.T) {
	noGPA := &types.CandidateProfile{SkillsGeneral: []string{"go"}}
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		{JobTitle: "Demanding", RequiredSkillsGeneral: []string{"rust", "scala"}, RequiredExperienceYears: 10, RequiredCGPA: 4.0},
	}}

	list := RankCatalog(noGPA, 0, catalog)

	assert.Empty(t, list.Results)
}

func TestRankCatalog_ModestScoreAboveCutoffKept(t *testing.T) {
	// No required skills, no experience or CGPA requirement: the score is
	// the experience plus education weights when a GPA is present.
	g := 3.0
	profile := &types.CandidateProfile{
		Education: []types.EducationEntry{{GPA: &g}},
	}
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{{JobTitle: "Open Role"}}}

	list := RankCatalog(profile, 0, catalog)

	require.Len(t, list.Results, 1)
	assert.InDelta(t, 60.0, list.Results[0].Score, 0.001)
}

func TestRankCatalog_FieldGateSkipsMismatch(t *testing.T) {
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		{JobTitle: "Nurse", PrimaryField: "medical", RequiredSkillsGeneral: []string{"go"}},
		requirement("cs", "Engineer", "go"),
	}}

	list := RankCatalog(strongProfile(), 5.0, catalog)

	require.Len(t, list.Results, 1)
	assert.Equal(t, "cs", list.Results[0].JobID)
}

func TestRankCatalog_UnknownCandidateFieldDisablesGate(t *testing.T) {
	g := 3.5
	profile := &types.CandidateProfile{
		SkillsGeneral: []string{"go"},
		Education:     []types.EducationEntry{{GPA: &g}},
	}
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		{JobTitle: "Engineer", PrimaryField: "computer_science", RequiredSkillsGeneral: []string{"go"}},
	}}

	list := RankCatalog(profile, 2.0, catalog)

	require.Len(t, list.Results, 1)
}

func TestRankCatalog_FieldlessRequirementSkippedForKnownField(t *testing.T) {
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		{JobTitle: "Generalist", RequiredSkillsGeneral: []string{"go"}},
	}}

	list := RankCatalog(strongProfile(), 5.0, catalog)

	assert.Empty(t, list.Results)
}

func TestRankCatalog_FieldComparisonIsNormalized(t *testing.T) {
	profile := strongProfile()
	profile.PrimaryField = "Computer Science"
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		requirement("cs", "Engineer", "go"),
	}}

	list := RankCatalog(profile, 2.0, catalog)

	require.Len(t, list.Results, 1)
}

func TestRankCatalog_StableOrderOnTies(t *testing.T) {
	catalog := &types.JobCatalog{Requirements: []types.JobRequirement{
		requirement("first", "Role A", "go"),
		requirement("second", "Role B", "go"),
	}}

	list := RankCatalog(strongProfile(), 5.0, catalog)

	require.Len(t, list.Results, 2)
	assert.Equal(t, "first", list.Results[0].JobID)
	assert.Equal(t, "second", list.Results[1].JobID)
}

func TestRecommendBooths_GroupsAndOrders(t *testing.T) {
	fair := &types.JobFair{Booths: []types.Booth{
		{
			ID:          "booth-weak",
			CompanyName: "Weak Co",
			Openings: []types.JobRequirement{
				requirement("w1", "Role", "rust", "scala", "kubernetes", "terraform"),
			},
		},
		{
			ID:          "booth-strong",
			CompanyName: "Strong Co",
			BoothNumber: "A12",
			Openings: []types.JobRequirement{
				requirement("s1", "Partial", "go", "rust"),
				requirement("s2", "Full", "go", "python"),
			},
		},
	}}

	list := RecommendBooths(strongProfile(), 3.0, fair)

	require.Len(t, list.Booths, 2)
	assert.Equal(t, "booth-strong", list.Booths[0].BoothID)
	assert.Equal(t, "A12", list.Booths[0].BoothNumber)

	openings := list.Booths[0].Openings
	require.Len(t, openings, 2)
	assert.Equal(t, "s2", openings[0].JobID)
	assert.InDelta(t, openings[0].Score, list.Booths[0].HighestScore, 0.001)
	assert.GreaterOrEqual(t, list.Booths[0].HighestScore, list.Booths[1].HighestScore)
}

func TestRecommendBooths_KeepsLowScoringOpenings(t *testing.T) {
	fair := &types.JobFair{Booths: []types.Booth{
		{CompanyName: "Picky Co", Openings: []types.JobRequirement{
			{JobTitle: "Demanding", PrimaryField: "computer_science", RequiredSkillsGeneral: []string{"cobol"}, RequiredExperienceYears: 20, RequiredCGPA: 4.0},
		}},
	}}

	list := RecommendBooths(strongProfile(), 1.0, fair)

	require.Len(t, list.Booths, 1)
	require.Len(t, list.Booths[0].Openings, 1)
	assert.Less(t, list.Booths[0].Openings[0].Score, 50.0)
}

func TestRecommendBooths_FieldlessOpeningSkippedForKnownField(t *testing.T) {
	g := 3.5
	profile := &types.CandidateProfile{
		SkillsGeneral: []string{"anatomy"},
		Education:     []types.EducationEntry{{GPA: &g}},
		PrimaryField:  "medical",
	}
	fair := &types.JobFair{Booths: []types.Booth{
		{CompanyName: "NoField Co", Openings: []types.JobRequirement{
			{JobTitle: "Generalist"},
		}},
	}}

	list := RecommendBooths(profile, 0, fair)

	assert.Empty(t, list.Booths)
}

func TestRecommendBooths_OmitsBoothsWithNoEligibleOpenings(t *testing.T) {
	fair := &types.JobFair{Booths: []types.Booth{
		{CompanyName: "Clinic", Openings: []types.JobRequirement{
			{JobTitle: "Nurse", PrimaryField: "medical"},
		}},
		{CompanyName: "Empty Co"},
	}}

	list := RecommendBooths(strongProfile(), 1.0, fair)

	assert.Empty(t, list.Booths)
}
