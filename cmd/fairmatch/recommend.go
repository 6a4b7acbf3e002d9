package main

import (
	"fmt"
	"os"

	"github.com/jonathan/fairmatch/internal/experience"
	"github.com/jonathan/fairmatch/internal/ranking"
	"github.com/jonathan/fairmatch/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank a candidate against a job catalog",
	Long:  "Scores a candidate profile against every requirement in a job catalog and produces a RecommendationList JSON of matches above the cutoff, sorted by score.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendCatalog string
	recommendOutput  string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input CandidateProfile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to input JobCatalog JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output RecommendationList JSON file (required)")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	var profile types.CandidateProfile
	if err := readJSONFile(recommendProfile, &profile); err != nil {
		return err
	}

	var catalog types.JobCatalog
	if err := readJSONFile(recommendCatalog, &catalog); err != nil {
		return err
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid job catalog: %w", err)
	}

	totalYears := experience.TotalYears(profile.Experience)
	list := ranking.RankCatalog(&profile, totalYears, &catalog)

	if err := writeJSONArtifact(recommendOutput, list); err != nil {
		return err
	}
	validateArtifact("recommendations.schema.json", recommendOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d matches to %s\n", len(list.Results), recommendOutput)
	return nil
}
