package main

import (
	"fmt"
	"os"

	"github.com/jonathan/fairmatch/internal/experience"
	"github.com/jonathan/fairmatch/internal/ranking"
	"github.com/jonathan/fairmatch/internal/types"
	"github.com/spf13/cobra"
)

var boothsCmd = &cobra.Command{
	Use:   "booths",
	Short: "Rank a candidate against job-fair booths",
	Long:  "Scores a candidate profile against every opening of every booth in a job fair and produces a BoothRecommendationList JSON grouped per booth, sorted by each booth's best score.",
	RunE:  runBooths,
}

var (
	boothsProfile string
	boothsFair    string
	boothsOutput  string
)

func init() {
	boothsCmd.Flags().StringVarP(&boothsProfile, "profile", "p", "", "Path to input CandidateProfile JSON file (required)")
	boothsCmd.Flags().StringVarP(&boothsFair, "fair", "j", "", "Path to input JobFair JSON file (required)")
	boothsCmd.Flags().StringVarP(&boothsOutput, "out", "o", "", "Path to output BoothRecommendationList JSON file (required)")

	if err := boothsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := boothsCmd.MarkFlagRequired("fair"); err != nil {
		panic(fmt.Sprintf("failed to mark fair flag as required: %v", err))
	}
	if err := boothsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(boothsCmd)
}

func runBooths(_ *cobra.Command, _ []string) error {
	var profile types.CandidateProfile
	if err := readJSONFile(boothsProfile, &profile); err != nil {
		return err
	}

	var fair types.JobFair
	if err := readJSONFile(boothsFair, &fair); err != nil {
		return err
	}
	if err := fair.Validate(); err != nil {
		return fmt.Errorf("invalid job fair: %w", err)
	}

	totalYears := experience.TotalYears(profile.Experience)
	list := ranking.RecommendBooths(&profile, totalYears, &fair)

	if err := writeJSONArtifact(boothsOutput, list); err != nil {
		return err
	}
	validateArtifact("booth_recommendations.schema.json", boothsOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d booths to %s\n", len(list.Booths), boothsOutput)
	return nil
}
