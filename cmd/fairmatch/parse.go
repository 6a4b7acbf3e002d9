package main

import (
	"fmt"
	"os"

	"github.com/jonathan/fairmatch/internal/parsing"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse resume text into a candidate profile",
	Long:  "Extracts contact details, education, work experience, skills and languages from plain resume text, producing a CandidateProfile JSON.",
	RunE:  runParse,
}

var (
	parseResume string
	parseField  string
	parseOutput string
)

func init() {
	parseCmd.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to input resume text file (required)")
	parseCmd.Flags().StringVarP(&parseField, "field", "f", "", "Primary field override (e.g. computer_science); identified from the text when omitted")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output CandidateProfile JSON file (required)")

	if err := parseCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := parseCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", parseResume, err)
	}

	parser := &parsing.Parser{PrimaryField: parseField}
	profile := parser.Parse(string(content))
	if profile.Error != "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", profile.Error)
	}

	if err := writeJSONArtifact(parseOutput, profile); err != nil {
		return err
	}
	validateArtifact("candidate_profile.schema.json", parseOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume to %s\n", parseOutput)
	return nil
}
