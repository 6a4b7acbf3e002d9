package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/fairmatch/internal/pipeline"
	"github.com/jonathan/fairmatch/internal/types"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full matching pipeline",
	Long:  "Parses resume text and ranks the candidate against a job catalog and/or a job fair in one pass, producing a combined result JSON with a unique run ID.",
	RunE:  runRun,
}

var (
	runResume  string
	runCatalog string
	runFair    string
	runField   string
	runOutput  string
	runVerbose bool
)

func init() {
	runCmd.Flags().StringVarP(&runResume, "resume", "r", "", "Path to input resume text file (required)")
	runCmd.Flags().StringVarP(&runCatalog, "catalog", "c", "", "Path to input JobCatalog JSON file")
	runCmd.Flags().StringVarP(&runFair, "fair", "j", "", "Path to input JobFair JSON file")
	runCmd.Flags().StringVarP(&runField, "field", "f", "", "Primary field override; identified from the text when omitted")
	runCmd.Flags().StringVarP(&runOutput, "out", "o", "", "Path to output result JSON file (required)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print formatted summaries of each stage")

	if err := runCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := runCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if runCatalog == "" && runFair == "" {
		return fmt.Errorf("at least one of --catalog or --fair is required")
	}

	content, err := os.ReadFile(runResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", runResume, err)
	}

	opts := pipeline.RunOptions{
		ResumeText:   string(content),
		PrimaryField: runField,
		Verbose:      runVerbose,
	}

	if runCatalog != "" {
		var catalog types.JobCatalog
		if err := readJSONFile(runCatalog, &catalog); err != nil {
			return err
		}
		if err := catalog.Validate(); err != nil {
			return fmt.Errorf("invalid job catalog: %w", err)
		}
		opts.Catalog = &catalog
	}

	if runFair != "" {
		var fair types.JobFair
		if err := readJSONFile(runFair, &fair); err != nil {
			return err
		}
		if err := fair.Validate(); err != nil {
			return fmt.Errorf("invalid job fair: %w", err)
		}
		opts.Fair = &fair
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}
	if result.Profile.Error != "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Profile.Error)
	}

	if err := writeJSONArtifact(runOutput, result); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run %s complete, result written to %s\n", result.RunID, runOutput)
	return nil
}
