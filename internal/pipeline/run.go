// Package pipeline provides the high-level orchestration for the resume
// matching process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fairmatch/internal/experience"
	"github.com/jonathan/fairmatch/internal/observability"
	"github.com/jonathan/fairmatch/internal/parsing"
	"github.com/jonathan/fairmatch/internal/ranking"
	"github.com/jonathan/fairmatch/internal/types"
)

// Step and category identifiers for progress events.
const (
	StepProfile        = "candidate_profile"
	StepCatalogRanking = "catalog_ranking"
	StepBoothRanking   = "booth_ranking"

	CategoryParsing = "parsing"
	CategoryRanking = "ranking"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumeText   string
	PrimaryField string
	Catalog      *types.JobCatalog
	Fair         *types.JobFair
	Verbose      bool
	OnProgress   ProgressCallback
}

// Result holds every artifact produced by one pipeline run.
type Result struct {
	RunID      string                        `json:"run_id"`
	Profile    *types.CandidateProfile       `json:"candidate_profile"`
	TotalYears float64                       `json:"total_experience_years"`
	Catalog    *types.RecommendationList     `json:"recommendations,omitempty"`
	Booths     *types.BoothRecommendationList `json:"booth_recommendations,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Run parses the resume text and ranks the candidate against the configured
// catalog and job fair. The two ranking branches are independent and run
// concurrently when both inputs are present. When no text is available the
// result carries the marked profile and no rankings.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	parser := &parsing.Parser{PrimaryField: opts.PrimaryField}
	profile := parser.Parse(opts.ResumeText)
	if profile.Error != "" {
		// Extraction unavailable is reported on the profile, not fatal.
		// The ranking branches are skipped since there is nothing to score.
		emitProgress(&opts, runID, StepProfile, CategoryParsing, profile.Error, profile)
		return &Result{RunID: runID, Profile: profile}, nil
	}
	if opts.Verbose {
		printer.PrintProfile(profile)
	}
	emitProgress(&opts, runID, StepProfile, CategoryParsing,
		fmt.Sprintf("Parsed profile for %s", profile.Name), profile)

	totalYears := experience.TotalYears(profile.Experience)

	result := &Result{
		RunID:      runID,
		Profile:    profile,
		TotalYears: totalYears,
	}

	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex

	if opts.Catalog != nil {
		g.Go(func() error {
			list := ranking.RankCatalog(profile, totalYears, opts.Catalog)
			list.RunID = runID
			mu.Lock()
			result.Catalog = &list
			mu.Unlock()
			emitProgress(&opts, runID, StepCatalogRanking, CategoryRanking,
				fmt.Sprintf("Ranked %d catalog matches", len(list.Results)), nil)
			return nil
		})
	}

	if opts.Fair != nil {
		g.Go(func() error {
			list := ranking.RecommendBooths(profile, totalYears, opts.Fair)
			list.RunID = runID
			mu.Lock()
			result.Booths = &list
			mu.Unlock()
			emitProgress(&opts, runID, StepBoothRanking, CategoryRanking,
				fmt.Sprintf("Ranked %d booths", len(list.Booths)), nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		if result.Catalog != nil {
			printer.PrintRecommendations(result.Catalog)
		}
		if result.Booths != nil {
			printer.PrintBoothRecommendations(result.Booths)
		}
	}

	return result, nil
}
