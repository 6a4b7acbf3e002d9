// Package main provides the fairmatch CLI for resume parsing and job matching.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fairmatch",
	Short: "Resume parsing and job matching toolkit",
	Long:  "fairmatch extracts structured candidate profiles from resume text and scores them against job catalogs and job-fair booths, producing ranked recommendation JSON artifacts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
