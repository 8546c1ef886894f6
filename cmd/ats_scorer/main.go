// Package main provides the entry point for the ATS scorer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scorer",
	Short: "ATS compatibility scorer",
	Long:  "ATS Scorer rates a resume's compatibility with a job description (0-100) using keyword, soft-skill and industry-term matching plus formatting checks, served over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
