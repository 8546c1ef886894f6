package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/match"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/textnorm"
	"github.com/spf13/cobra"
)

var scoreVocabulary string

var scoreCmd = &cobra.Command{
	Use:   "score <resume.html> <job_description.txt>",
	Short: "Score a resume file against a job description file",
	Long:  `Run the full scoring pipeline on local files and print the result as JSON.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreVocabulary, "vocabulary", "", "Path to external vocabulary JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	htmlResume, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobDescription, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	vocab, err := match.Load(scoreVocabulary)
	if err != nil {
		return err
	}

	tokenizer := textnorm.NewTokenizer(nil)
	matcher := match.New(vocab, tokenizer, nil)
	scorer := scoring.New(matcher, tokenizer, cache.NewMemoryStore(), 0)

	result, err := scorer.Score(context.Background(), string(htmlResume), string(jobDescription))
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
