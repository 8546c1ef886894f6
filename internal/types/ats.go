// Package types provides type definitions for structured data used throughout the ATS scorer.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ParsedResume is the best-effort structured view of an HTML resume.
// Contact fields are empty strings when extraction could not find them;
// the scoring service turns missing fields into formatting errors.
type ParsedResume struct {
	Name           string
	Email          string
	Phone          string
	ExperienceText string
	EducationText  string
	SkillsText     string
}

// MatchScores holds the three overlap percentages produced by the matcher
// passes. Values are percentages and can exceed 100 because of weighted
// partial credit; clamping happens once, in the aggregator.
type MatchScores struct {
	KeywordMatch       float64 `json:"keywordMatch"`
	SoftSkillsMatch    float64 `json:"softSkillsMatch"`
	IndustryTermsMatch float64 `json:"industryTermsMatch"`
}

// ATSResult is the terminal scoring output returned to the caller and
// written to the cache.
type ATSResult struct {
	ATSScore           float64  `json:"atsScore"`
	KeywordMatch       float64  `json:"keywordMatch"`
	SoftSkillsMatch    float64  `json:"softSkillsMatch"`
	IndustryTermsMatch float64  `json:"industryTermsMatch"`
	FormattingErrors   []string `json:"formattingErrors"`
}

// ScoreResumeRequest represents the request body for POST /api/ats/score-resume.
type ScoreResumeRequest struct {
	HTMLResume     string `json:"htmlResume" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// Validate validates the ScoreResumeRequest using the validator.
func (r *ScoreResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
