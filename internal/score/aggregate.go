// Package score combines the matcher percentages and formatting defects
// into the final 0-100 ATS compatibility score.
package score

// Aggregation weights. The inputs are unbounded percentages (weighted
// partial credit can push them past 100), so the final clamp is
// load-bearing and must stay at the very end of the pipeline.
const (
	keywordWeight       = 0.45
	softSkillsWeight    = 1.1
	industryTermsWeight = 1.2

	formattingBase        = 10.0
	formattingPenaltyStep = 0.5

	maxScore = 100.0
)

// CalculateATSScore combines keyword overlap, soft-skill overlap,
// industry-term overlap and the formatting-defect count into one weighted,
// clamped score. It is monotonically non-decreasing in each match
// percentage.
func CalculateATSScore(keywordMatch float64, formattingErrors []string, softSkillsMatch, industryTermsMatch float64) float64 {
	keywordScore := keywordMatch * keywordWeight

	formattingScore := formattingBase - float64(len(formattingErrors))*formattingPenaltyStep
	if formattingScore < 0 {
		formattingScore = 0
	}

	softSkillsScore := softSkillsMatch * softSkillsWeight
	industryScore := industryTermsMatch * industryTermsWeight

	raw := keywordScore + formattingScore + softSkillsScore + industryScore
	return clamp(raw, 0, maxScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
