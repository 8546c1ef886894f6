package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateATSScore_Formula(t *testing.T) {
	// 50*0.45 + (10 - 0) + 10*1.1 + 10*1.2 = 22.5 + 10 + 11 + 12
	got := CalculateATSScore(50, nil, 10, 10)
	assert.InDelta(t, 55.5, got, 1e-9)
}

func TestCalculateATSScore_FormattingPenalty(t *testing.T) {
	errs := []string{"Missing name.", "Missing email.", "Missing phone."}

	// Three defects shave 1.5 off the 10-point formatting base.
	got := CalculateATSScore(0, errs, 0, 0)
	assert.InDelta(t, 8.5, got, 1e-9)
}

func TestCalculateATSScore_FormattingFloor(t *testing.T) {
	errs := make([]string, 25) // penalty 12.5 exceeds the base

	got := CalculateATSScore(0, errs, 0, 0)
	assert.Zero(t, got)
}

func TestCalculateATSScore_ClampsAt100(t *testing.T) {
	// Raw percentages can exceed 100; the final clamp absorbs them.
	got := CalculateATSScore(500, nil, 500, 500)
	assert.Equal(t, 100.0, got)
}

func TestCalculateATSScore_AlwaysInRange(t *testing.T) {
	inputs := []float64{0, 1, 33.3, 100, 250, 1e6}
	for _, keyword := range inputs {
		for _, soft := range inputs {
			for _, industry := range inputs {
				got := CalculateATSScore(keyword, nil, soft, industry)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 100.0)
			}
		}
	}
}

func TestCalculateATSScore_Monotonic(t *testing.T) {
	base := CalculateATSScore(10, nil, 10, 10)

	assert.GreaterOrEqual(t, CalculateATSScore(20, nil, 10, 10), base)
	assert.GreaterOrEqual(t, CalculateATSScore(10, nil, 20, 10), base)
	assert.GreaterOrEqual(t, CalculateATSScore(10, nil, 10, 20), base)

	// More formatting defects never raise the score.
	withErrs := CalculateATSScore(10, []string{"Missing email."}, 10, 10)
	assert.LessOrEqual(t, withErrs, base)
}
