// Package score converts a reconciled match set into a bounded 0-100 risk
// score.
package score

import (
	"math"

	"github.com/piigate/piigate/internal/types"
)

// BlockThreshold is the score at or above which the guard flow blocks.
const BlockThreshold = 70

// Score computes the aggregate risk of a match set. Each category contributes
// weight x count to the raw risk R; the score is min(100, round(100 x
// (1 - e^(-R/3)))). The saturating curve makes a single high-weight match
// (RRN, CARD) dominate while low-weight matches accumulate slowly.
func Score(matches []types.Match) int {
	counts := map[types.Category]int{}
	for _, m := range matches {
		counts[m.Category]++
	}

	risk := 0.0
	for cat, n := range counts {
		risk += cat.Weight() * float64(n)
	}
	if risk == 0 {
		return 0
	}

	s := int(math.Round(100 * (1 - math.Exp(-risk/3))))
	if s > 100 {
		s = 100
	}
	return s
}
