// Package reconcile merges candidate matches from the pattern catalog and the
// external semantic detector into one non-overlapping set.
package reconcile

import (
	"sort"

	"github.com/piigate/piigate/internal/types"
)

// Reconcile resolves overlapping and duplicate candidate spans into a new
// ordered set. Candidates are sorted by (start, end); a stable sort keeps
// insertion order among equal spans so confidence ties favor the
// earlier-inserted candidate.
//
// Resolution is greedy highest-confidence-wins: identical spans keep the
// higher confidence (ties keep the earlier), partially overlapping spans keep
// the higher confidence and drop the loser entirely, disjoint spans are both
// kept. The greedy walk is linear but not globally optimal on chained
// overlaps; that behavior is load-bearing and must not be upgraded to an
// optimal interval scheduler.
func Reconcile(candidates []types.Match) []types.Match {
	if len(candidates) == 0 {
		return nil
	}

	sorted := append([]types.Match(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	accepted := make([]types.Match, 0, len(sorted))
	for _, c := range sorted {
		accepted = resolve(accepted, c)
	}
	return accepted
}

// resolve merges candidate c into the accepted set, evicting lower-confidence
// overlapping entries. Accepted spans are disjoint and sorted, so only the
// tail can conflict with c.
func resolve(accepted []types.Match, c types.Match) []types.Match {
	for len(accepted) > 0 {
		last := accepted[len(accepted)-1]
		if !last.Overlaps(c) {
			break
		}
		if last.Start == c.Start && last.End == c.End {
			// Identical span: higher confidence wins, ties keep the
			// earlier-inserted (already accepted) match.
			if c.Confidence > last.Confidence {
				accepted[len(accepted)-1] = c
			}
			return accepted
		}
		// Partial overlap: higher confidence wins outright, no merging.
		if c.Confidence > last.Confidence {
			accepted = accepted[:len(accepted)-1]
			continue
		}
		return accepted
	}
	return append(accepted, c)
}
