package core

import (
	"github.com/piigate/piigate/internal/guard"
	"github.com/piigate/piigate/internal/llmdetect"
	"github.com/piigate/piigate/internal/mask"
	"github.com/piigate/piigate/internal/reconcile"
	"github.com/piigate/piigate/internal/score"
	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/whitelist"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type (
	Match       = types.Match
	Category    = types.Category
	Source      = types.Source
	Service     = guard.Service
	GuardResult = guard.GuardResult
	ScrubResult = guard.ScrubResult
	Whitelist   = whitelist.Whitelist
	Detector    = llmdetect.Detector
)

// BlockThreshold is the risk score at or above which Guard refuses to answer.
const BlockThreshold = score.BlockThreshold

// New builds a guard service without an external semantic detector. Pass the
// result of LoadWhitelist or nil.
func New(wl *Whitelist) *Service {
	return guard.New(wl, nil)
}

// NewWithDetector builds a guard service that merges external candidates.
func NewWithDetector(wl *Whitelist, d Detector) *Service {
	return guard.New(wl, d)
}

// LoadWhitelist reads a whitelist YAML file.
func LoadWhitelist(path string) (*Whitelist, error) {
	return whitelist.Load(path)
}

// Categories lists every supported category.
func Categories() []Category {
	out := make([]Category, len(types.Categories))
	copy(out, types.Categories)
	return out
}

// ScoreMatches computes the risk score for an already reconciled match set.
func ScoreMatches(matches []Match) int {
	return score.Score(matches)
}

// MaskText masks a non-overlapping match set in text.
func MaskText(text string, matches []Match) string {
	return mask.Apply(text, matches)
}

// ReconcileMatches merges candidates from multiple sources into one
// non-overlapping set.
func ReconcileMatches(candidates []Match) []Match {
	return reconcile.Reconcile(candidates)
}
