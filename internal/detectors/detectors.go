package detectors

import (
	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/whitelist"
)

// Detector extracts candidate matches for a single category from raw text.
// Detectors run independently; a span proposed by several categories is
// resolved later by the reconciler, never here.
type Detector func(text string) []types.Match

// catalog is the ordered detector chain. Order matters: it fixes insertion
// order, which breaks confidence ties during reconciliation.
var catalog = []Detector{
	Phone, Email, Card, RRN, Account, Name, Address, IDNumber,
}

// Extract runs the full catalog over text and suppresses candidates whose
// exact value is whitelisted. Whitelisted values are dropped before they ever
// reach the reconciler.
func Extract(text string, wl *whitelist.Whitelist) []types.Match {
	var out []types.Match
	for _, d := range catalog {
		for _, m := range d(text) {
			if wl.Contains(m.Category, m.Value) {
				continue
			}
			out = append(out, m)
		}
	}
	return out
}

// IDs returns the categories the catalog covers, in execution order.
func IDs() []types.Category {
	return append([]types.Category(nil), types.Categories...)
}
