package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/validate"
)

const accountConfidence = 0.85

var (
	// Digit/hyphen run of 10-20 characters after an account keyword cue.
	reAccountCue = regexp.MustCompile(`(?:계좌\s*번호|계좌번호|계좌|(?i:account))[\s:]*([0-9-]{10,20})`)
	// Bare NNN-NN(N)-NNNNNN(NN) shape without a cue.
	reAccountBare = regexp.MustCompile(`\b\d{3}-\d{2,3}-\d{6,8}\b`)
)

// Account detects bank account numbers, either cued by an account keyword or
// in the bare hyphenated shape. Candidates with fewer than 10 digits are
// dropped.
func Account(text string) []types.Match {
	out := findAllGroup(text, reAccountCue, types.CatAccount, accountConfidence)
	out = append(out, findAll(text, reAccountBare, types.CatAccount, accountConfidence)...)

	kept := out[:0]
	for _, m := range out {
		if len(validate.StripNonDigits(m.Value)) < 10 {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
