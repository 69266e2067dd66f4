package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/validate"
)

const rrnConfidence = 0.99

// reRRN matches the YYMMDD-GNNNNNN shape with a 1-4 gender/century digit.
var reRRN = regexp.MustCompile(`\b\d{6}-[1-4]\d{6}\b`)

// RRN detects resident registration numbers. The date block and weighted
// checksum are verified before a candidate is accepted.
func RRN(text string) []types.Match {
	var out []types.Match
	for _, loc := range reRRN.FindAllStringIndex(text, -1) {
		if !validate.RRN(text[loc[0]:loc[1]]) {
			continue
		}
		out = append(out, newMatch(text, loc[0], loc[1], types.CatRRN, rrnConfidence))
	}
	return out
}
