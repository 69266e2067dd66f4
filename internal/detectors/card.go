package detectors

import (
	"regexp"
	"strings"

	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/validate"
)

const cardConfidence = 0.97

// reCard is a deliberately wide net: any 13-25 character run of digits,
// spaces and hyphens between word breaks. The Luhn gate, not the pattern,
// does the narrowing.
var reCard = regexp.MustCompile(`\b[\d\s-]{13,25}\b`)

// Card detects payment-card numbers. Every candidate must pass the Luhn
// checksum; failures are dropped silently.
func Card(text string) []types.Match {
	var out []types.Match
	for _, loc := range reCard.FindAllStringIndex(text, -1) {
		bs, be := trimEdges(text, loc[0], loc[1])
		if bs >= be {
			continue
		}
		if !validate.Luhn(text[bs:be]) {
			continue
		}
		out = append(out, newMatch(text, bs, be, types.CatCard, cardConfidence))
	}
	return out
}

// trimEdges shrinks a byte span so it starts and ends on a digit, keeping the
// value in sync with the reported offsets.
func trimEdges(text string, bs, be int) (int, int) {
	for bs < be && strings.IndexByte(" \t\r\n-", text[bs]) >= 0 {
		bs++
	}
	for be > bs && strings.IndexByte(" \t\r\n-", text[be-1]) >= 0 {
		be--
	}
	return bs, be
}
