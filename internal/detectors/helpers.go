package detectors

import (
	"regexp"
	"unicode/utf8"

	"github.com/piigate/piigate/internal/types"
)

// runeSpan converts a byte-offset span into code-point offsets. Match spans
// are exposed in code points so offsets stay meaningful for Hangul text.
func runeSpan(text string, byteStart, byteEnd int) (int, int) {
	start := utf8.RuneCountInString(text[:byteStart])
	end := start + utf8.RuneCountInString(text[byteStart:byteEnd])
	return start, end
}

// findAll emits one candidate per regex match with the given category and
// confidence. Source is always PATTERN here.
func findAll(text string, re *regexp.Regexp, cat types.Category, conf float64) []types.Match {
	var out []types.Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		out = append(out, newMatch(text, loc[0], loc[1], cat, conf))
	}
	return out
}

// findAllGroup is findAll over capture group 1, for cue-word patterns where
// only the value after the cue is the candidate.
func findAllGroup(text string, re *regexp.Regexp, cat types.Category, conf float64) []types.Match {
	var out []types.Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		if len(loc) < 4 || loc[2] < 0 {
			continue
		}
		out = append(out, newMatch(text, loc[2], loc[3], cat, conf))
	}
	return out
}

func newMatch(text string, byteStart, byteEnd int, cat types.Category, conf float64) types.Match {
	start, end := runeSpan(text, byteStart, byteEnd)
	return types.Match{
		Category:   cat,
		Value:      text[byteStart:byteEnd],
		Start:      start,
		End:        end,
		Confidence: conf,
		Source:     types.SourcePattern,
	}
}
