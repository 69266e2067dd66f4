package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
)

const nameConfidence = 0.75

// surnames is the fixed set of common Korean family-name syllables that gates
// the Hangul name heuristics.
var surnames = map[rune]struct{}{}

func init() {
	for _, r := range "김이박최정강조윤장임한오서신권황안송전홍문양고손배백허유남심노하곽성차주우구민류진" {
		surnames[r] = struct{}{}
	}
}

var (
	// Cue phrase followed by a 2-3 syllable Hangul name.
	reNameCue = regexp.MustCompile(`(?:이름\s*[:：은는]|성함\s*[:：은는]|(?i:name)\s*(?:is|:))\s*([가-힣]{2,3})`)
	// 2-3 syllable token directly followed by a honorific or role suffix.
	reNameHonorific = regexp.MustCompile(`([가-힣]{2,3})\s*(?:님|씨|고객님|고객|학생|선생님|과장님|부장님|팀장님|대리님)`)
	// Latin two-token capitalized shape.
	reNameLatin = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
)

// Name detects person names with surname and cue heuristics. Confidence is
// lower than the validated categories since these are heuristic by nature.
func Name(text string) []types.Match {
	var out []types.Match
	for _, m := range findAllGroup(text, reNameCue, types.CatName, nameConfidence) {
		if surnameInitial(m.Value) {
			out = append(out, m)
		}
	}
	for _, m := range findAllGroup(text, reNameHonorific, types.CatName, nameConfidence) {
		if surnameInitial(m.Value) {
			out = append(out, m)
		}
	}
	out = append(out, findAll(text, reNameLatin, types.CatName, nameConfidence)...)
	return out
}

// surnameInitial reports whether the first syllable of a Hangul token is in
// the surname set.
func surnameInitial(s string) bool {
	for _, r := range s {
		_, ok := surnames[r]
		return ok
	}
	return false
}
