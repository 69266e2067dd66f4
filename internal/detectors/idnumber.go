package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
)

const idNumberConfidence = 0.60

var (
	// ID keyword cue followed by a short alphanumeric token.
	reIDCue = regexp.MustCompile(`(?:사번|학번|직원\s*번호|회원\s*번호|(?i:employee\s*id|student\s*id|user\s*id))[\s:]*([A-Za-z0-9]{4,15})`)
	// Bare uppercase-prefixed identifier, e.g. EMP20240117.
	reIDBare = regexp.MustCompile(`\b[A-Z]{2,4}\d{4,8}\b`)
)

// IDNumber detects miscellaneous identifiers such as employee or student
// numbers. Weakest heuristic in the catalog, hence the lowest confidence.
func IDNumber(text string) []types.Match {
	out := findAllGroup(text, reIDCue, types.CatIDNumber, idNumberConfidence)
	out = append(out, findAll(text, reIDBare, types.CatIDNumber, idNumberConfidence)...)
	return out
}
