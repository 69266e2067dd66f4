package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
)

const phoneConfidence = 0.90

var (
	// Mobile: 01X-XXXX-XXXX or 01XXXXXXXXX with the Korean carrier prefix class.
	reMobile = regexp.MustCompile(`01[016789]-?\d{3,4}-?\d{4}`)
	// Landline: 2-3 digit area code with hyphenated groups.
	reLandline = regexp.MustCompile(`0\d{1,2}-\d{3,4}-\d{4}`)
)

// Phone detects mobile and landline numbers. A number matched by both shapes
// yields duplicate spans; the reconciler collapses them.
func Phone(text string) []types.Match {
	out := findAll(text, reMobile, types.CatPhone, phoneConfidence)
	out = append(out, findAll(text, reLandline, types.CatPhone, phoneConfidence)...)
	return out
}
