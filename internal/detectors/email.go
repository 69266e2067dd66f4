package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
)

const emailConfidence = 0.95

var reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Email detects standard local-part@domain.tld addresses.
func Email(text string) []types.Match {
	return findAll(text, reEmail, types.CatEmail, emailConfidence)
}
