package llmdetect

import (
	"encoding/json"
	"strings"

	"github.com/piigate/piigate/internal/types"
)

// piiPayload is the detector's PII extraction contract.
type piiPayload struct {
	Detected []piiEntry `json:"pii_detected"`
}

type piiEntry struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
}

// stripFences removes a markdown code fence the model may wrap its JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// parsePII converts the raw model output into validated matches. Entries with
// confidence <= 0.3 are discarded. Spans that do not reproduce the reported
// value are relocated to the first occurrence of the value in the text, or
// dropped when the value does not occur at all, so every returned match
// satisfies the value == text[start:end] invariant.
func parsePII(text, raw string) ([]types.Match, error) {
	var payload piiPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return nil, err
	}

	runes := []rune(text)
	var out []types.Match
	for _, e := range payload.Detected {
		if e.Confidence <= minConfidence || e.Value == "" {
			continue
		}
		start, end, ok := anchorSpan(runes, e.Value, e.Start, e.End)
		if !ok {
			continue
		}
		out = append(out, types.Match{
			Category:   types.Category(strings.ToUpper(strings.TrimSpace(e.Type))),
			Value:      e.Value,
			Start:      start,
			End:        end,
			Confidence: e.Confidence,
			Source:     types.SourceExternal,
		})
	}
	return out, nil
}

// anchorSpan verifies a reported code-point span against the value, falling
// back to searching the text when the model's offsets are off.
func anchorSpan(runes []rune, value string, start, end int) (int, int, bool) {
	val := []rune(value)
	if start >= 0 && end <= len(runes) && end-start == len(val) && string(runes[start:end]) == value {
		return start, end, true
	}
	if idx := indexRunes(runes, val); idx >= 0 {
		return idx, idx + len(val), true
	}
	return 0, 0, false
}

// indexRunes returns the rune offset of the first occurrence of needle.
func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return i
		}
	}
	return -1
}

// parseInjection converts the raw model output into an injection verdict.
func parseInjection(raw string) (types.InjectionVerdict, error) {
	var v types.InjectionVerdict
	if err := json.Unmarshal([]byte(stripFences(raw)), &v); err != nil {
		return types.InjectionVerdict{}, err
	}
	return v, nil
}
