// Package mask rewrites text, replacing matched spans with category tokens.
package mask

import (
	"sort"

	"github.com/piigate/piigate/internal/types"
)

// Apply replaces every match span in text with its category token, e.g.
// "<PHONE>". Matches are processed in descending start order so earlier spans
// are unaffected by the offset shift of later replacements. The input must be
// a reconciled (non-overlapping) set; masking an overlapping set is undefined
// and must not occur.
func Apply(text string, matches []types.Match) string {
	if len(matches) == 0 {
		return text
	}

	sorted := append([]types.Match(nil), matches...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	runes := []rune(text)
	for _, m := range sorted {
		if m.Start < 0 || m.End > len(runes) || m.Start >= m.End {
			continue
		}
		token := []rune(m.Category.Token())
		rest := append(token, runes[m.End:]...)
		runes = append(runes[:m.Start], rest...)
	}
	return string(runes)
}
