// Package report renders scan results for the CLI.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/piigate/piigate/internal/types"
)

var (
	sevHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sevMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sevLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

type PrintOptions struct {
	NoColor bool
}

// FileResult is one scanned file with its reconciled matches.
type FileResult struct {
	Path    string
	Matches []types.Match
}

// PrintTable writes one row per match across all files, sorted by path then
// span. Values are partially masked so the report itself does not leak PII.
func PrintTable(w io.Writer, results []FileResult, opts PrintOptions) {
	total := 0
	for _, r := range results {
		total += len(r.Matches)
	}
	if total == 0 {
		fmt.Fprintln(w, "No PII found ✅")
		return
	}

	sorted := make([]FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	table := tablewriter.NewWriter(w)
	table.Header("SEVERITY", "CATEGORY", "FILE", "SPAN", "VALUE")
	for _, r := range sorted {
		for _, m := range r.Matches {
			sev := severity(m.Category)
			if !opts.NoColor {
				sev = colorSeverity(m.Category)
			}
			table.Append([]string{
				sev,
				string(m.Category),
				r.Path,
				fmt.Sprintf("%d:%d", m.Start, m.End),
				maskValue(m.Value),
			})
		}
	}
	table.Render()

	high, med, low := 0, 0, 0
	for _, r := range sorted {
		for _, m := range r.Matches {
			switch severity(m.Category) {
			case "high":
				high++
			case "medium":
				med++
			default:
				low++
			}
		}
	}
	fmt.Fprintf(w, "\nMatches: %d (high: %d, medium: %d, low: %d)\n", total, high, med, low)
}

// severity buckets categories by their risk weight.
func severity(cat types.Category) string {
	switch {
	case cat.Weight() >= 0.9:
		return "high"
	case cat.Weight() >= 0.5:
		return "medium"
	default:
		return "low"
	}
}

func colorSeverity(cat types.Category) string {
	switch severity(cat) {
	case "high":
		return sevHighStyle.Render("high")
	case "medium":
		return sevMedStyle.Render("medium")
	default:
		return sevLowStyle.Render("low")
	}
}

// maskValue keeps just enough of the value to locate it in the source file.
func maskValue(s string) string {
	r := []rune(s)
	if len(r) <= 8 {
		return "********"
	}
	return string(r[:4]) + "…" + string(r[len(r)-4:])
}
