package app

import (
	"fmt"
	"strings"
)

// buildSummary formats per-document results as a markdown run summary.
func buildSummary(results []DocumentResult) string {
	successful := 0
	totalTriples := 0
	totalTokens := 0
	for _, r := range results {
		if r.Err == nil {
			successful++
			totalTriples += r.TriplesCount
			totalTokens += r.Tokens
		}
	}

	var b strings.Builder
	b.WriteString("# Processing Summary\n\n")
	fmt.Fprintf(&b, "- **Total Documents:** %d\n", len(results))
	fmt.Fprintf(&b, "- **Successful:** %d\n", successful)
	fmt.Fprintf(&b, "- **Failed:** %d\n", len(results)-successful)
	fmt.Fprintf(&b, "- **Total Q/A Triples:** %d\n", totalTriples)
	fmt.Fprintf(&b, "- **Total Tokens Processed:** %d\n", totalTokens)
	b.WriteString("\n## Details\n")

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "\n[failed] %s - %v", r.File, r.Err)
			continue
		}
		fmt.Fprintf(&b, "\n[ok] %s - %d questions, %d tokens", r.File, r.TriplesCount, r.Tokens)
		if r.InvalidCitations > 0 {
			fmt.Fprintf(&b, " (%d invalid citations)", r.InvalidCitations)
		}
	}
	b.WriteString("\n")
	return b.String()
}
