package parse

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`)

// splitSections cuts markdown-ish text at headings so each chunk keeps its
// heading together with the prose under it. Text before the first heading,
// or text with no headings at all, falls back to paragraph splitting.
func splitSections(text string) []string {
	locs := headingRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return splitParagraphs(text)
	}
	var chunks []string
	if head := strings.TrimSpace(text[:locs[0][0]]); head != "" {
		chunks = append(chunks, head)
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if sec := strings.TrimSpace(text[loc[0]:end]); sec != "" {
			chunks = append(chunks, sec)
		}
	}
	return chunks
}

// splitParagraphs groups text into blank-line separated blocks.
func splitParagraphs(text string) []string {
	blocks := strings.Split(text, "\n\n")
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if t := strings.TrimSpace(b); t != "" {
			out = append(out, t)
		}
	}
	return out
}
