package generate

import (
	"regexp"
	"strings"
)

// ellipsisRe splits a citation at the markers models use to elide text:
// three dots, the unicode ellipsis, and their bracketed forms.
var ellipsisRe = regexp.MustCompile(`\s*(?:\[\.\.\.\]|\[…\]|\.\.\.|…)\s*`)

// ValidateCitation reports whether citation occurs in the document, after
// collapsing whitespace and folding case on both sides. A citation with
// ellipsis markers validates when every part occurs in the document in
// order. This verdict is advisory: the highlight renderer re-derives
// validity case-sensitively and never trusts it.
func ValidateCitation(citation, document string) bool {
	doc := foldForMatch(document)
	cite := foldForMatch(citation)
	if cite == "" {
		return false
	}
	if strings.Contains(doc, cite) {
		return true
	}

	parts := ellipsisRe.Split(cite, -1)
	if len(parts) < 2 {
		return false
	}
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return false
	}
	last := 0
	for _, part := range kept {
		pos := strings.Index(doc[last:], part)
		if pos < 0 {
			return false
		}
		last += pos + len(part)
	}
	return true
}

// foldForMatch collapses whitespace runs to single spaces, trims, and lowers.
func foldForMatch(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
