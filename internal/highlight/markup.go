package highlight

import (
	"fmt"
	"html"
	"strings"

	"github.com/hyperifyio/citeset/internal/triple"
)

// revealDelimiter separates stacked Q/A entries when one highlight carries
// several triples.
const revealDelimiter = "\n\n----------------------------------------\n\n"

// escapeJS makes s safe to embed inside a single-quoted JavaScript string
// literal. Together with HTML attribute escaping of the surrounding onclick
// value, this closes both breakout paths for untrusted text: out of the JS
// string and out of the attribute.
func escapeJS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '<':
			b.WriteString(`\u003c`)
		case '>':
			b.WriteString(`\u003e`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// revealPayload builds the plain-text body shown when a highlight is
// activated: every attached triple's question and answer, in triple order.
func revealPayload(reg Region, triples []triple.Triple) string {
	parts := make([]string, 0, len(reg.Triples))
	for _, idx := range reg.Triples {
		t := triples[idx]
		parts = append(parts, fmt.Sprintf("Question: %s\n\nAnswer: %s", t.Question, t.Answer))
	}
	return strings.Join(parts, revealDelimiter)
}

// buildMarkup composes the interactive document view. Every piece of
// untrusted text is entity-escaped before insertion; highlight spans carry an
// inline onclick that opens a native blocking alert with the escaped Q/A
// payload, so the output needs no script element and loads nothing external.
// The pre-wrap container keeps the document's original formatting visible.
func buildMarkup(doc string, regions []Region, triples []triple.Triple, palette []string) string {
	var b strings.Builder
	b.Grow(len(doc) + len(doc)/4)
	b.WriteString(`<div style="white-space: pre-wrap; font-family: Georgia, serif; line-height: 1.7; padding: 16px;">`)
	pos := 0
	for _, reg := range regions {
		b.WriteString(html.EscapeString(doc[pos:reg.Start]))
		payload := html.EscapeString(escapeJS(revealPayload(reg, triples)))
		b.WriteString(`<span style="background-color: `)
		b.WriteString(palette[reg.Color])
		b.WriteString(`; cursor: pointer; border-radius: 3px; padding: 1px 2px;" title="Click to view question and answer" onclick="alert('`)
		b.WriteString(payload)
		b.WriteString(`')">`)
		b.WriteString(html.EscapeString(doc[reg.Start:reg.End]))
		b.WriteString(`</span>`)
		pos = reg.End
	}
	b.WriteString(html.EscapeString(doc[pos:]))
	b.WriteString(`</div>`)
	return b.String()
}
