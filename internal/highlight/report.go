// Package highlight validates citation triples against their source document
// and renders an interactive, injection-safe HTML view with each located
// citation highlighted. Matching tolerates whitespace differences only; the
// rendered highlight always shows the document's own text.
package highlight

import (
	"errors"

	"github.com/hyperifyio/citeset/internal/triple"
)

// Placeholder is rendered when no citation could be located in the document.
const Placeholder = `<div style="padding: 40px; text-align: center; color: #666;">No valid citations found in this document.</div>`

// Result is the outcome of rendering one document's citations.
type Result struct {
	HTML    string
	Valid   int
	Invalid int
	Total   int
	// Found reports, per input triple, whether its citation was located.
	Found []bool
}

// Renderer turns a document and its triples into a highlight report.
// The zero value uses DefaultPalette.
type Renderer struct {
	// Palette overrides the highlight background colors when non-empty.
	Palette []string
}

// ErrEmptyDocument reports a render call without document text. Malformed
// input fails fast; missing citations do not, they are counted invalid.
var ErrEmptyDocument = errors.New("highlight: document text is empty")

// Render locates every triple's citation in doc, resolves the found spans
// into non-overlapping highlights, and builds the HTML view. Validity is
// re-derived here from the text itself; the triples' CitationValid flags are
// ignored. The call is pure and deterministic: identical inputs yield
// byte-identical HTML, and Valid+Invalid always equals Total.
func (r *Renderer) Render(doc string, triples []triple.Triple) (Result, error) {
	if doc == "" {
		return Result{}, ErrEmptyDocument
	}
	palette := r.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	located := make([]Located, 0, len(triples))
	found := make([]bool, len(triples))
	valid := 0
	for i, t := range triples {
		span, ok := Locate(doc, t.Citation)
		if ok {
			valid++
		}
		found[i] = ok
		located = append(located, Located{Span: span, Index: i, Found: ok})
	}

	res := Result{
		Valid:   valid,
		Invalid: len(triples) - valid,
		Total:   len(triples),
		Found:   found,
	}
	if valid == 0 {
		res.HTML = Placeholder
		return res, nil
	}
	regions := Allocate(located, len(palette))
	res.HTML = buildMarkup(doc, regions, triples, palette)
	return res, nil
}
