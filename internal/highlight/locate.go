package highlight

import "strings"

// Span marks one byte-offset range of the original document text,
// half-open: doc[Start:End]. Invariant: 0 <= Start < End <= len(doc).
type Span struct {
	Start int
	End   int
}

// Locate finds the first occurrence of citation inside doc, tolerating
// differences in whitespace only. Both strings are compared in normalized
// form; the returned span is expressed in original byte offsets so the
// caller can slice out the exact original substring, irregular whitespace
// and all. A citation that is empty after normalization is never found.
func Locate(doc, citation string) (Span, bool) {
	needle := Normalize(citation)
	if needle == "" {
		return Span{}, false
	}
	m := normalizeWithMap(doc)
	pos := strings.Index(m.text, needle)
	if pos < 0 {
		return Span{}, false
	}
	// First and last bytes of the needle are non-space after trimming, so
	// both boundary lookups map to real document bytes.
	return Span{Start: m.starts[pos], End: m.ends[pos+len(needle)-1]}, true
}
