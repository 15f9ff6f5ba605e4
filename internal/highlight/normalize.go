package highlight

import "unicode/utf8"

// Normalize collapses every maximal run of whitespace (space, tab, newline,
// carriage return, form feed) to a single ASCII space and trims leading and
// trailing whitespace. Case is preserved. The result is a comparison key
// only and is never rendered.
func Normalize(s string) string {
	return normalizeWithMap(s).text
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// mapped is a normalized string plus, for every byte of it, the byte range
// of the original string it came from. starts[i] is the offset of the source
// byte for normalized byte i; ends[i] is the offset just past it. A collapsed
// space maps to the start of the whitespace run it replaced; boundary lookups
// never land on one because normalized text neither starts nor ends with a
// space.
type mapped struct {
	text   string
	starts []int
	ends   []int
}

func normalizeWithMap(s string) mapped {
	buf := make([]byte, 0, len(s))
	starts := make([]int, 0, len(s))
	ends := make([]int, 0, len(s))

	pending := false
	pendingStart := 0
	for i, r := range s {
		if isSpace(r) {
			if !pending {
				pending = true
				pendingStart = i
			}
			continue
		}
		if pending && len(buf) > 0 {
			buf = append(buf, ' ')
			starts = append(starts, pendingStart)
			ends = append(ends, i)
		}
		pending = false
		n := utf8.RuneLen(r)
		for k := 0; k < n; k++ {
			buf = append(buf, s[i+k])
			starts = append(starts, i+k)
			ends = append(ends, i+k+1)
		}
	}
	return mapped{text: string(buf), starts: starts, ends: ends}
}
