package highlight

import "sort"

// Located pairs one locate result with the index of the triple that
// produced it. Not-found entries carry a zero Span and Found=false.
type Located struct {
	Span  Span
	Index int
	Found bool
}

// Region is one rendered highlight: a byte range of the document plus the
// indices of every triple whose citation resolved into that range. A region
// gains extra triples when citations duplicate or overlap.
type Region struct {
	Start   int
	End     int
	Triples []int
	Color   int
}

// DefaultPalette is a short list of high-contrast background colors rotated
// across adjacent highlights. Injected rather than global so rendering stays
// deterministic and testable.
var DefaultPalette = []string{
	"#ffeb99", // yellow
	"#b3e5fc", // light blue
	"#c8e6c9", // light green
	"#f8bbd0", // pink
	"#ffe0b2", // orange
	"#e1bee7", // violet
}

// Allocate resolves per-triple locate results into an ordered, conflict-free
// set of highlight regions. Not-found entries are dropped. Remaining spans
// are sorted by start offset (ties: lower triple index first). When a span
// overlaps or duplicates the previous region, the earlier region stands and
// the later triple attaches to it, so one highlight can reveal several Q/A
// pairs. Colors rotate by final position modulo paletteSize.
func Allocate(located []Located, paletteSize int) []Region {
	if paletteSize <= 0 {
		paletteSize = 1
	}
	found := make([]Located, 0, len(located))
	for _, l := range located {
		if l.Found {
			found = append(found, l)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Span.Start != found[j].Span.Start {
			return found[i].Span.Start < found[j].Span.Start
		}
		return found[i].Index < found[j].Index
	})

	regions := make([]Region, 0, len(found))
	for _, l := range found {
		if n := len(regions); n > 0 && l.Span.Start < regions[n-1].End {
			regions[n-1].Triples = append(regions[n-1].Triples, l.Index)
			continue
		}
		regions = append(regions, Region{
			Start:   l.Span.Start,
			End:     l.Span.End,
			Triples: []int{l.Index},
		})
	}
	for i := range regions {
		regions[i].Color = i % paletteSize
	}
	return regions
}
