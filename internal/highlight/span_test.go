package highlight

import (
	"reflect"
	"testing"
)

func TestAllocate_DropsNotFound(t *testing.T) {
	located := []Located{
		{Span: Span{Start: 0, End: 5}, Index: 0, Found: true},
		{Index: 1, Found: false},
		{Span: Span{Start: 10, End: 15}, Index: 2, Found: true},
	}
	regions := Allocate(located, len(DefaultPalette))
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
}

func TestAllocate_SortsByStart(t *testing.T) {
	located := []Located{
		{Span: Span{Start: 20, End: 30}, Index: 0, Found: true},
		{Span: Span{Start: 0, End: 5}, Index: 1, Found: true},
	}
	regions := Allocate(located, len(DefaultPalette))
	if regions[0].Start != 0 || regions[1].Start != 20 {
		t.Fatalf("regions not ordered by start: %+v", regions)
	}
}

func TestAllocate_MergesOverlap(t *testing.T) {
	located := []Located{
		{Span: Span{Start: 0, End: 10}, Index: 0, Found: true},
		{Span: Span{Start: 5, End: 15}, Index: 1, Found: true},
	}
	regions := Allocate(located, len(DefaultPalette))
	if len(regions) != 1 {
		t.Fatalf("overlapping spans must merge into one region, got %d", len(regions))
	}
	// The earlier span defines the rendered region; the later triple rides along.
	if regions[0].Start != 0 || regions[0].End != 10 {
		t.Fatalf("merged region = [%d,%d), want [0,10)", regions[0].Start, regions[0].End)
	}
	if !reflect.DeepEqual(regions[0].Triples, []int{0, 1}) {
		t.Fatalf("attached triples = %v, want [0 1]", regions[0].Triples)
	}
}

func TestAllocate_MergesIdenticalSpans(t *testing.T) {
	located := []Located{
		{Span: Span{Start: 4, End: 12}, Index: 0, Found: true},
		{Span: Span{Start: 4, End: 12}, Index: 1, Found: true},
		{Span: Span{Start: 4, End: 12}, Index: 2, Found: true},
	}
	regions := Allocate(located, len(DefaultPalette))
	if len(regions) != 1 {
		t.Fatalf("identical spans must collapse into one region, got %d", len(regions))
	}
	if !reflect.DeepEqual(regions[0].Triples, []int{0, 1, 2}) {
		t.Fatalf("attached triples = %v", regions[0].Triples)
	}
}

func TestAllocate_TieBreakPrefersLowerTripleIndex(t *testing.T) {
	located := []Located{
		{Span: Span{Start: 4, End: 12}, Index: 2, Found: true},
		{Span: Span{Start: 4, End: 12}, Index: 0, Found: true},
	}
	regions := Allocate(located, len(DefaultPalette))
	if !reflect.DeepEqual(regions[0].Triples, []int{0, 2}) {
		t.Fatalf("attached triples = %v, want [0 2]", regions[0].Triples)
	}
}

func TestAllocate_ColorsRotateModuloPalette(t *testing.T) {
	located := make([]Located, 5)
	for i := range located {
		located[i] = Located{Span: Span{Start: i * 10, End: i*10 + 5}, Index: i, Found: true}
	}
	regions := Allocate(located, 3)
	want := []int{0, 1, 2, 0, 1}
	for i, reg := range regions {
		if reg.Color != want[i] {
			t.Fatalf("region %d color = %d, want %d", i, reg.Color, want[i])
		}
	}
}

func TestAllocate_Empty(t *testing.T) {
	if regions := Allocate(nil, len(DefaultPalette)); len(regions) != 0 {
		t.Fatalf("expected no regions, got %d", len(regions))
	}
}
