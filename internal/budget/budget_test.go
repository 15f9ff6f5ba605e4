package budget

import (
	"strings"
	"testing"
)

func TestEstimateTokensFromChars(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 1},   // ceil(1/4)=1
		{3, 1},   // ceil(3/4)=1
		{4, 1},   // ceil(4/4)=1
		{5, 2},   // ceil(5/4)=2
		{400, 100},
	}
	for _, c := range cases {
		got := EstimateTokensFromChars(c.in)
		if got != c.want {
			t.Fatalf("EstimateTokensFromChars(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAssemble_AllChunksFit(t *testing.T) {
	chunks := []string{"first chunk", "second chunk", "third chunk"}
	text, usage, total := Assemble(chunks, 1000)
	if text != "first chunk\n\nsecond chunk\n\nthird chunk" {
		t.Fatalf("combined text = %q", text)
	}
	if len(usage) != 3 {
		t.Fatalf("expected 3 usage entries, got %d", len(usage))
	}
	if total != EstimateTokens(chunks[0])+EstimateTokens(chunks[1])+EstimateTokens(chunks[2]) {
		t.Fatalf("total tokens = %d", total)
	}
}

func TestAssemble_StopsAtBudget(t *testing.T) {
	big := strings.Repeat("word ", 1000) // ~1250 tokens
	chunks := []string{big, big, big}
	_, usage, total := Assemble(chunks, 1500)
	if total > 1500 {
		t.Fatalf("total %d exceeds budget", total)
	}
	if len(usage) != 2 {
		t.Fatalf("expected first full chunk plus one partial, got %d entries", len(usage))
	}
	if !usage[1].Truncated {
		t.Fatalf("second entry should be truncated")
	}
}

func TestAssemble_DropsTinyRemainder(t *testing.T) {
	big := strings.Repeat("x", 4000) // 1000 tokens
	chunks := []string{big, big}
	_, usage, _ := Assemble(chunks, 1050)
	// 50 remaining tokens is below the partial-inclusion floor.
	if len(usage) != 1 {
		t.Fatalf("expected only the first chunk, got %d entries", len(usage))
	}
}

func TestAssemble_ZeroBudgetDisablesLimit(t *testing.T) {
	chunks := []string{"a", "b"}
	text, usage, _ := Assemble(chunks, 0)
	if text != "a\n\nb" || len(usage) != 2 {
		t.Fatalf("budget 0 must disable the limit, got %q with %d entries", text, len(usage))
	}
}

func TestTruncateToTokens_KeepsRuneBoundary(t *testing.T) {
	s := strings.Repeat("ä", 300) // two bytes per rune
	cut := truncateToTokens(s, 100)
	if len(cut) > 400 {
		t.Fatalf("cut too long: %d bytes", len(cut))
	}
	if !strings.HasSuffix(cut, "ä") {
		t.Fatalf("cut must end on a rune boundary")
	}
}

func TestModelContextTokens(t *testing.T) {
	if ModelContextTokens("") != 8192 {
		t.Fatal("empty model should default to 8192")
	}
	if ModelContextTokens("GPT-4.1") < 500_000 {
		t.Fatal("case-insensitive match for gpt-4.1 should be ~1M")
	}
	if ModelContextTokens("mystery-128k") != 128_000 {
		t.Fatal("numeric suffix heuristic 128k should map to 128k tokens")
	}
}

func TestFitsInContext(t *testing.T) {
	model := "gpt-4o"
	if !FitsInContext(model, 2000, ModelContextTokens(model)/2) {
		t.Fatal("half-context prompt should fit")
	}
	if FitsInContext(model, 2000, ModelContextTokens(model)) {
		t.Fatal("full-context prompt should not fit")
	}
}
