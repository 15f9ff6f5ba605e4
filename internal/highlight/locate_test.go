package highlight

import "testing"

func TestLocate_ExactSubstring(t *testing.T) {
	doc := "The sky is blue. Water boils at 100C."
	span, ok := Locate(doc, "Water boils at 100C.")
	if !ok {
		t.Fatalf("expected citation to be located")
	}
	if got := doc[span.Start:span.End]; got != "Water boils at 100C." {
		t.Fatalf("span text = %q", got)
	}
}

func TestLocate_WhitespaceVariantFindsOriginal(t *testing.T) {
	doc := "Q3 results.\n\nRevenue   grew\n20% year over year."
	span, ok := Locate(doc, "Revenue grew 20%")
	if !ok {
		t.Fatalf("expected whitespace-variant citation to be located")
	}
	// The highlighted substring keeps the document's irregular whitespace.
	if got := doc[span.Start:span.End]; got != "Revenue   grew\n20%" {
		t.Fatalf("span text = %q", got)
	}
}

func TestLocate_Paraphrase_NotFound(t *testing.T) {
	doc := "The sky is blue. Water boils at 100C."
	if _, ok := Locate(doc, "Water boils at 100 degrees."); ok {
		t.Fatalf("paraphrase must not be located")
	}
}

func TestLocate_CaseSensitive(t *testing.T) {
	doc := "Water boils at 100C."
	if _, ok := Locate(doc, "water boils at 100c."); ok {
		t.Fatalf("locate must not fold case")
	}
}

func TestLocate_EmptyOrBlankCitation(t *testing.T) {
	doc := "Some document text."
	for _, citation := range []string{"", "   ", "\n\t"} {
		if _, ok := Locate(doc, citation); ok {
			t.Fatalf("blank citation %q must not be located", citation)
		}
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	doc := "alpha beta. Then alpha beta again."
	span, ok := Locate(doc, "alpha beta")
	if !ok {
		t.Fatalf("expected match")
	}
	if span.Start != 0 {
		t.Fatalf("expected lowest-offset match, got start %d", span.Start)
	}
}

func TestLocate_SpanInvariant(t *testing.T) {
	doc := "  leading space, trailing space  "
	span, ok := Locate(doc, "leading space, trailing space")
	if !ok {
		t.Fatalf("expected match")
	}
	if span.Start < 0 || span.Start >= span.End || span.End > len(doc) {
		t.Fatalf("span invariant violated: %+v against len %d", span, len(doc))
	}
	if got := doc[span.Start:span.End]; got != "leading space, trailing space" {
		t.Fatalf("span text = %q", got)
	}
}

func TestLocate_UnicodeDocument(t *testing.T) {
	doc := "Die Temperatur lag bei 100 °C — über dem Schwellwert."
	span, ok := Locate(doc, "100 °C — über")
	if !ok {
		t.Fatalf("expected match")
	}
	if got := doc[span.Start:span.End]; got != "100 °C — über" {
		t.Fatalf("span text = %q", got)
	}
}
