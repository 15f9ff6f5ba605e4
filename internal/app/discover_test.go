package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("# Title\n\nBody text.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFindDocumentsSingleFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "notes.md")
	writeDoc(t, doc)

	docs, err := findDocuments(doc, false)
	if err != nil {
		t.Fatalf("findDocuments: %v", err)
	}
	if len(docs) != 1 || docs[0] != doc {
		t.Fatalf("got %v, want [%s]", docs, doc)
	}
}

func TestFindDocumentsUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "report.pdf")
	writeDoc(t, doc)

	if _, err := findDocuments(doc, false); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFindDocumentsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "b.md"))
	writeDoc(t, filepath.Join(dir, "a.txt"))
	writeDoc(t, filepath.Join(dir, "skip.bin"))
	writeDoc(t, filepath.Join(dir, "sub", "nested.md"))

	docs, err := findDocuments(dir, false)
	if err != nil {
		t.Fatalf("findDocuments: %v", err)
	}
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.md")}
	if len(docs) != 2 || docs[0] != want[0] || docs[1] != want[1] {
		t.Fatalf("non-recursive scan: got %v, want %v", docs, want)
	}
}

func TestFindDocumentsRecursive(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "top.md"))
	writeDoc(t, filepath.Join(dir, "sub", "nested.html"))

	docs, err := findDocuments(dir, true)
	if err != nil {
		t.Fatalf("findDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("recursive scan: got %v", docs)
	}
	if docs[0] != filepath.Join(dir, "sub", "nested.html") {
		t.Fatalf("sort order: got %v", docs)
	}
}

func TestFindDocumentsMissingPath(t *testing.T) {
	if _, err := findDocuments(filepath.Join(t.TempDir(), "absent"), false); err == nil {
		t.Fatal("expected stat error for missing path")
	}
}
