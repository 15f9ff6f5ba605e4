// Package parse turns source documents into plain text plus chunk metadata,
// bounded by a token budget. An extension-keyed dispatcher selects the
// format-specific reader; all formats end up as ordered text chunks fed
// through budget.Assemble.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperifyio/citeset/internal/budget"
	"github.com/hyperifyio/citeset/internal/triple"
)

// Document is a parsed source document ready for triple generation.
type Document struct {
	// Content is the assembled text, truncated to the token budget.
	Content     string
	Chunks      []budget.ChunkUsage
	TotalTokens int
	Meta        triple.DocumentMeta
	SourceFile  string
}

// ErrUnsupportedFormat reports a file extension no reader handles.
var ErrUnsupportedFormat = fmt.Errorf("unsupported document format")

// SupportedExtensions lists the file extensions File accepts.
var SupportedExtensions = []string{".md", ".markdown", ".txt", ".html", ".htm", ".csv"}

// Supported reports whether path has a parseable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// File parses the document at path into chunks and assembles them under
// maxTokens. maxTokens <= 0 disables the budget.
func File(path string, maxTokens int) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var chunks []string
	switch ext {
	case ".md", ".markdown", ".txt":
		chunks = splitSections(string(raw))
	case ".html", ".htm":
		text, err := textFromHTML(raw)
		if err != nil {
			return Document{}, fmt.Errorf("parse html: %w", err)
		}
		chunks = splitParagraphs(text)
	case ".csv":
		text, err := textFromCSV(raw)
		if err != nil {
			return Document{}, fmt.Errorf("parse csv: %w", err)
		}
		chunks = splitParagraphs(text)
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	content, usage, total := budget.Assemble(chunks, maxTokens)
	return Document{
		Content:     content,
		Chunks:      usage,
		TotalTokens: total,
		Meta: triple.DocumentMeta{
			FileName:       filepath.Base(path),
			FileType:       ext,
			TotalChunks:    len(chunks),
			IncludedChunks: len(usage),
		},
		SourceFile: path,
	}, nil
}
