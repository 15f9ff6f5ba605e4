package app

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/citeset/internal/dataset"
	"github.com/hyperifyio/citeset/internal/highlight"
	"github.com/hyperifyio/citeset/internal/parse"
	"github.com/hyperifyio/citeset/internal/triple"
)

// runViewer loads an existing dataset, re-parses its source document, and
// renders the interactive citation report to an HTML file.
func (a *App) runViewer() error {
	records, err := dataset.Load(a.cfg.ViewDataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("dataset %s holds no records", a.cfg.ViewDataset)
	}

	source := records[0].SourceFile
	doc, err := parse.File(source, a.cfg.MaxTokens)
	if err != nil {
		return fmt.Errorf("re-parse source document %s: %w", source, err)
	}

	triples := dataset.Triples(records)
	res, err := a.renderer.Render(doc.Content, triples)
	if err != nil {
		return fmt.Errorf("render citations: %w", err)
	}

	out := a.cfg.ViewOutput
	if out == "" {
		out = strings.TrimSuffix(a.cfg.ViewDataset, filepath.Ext(a.cfg.ViewDataset)) + ".report.html"
	}
	page := buildReportPage(doc.Meta.FileName, res, triples)
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().
		Str("path", out).
		Int("valid", res.Valid).
		Int("invalid", res.Invalid).
		Msg("citation report written")
	return nil
}

// writeReport renders the citation report for a freshly generated dataset.
func (a *App) writeReport(doc parse.Document, triples []triple.Triple, docID string, now time.Time) (string, error) {
	res, err := a.renderer.Render(doc.Content, triples)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s_citations.html", docID, now.Format("20060102_150405"))
	out := filepath.Join(a.cfg.OutputDir, name)
	page := buildReportPage(doc.Meta.FileName, res, triples)
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

// buildReportPage wraps the highlighted document view in a self-contained
// HTML page with a stats header and a plain Q/A listing. Every dynamic
// string is entity-escaped; the only interactivity is the inline reveal
// carried by the highlight spans themselves.
func buildReportPage(docName string, res highlight.Result, triples []triple.Triple) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>Citation report - ")
	b.WriteString(html.EscapeString(docName))
	b.WriteString("</title>\n</head>\n<body style=\"max-width: 900px; margin: 0 auto; font-family: Georgia, serif;\">\n")

	fmt.Fprintf(&b,
		"<h1>Citation report</h1>\n<p><strong>Source:</strong> %s<br><strong>Q/A pairs:</strong> %d | <strong>Valid citations:</strong> %d | <strong>Invalid:</strong> %d</p>\n",
		html.EscapeString(docName), res.Total, res.Valid, res.Invalid)
	b.WriteString("<p><em>Citations are color-coded. Click a highlight to view its questions and answers.</em></p>\n<hr>\n")

	b.WriteString(res.HTML)

	b.WriteString("\n<hr>\n<h2>Questions and answers</h2>\n<ol>\n")
	for i, t := range triples {
		marker := "valid"
		if i >= len(res.Found) || !res.Found[i] {
			marker = "invalid"
		}
		fmt.Fprintf(&b, "<li><strong>%s</strong><br>%s<br><small>citation (%s): %s</small></li>\n",
			html.EscapeString(t.Question),
			html.EscapeString(t.Answer),
			marker,
			html.EscapeString(preview(t.Citation, 100)))
	}
	b.WriteString("</ol>\n</body>\n</html>\n")
	return b.String()
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "..."
}
