// Package dataset reads and writes generated triple datasets in csv, json,
// and jsonl form, and renders a PDF run summary.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hyperifyio/citeset/internal/triple"
)

// SupportedFormats lists the writable dataset formats.
var SupportedFormats = []string{"csv", "json", "jsonl"}

// csvHeader fixes the column order for csv output and round-trips through
// the loader.
var csvHeader = []string{
	"document_id", "source_file", "file_type",
	"question", "answer", "citation", "citation_valid",
	"total_chunks", "included_chunks", "timestamp",
}

// Writer persists flattened triple records under OutputDir.
type Writer struct {
	OutputDir string
}

// Write stores records in the given format and returns the file path.
// An empty filename derives one from the first record's document id plus a
// timestamp, matching the <docid>_<yyyymmdd_hhmmss>.<ext> layout.
func (w *Writer) Write(records []triple.Record, format, filename string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !formatSupported(format) {
		return "", fmt.Errorf("unsupported format %q, supported: %v", format, SupportedFormats)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("no records to write")
	}
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir output dir: %w", err)
	}
	if filename == "" {
		stamp := records[0].Timestamp.Format("20060102_150405")
		filename = fmt.Sprintf("%s_%s.%s", records[0].DocumentID, stamp, format)
	}
	path := filepath.Join(w.OutputDir, filename)

	var err error
	switch format {
	case "csv":
		err = writeCSV(path, records)
	case "json":
		err = writeJSON(path, records)
	case "jsonl":
		err = writeJSONL(path, records)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteAll stores records in every requested format, returning a map of
// format to file path. A nil formats slice means all supported formats.
func (w *Writer) WriteAll(records []triple.Record, formats []string) (map[string]string, error) {
	if formats == nil {
		formats = SupportedFormats
	}
	out := make(map[string]string, len(formats))
	for _, f := range formats {
		path, err := w.Write(records, f, "")
		if err != nil {
			return out, fmt.Errorf("write %s: %w", f, err)
		}
		out[f] = path
	}
	return out, nil
}

func formatSupported(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeCSV(path string, records []triple.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.DocumentID, r.SourceFile, r.FileType,
			r.Question, r.Answer, r.Citation,
			strconv.FormatBool(r.CitationValid),
			strconv.Itoa(r.TotalChunks), strconv.Itoa(r.IncludedChunks),
			r.Timestamp.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(path string, records []triple.Record) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeJSONL(path string, records []triple.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
