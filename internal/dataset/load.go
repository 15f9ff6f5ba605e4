package dataset

import (
	"bufio"
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

// Load reads a previously written dataset back into records. The format is
// taken from the file extension. Loading exists so the citation viewer can
// re-open a dataset and re-render highlights against the source document.
func Load(path string) ([]triple.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	case ".jsonl":
		return loadJSONL(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filepath.Ext(path))
	}
}

// Triples projects loaded records back into generation triples, preserving
// dataset order.
func Triples(records []triple.Record) []triple.Triple {
	out := make([]triple.Triple, len(records))
	for i, r := range records {
		out[i] = triple.Triple{
			Question:      r.Question,
			Answer:        r.Answer,
			Citation:      r.Citation,
			CitationValid: r.CitationValid,
		}
	}
	return out
}

func loadCSV(path string) ([]triple.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("empty dataset: %s", path)
	}
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]triple.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		valid, _ := strconv.ParseBool(field(row, "citation_valid"))
		total, _ := strconv.Atoi(field(row, "total_chunks"))
		included, _ := strconv.Atoi(field(row, "included_chunks"))
		ts, _ := time.Parse(time.RFC3339, field(row, "timestamp"))
		records = append(records, triple.Record{
			DocumentID:     field(row, "document_id"),
			SourceFile:     field(row, "source_file"),
			FileType:       field(row, "file_type"),
			Question:       field(row, "question"),
			Answer:         field(row, "answer"),
			Citation:       field(row, "citation"),
			CitationValid:  valid,
			TotalChunks:    total,
			IncludedChunks: included,
			Timestamp:      ts,
		})
	}
	return records, nil
}

func loadJSON(path string) ([]triple.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []triple.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse json dataset: %w", err)
	}
	return records, nil
}

func loadJSONL(path string) ([]triple.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []triple.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var r triple.Record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("parse jsonl dataset: %w", err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
