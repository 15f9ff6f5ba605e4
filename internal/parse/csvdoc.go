package parse

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// csvRowsPerChunk bounds how many data rows share one paragraph block so the
// token budget can cut large tables between groups rather than mid-row.
const csvRowsPerChunk = 50

// textFromCSV renders CSV content as pipe-separated lines, repeating the
// header above every row group.
func textFromCSV(raw []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	header := strings.Join(records[0], " | ")
	rows := records[1:]
	if len(rows) == 0 {
		return header, nil
	}

	var b strings.Builder
	for start := 0; start < len(rows); start += csvRowsPerChunk {
		if start > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(header)
		end := start + csvRowsPerChunk
		if end > len(rows) {
			end = len(rows)
		}
		for _, row := range rows[start:end] {
			b.WriteString("\n")
			b.WriteString(strings.Join(row, " | "))
		}
	}
	return b.String(), nil
}
