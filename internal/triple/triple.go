package triple

import "time"

// Triple is a single generated question/answer/citation record tied to one
// source document. The citation is expected to be a verbatim snippet of the
// document text; CitationValid carries the generator's own verdict, which
// downstream consumers re-derive rather than trust.
type Triple struct {
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	Citation      string `json:"citation"`
	CitationValid bool   `json:"citation_valid"`
}

// DocumentMeta describes the parsed source document a set of triples was
// generated from.
type DocumentMeta struct {
	FileName       string `json:"file_name"`
	FileType       string `json:"file_type"`
	TotalChunks    int    `json:"total_chunks"`
	IncludedChunks int    `json:"included_chunks"`
}

// Record is the flattened, write-ready form of a Triple used by the dataset
// writers. One Record per output row/object.
type Record struct {
	DocumentID     string    `json:"document_id"`
	SourceFile     string    `json:"source_file"`
	FileType       string    `json:"file_type"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	Citation       string    `json:"citation"`
	CitationValid  bool      `json:"citation_valid"`
	TotalChunks    int       `json:"total_chunks"`
	IncludedChunks int       `json:"included_chunks"`
	Timestamp      time.Time `json:"timestamp"`
}

// Flatten converts a Triple plus its document metadata into a Record.
func Flatten(t Triple, docID, sourceFile string, meta DocumentMeta, now time.Time) Record {
	return Record{
		DocumentID:     docID,
		SourceFile:     sourceFile,
		FileType:       meta.FileType,
		Question:       t.Question,
		Answer:         t.Answer,
		Citation:       t.Citation,
		CitationValid:  t.CitationValid,
		TotalChunks:    meta.TotalChunks,
		IncludedChunks: meta.IncludedChunks,
		Timestamp:      now,
	}
}
