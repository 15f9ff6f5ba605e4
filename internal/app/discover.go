package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hyperifyio/citeset/internal/parse"
)

// findDocuments resolves the input path to a sorted list of parseable
// document files. A file input is returned as-is when supported; a directory
// is scanned one level deep, or fully when recursive is set.
func findDocuments(input string, recursive bool) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		if !parse.Supported(input) {
			return nil, fmt.Errorf("unsupported document format: %s", input)
		}
		return []string{input}, nil
	}

	var docs []string
	if recursive {
		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && parse.Supported(path) {
				docs = append(docs, path)
			}
			return nil
		})
	} else {
		var entries []fs.DirEntry
		entries, err = os.ReadDir(input)
		if err == nil {
			for _, e := range entries {
				if !e.IsDir() && parse.Supported(e.Name()) {
					docs = append(docs, filepath.Join(input, e.Name()))
				}
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("scan input dir: %w", err)
	}
	sort.Strings(docs)
	return docs, nil
}
