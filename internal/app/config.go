package app

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for the application.
type Config struct {
	// InputPath is a document file or a directory of documents.
	InputPath string
	OutputDir string
	// Formats selects the dataset output formats (csv, json, jsonl).
	Formats []string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Generation
	MaxTokens   int
	Temperature float64
	MinTriples  int
	MaxTriples  int
	// Language is an optional hint for the generated questions and answers,
	// e.g. "en" or "fi".
	Language string

	// Behavior
	Recursive bool
	DryRun    bool
	Verbose   bool
	PDF       bool

	// Cache
	CacheDir         string
	CacheMaxAge      time.Duration
	CacheClear       bool
	CacheStrictPerms bool

	// Viewer mode: render a citation report for an existing dataset
	// instead of generating a new one.
	ViewDataset string
	ViewOutput  string
}

// Validate checks the parts of the configuration that every mode needs.
// LLM settings are checked lazily because viewer and dry-run modes never
// call the model.
func (c *Config) Validate() error {
	if c.ViewDataset != "" {
		return nil
	}
	if strings.TrimSpace(c.InputPath) == "" {
		return errors.New("input path is required")
	}
	if c.MinTriples < 0 || c.MaxTriples < 0 {
		return errors.New("triple bounds must be non-negative")
	}
	if c.MaxTriples > 0 && c.MinTriples > c.MaxTriples {
		return errors.New("triples.min must not exceed triples.max")
	}
	for _, f := range c.Formats {
		switch strings.ToLower(f) {
		case "csv", "json", "jsonl":
		default:
			return errors.New("unsupported output format: " + f)
		}
	}
	return nil
}
