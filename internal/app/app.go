// Package app wires parsing, generation, dataset writing, and citation
// highlighting into the document processing pipeline behind the CLI.
package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/citeset/internal/cache"
	"github.com/hyperifyio/citeset/internal/dataset"
	"github.com/hyperifyio/citeset/internal/generate"
	"github.com/hyperifyio/citeset/internal/highlight"
	"github.com/hyperifyio/citeset/internal/llm"
	"github.com/hyperifyio/citeset/internal/parse"
	"github.com/hyperifyio/citeset/internal/triple"
)

// ErrNoDocuments is returned when the input path yields zero parseable
// documents. Per the exit code policy this results in a non-zero process
// exit.
var ErrNoDocuments = fmt.Errorf("no supported documents found")

type App struct {
	cfg      Config
	provider llm.Client
	llmCache *cache.LLMCache
	writer   *dataset.Writer
	renderer highlight.Renderer
	now      func() time.Time
}

// DocumentResult captures the outcome of processing one document.
type DocumentResult struct {
	File             string
	Tokens           int
	TriplesCount     int
	InvalidCitations int
	OutputFiles      map[string]string
	ReportFile       string
	Err              error
}

func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		writer: &dataset.Writer{OutputDir: cfg.OutputDir},
		now:    time.Now,
	}

	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Purge by age; ignore errors to avoid failing startup
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		a.llmCache = &cache.LLMCache{Dir: cfg.CacheDir, StrictPerms: cfg.CacheStrictPerms}
	}

	// Viewer and dry-run modes never call the model.
	if cfg.ViewDataset != "" || cfg.DryRun {
		return a, nil
	}

	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	transportCfg.HTTPClient = &http.Client{Timeout: 5 * time.Minute}
	a.provider = &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}
	preflight(ctx, a.provider)

	return a, nil
}

// preflight probes the backend by listing models when the provider supports
// that capability. Best-effort: failures are logged and the run continues so
// downstream calls surface real errors.
func preflight(ctx context.Context, c llm.Client) {
	lister, ok := c.(llm.ModelLister)
	if !ok {
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if models, err := lister.ListModels(pingCtx); err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
	} else if len(models.Models) == 0 {
		log.Warn().Msg("LLM returned zero models")
	} else {
		log.Debug().Int("count", len(models.Models)).Msg("LLM models available")
	}
}

// Run executes the configured mode: viewer when a dataset is given,
// otherwise the generation pipeline over every discovered document.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.ViewDataset != "" {
		return a.runViewer()
	}

	docs, err := findDocuments(a.cfg.InputPath, a.cfg.Recursive)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w under %s", ErrNoDocuments, a.cfg.InputPath)
	}
	log.Info().Int("documents", len(docs)).Msg("starting run")

	results := make([]DocumentResult, 0, len(docs))
	for i, path := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Info().Str("file", filepath.Base(path)).Msgf("processing %d/%d", i+1, len(docs))
		res := a.processDocument(ctx, path)
		if res.Err != nil {
			log.Error().Err(res.Err).Str("file", res.File).Msg("document failed")
		}
		results = append(results, res)
	}

	summary := buildSummary(results)
	fmt.Println(summary)

	if a.cfg.PDF {
		out := filepath.Join(a.cfg.OutputDir, "summary.pdf")
		if err := dataset.WriteSummaryPDF(summary, out); err != nil {
			log.Warn().Err(err).Msg("summary PDF failed")
		} else {
			log.Info().Str("path", out).Msg("summary PDF written")
		}
	}
	return nil
}

// processDocument runs parse -> generate -> write -> highlight for one file.
func (a *App) processDocument(ctx context.Context, path string) DocumentResult {
	res := DocumentResult{File: filepath.Base(path)}

	doc, err := parse.File(path, a.cfg.MaxTokens)
	if err != nil {
		res.Err = fmt.Errorf("parse: %w", err)
		return res
	}
	res.Tokens = doc.TotalTokens
	log.Debug().
		Int("tokens", doc.TotalTokens).
		Int("chunks_included", doc.Meta.IncludedChunks).
		Int("chunks_total", doc.Meta.TotalChunks).
		Msg("parsed")

	if a.cfg.DryRun {
		return res
	}

	gen := &generate.Generator{
		Client:      a.provider,
		Cache:       a.llmCache,
		Model:       a.cfg.LLMModel,
		Temperature: float32(a.cfg.Temperature),
		MinTriples:  a.cfg.MinTriples,
		MaxTriples:  a.cfg.MaxTriples,
		Language:    a.cfg.Language,
	}
	triples, err := gen.Generate(ctx, doc.Content)
	if err != nil {
		res.Err = fmt.Errorf("generate: %w", err)
		return res
	}
	res.TriplesCount = len(triples)
	for _, t := range triples {
		if !t.CitationValid {
			res.InvalidCitations++
		}
	}

	docID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	now := a.now().UTC()
	records := make([]triple.Record, len(triples))
	for i, t := range triples {
		records[i] = triple.Flatten(t, docID, path, doc.Meta, now)
	}

	outputs, err := a.writer.WriteAll(records, a.cfg.Formats)
	if err != nil {
		res.Err = fmt.Errorf("write dataset: %w", err)
		res.OutputFiles = outputs
		return res
	}
	res.OutputFiles = outputs

	// Render the citation report alongside the dataset files. A failed
	// report is logged, not fatal: the dataset itself is already on disk.
	report, err := a.writeReport(doc, triples, docID, now)
	if err != nil {
		log.Warn().Err(err).Str("file", res.File).Msg("citation report failed")
	} else {
		res.ReportFile = report
	}
	return res
}
