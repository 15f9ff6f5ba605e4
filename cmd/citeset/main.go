package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/citeset/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputDir   string
		formats     string
		configFile  string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		maxTokens   int
		temperature float64
		minTriples  int
		maxTriples  int
		language    string
		recursive   bool
		dryRun      bool
		verbose     bool
		enablePDF   bool
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		cacheStrict bool
		viewDataset string
		viewOutput  string
	)

	flag.StringVar(&inputPath, "input", "", "Path to a document or a directory of documents (md, txt, html, csv)")
	flag.StringVar(&outputDir, "output", app.DefaultOutputDir, "Directory to write dataset files and citation reports into")
	flag.StringVar(&formats, "formats", app.DefaultFormats, "Comma-separated dataset output formats")
	flag.StringVar(&configFile, "config", "citeset.yaml", "Optional YAML config file; flags and env take precedence")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.IntVar(&maxTokens, "max.tokens", app.DefaultMaxTokens, "Token budget per document; 0 disables chunk trimming")
	flag.Float64Var(&temperature, "temperature", app.DefaultTemperature, "Sampling temperature for generation")
	flag.IntVar(&minTriples, "triples.min", app.DefaultMinTriples, "Minimum Q/A triples requested per document")
	flag.IntVar(&maxTriples, "triples.max", app.DefaultMaxTriples, "Maximum Q/A triples requested per document")
	flag.StringVar(&language, "lang", "", "Optional language hint for questions and answers, e.g. 'en' or 'fi'")
	flag.BoolVar(&recursive, "recursive", false, "Scan the input directory recursively")
	flag.BoolVar(&dryRun, "dry-run", false, "Parse and budget documents without calling the model")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also write the run summary as summary.pdf")
	flag.StringVar(&cacheDir, "cache.dir", app.DefaultCacheDir, "LLM response cache directory; empty disables caching")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheStrict, "cache.strictPerms", false, "Restrict cache permissions (0700 dirs, 0600 files)")
	flag.StringVar(&viewDataset, "view", "", "Render a citation report for an existing dataset file instead of generating")
	flag.StringVar(&viewOutput, "view.output", "", "Citation report output path for -view (default: next to the dataset)")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}

	cfg := app.Config{
		InputPath:        inputPath,
		OutputDir:        outputDir,
		LLMBaseURL:       llmBaseURL,
		LLMModel:         llmModel,
		LLMAPIKey:        llmKey,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		MinTriples:       minTriples,
		MaxTriples:       maxTriples,
		Language:         language,
		Recursive:        recursive,
		DryRun:           dryRun,
		Verbose:          verbose,
		PDF:              enablePDF,
		CacheDir:         cacheDir,
		CacheMaxAge:      cacheMaxAge,
		CacheClear:       cacheClear,
		CacheStrictPerms: cacheStrict,
		ViewDataset:      viewDataset,
		ViewOutput:       viewOutput,
	}
	if s := strings.TrimSpace(formats); s != "" {
		for _, p := range strings.Split(s, ",") {
			if f := strings.TrimSpace(p); f != "" {
				cfg.Formats = append(cfg.Formats, f)
			}
		}
	}

	fileCfg, err := app.LoadConfigFile(configFile)
	if err != nil {
		log.Error().Err(err).Msg("config file")
		os.Exit(2)
	}
	app.MergeFileConfig(&cfg, fileCfg)

	// Env fallbacks apply after the config file so a file value can still be
	// overridden by the environment only when the flag was left unset.
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, app.ErrNoDocuments) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
