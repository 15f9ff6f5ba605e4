package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "minimal valid",
			cfg:  Config{InputPath: "doc.md"},
		},
		{
			name:    "missing input",
			cfg:     Config{},
			wantErr: "input path",
		},
		{
			name:    "min above max",
			cfg:     Config{InputPath: "doc.md", MinTriples: 10, MaxTriples: 5},
			wantErr: "triples.min",
		},
		{
			name:    "negative bound",
			cfg:     Config{InputPath: "doc.md", MinTriples: -1},
			wantErr: "non-negative",
		},
		{
			name:    "bad format",
			cfg:     Config{InputPath: "doc.md", Formats: []string{"parquet"}},
			wantErr: "unsupported output format",
		},
		{
			name: "formats case-insensitive",
			cfg:  Config{InputPath: "doc.md", Formats: []string{"CSV", "Json"}},
		},
		{
			name: "viewer mode needs no input",
			cfg:  Config{ViewDataset: "out/data.csv"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "citeset.yaml")
	content := `
input: ./docs
output: ./out
formats: [csv, jsonl]
llm:
  base: http://localhost:1234/v1
  model: qwen2.5
temperature: 0.3
max:
  tokens: 9000
triples:
  min: 5
  max: 20
recursive: true
cache:
  dir: .cache
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Input != "./docs" || fc.Output != "./out" {
		t.Fatalf("paths: got %q / %q", fc.Input, fc.Output)
	}
	if len(fc.Formats) != 2 || fc.Formats[1] != "jsonl" {
		t.Fatalf("formats: got %v", fc.Formats)
	}
	if fc.LLM.BaseURL != "http://localhost:1234/v1" || fc.LLM.Model != "qwen2.5" {
		t.Fatalf("llm section: got %+v", fc.LLM)
	}
	if fc.Temperature == nil || *fc.Temperature != 0.3 {
		t.Fatalf("temperature: got %v", fc.Temperature)
	}
	if fc.Max.Tokens != 9000 || fc.Triples.Min != 5 || fc.Triples.Max != 20 {
		t.Fatalf("numbers: got %+v", fc)
	}
	if !fc.Recursive {
		t.Fatal("recursive not set")
	}
	if fc.Cache.Dir != ".cache" {
		t.Fatalf("cache section: got %+v", fc.Cache)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	fc, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if fc.Input != "" {
		t.Fatalf("expected zero config, got %+v", fc)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
}

// defaultConfig mirrors the Config that flag parsing yields when the user
// passes no flags at all.
func defaultConfig() Config {
	return Config{
		OutputDir:   DefaultOutputDir,
		Formats:     []string{"csv", "json", "jsonl"},
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		MinTriples:  DefaultMinTriples,
		MaxTriples:  DefaultMaxTriples,
		CacheDir:    DefaultCacheDir,
	}
}

func TestMergeFileConfigPrecedence(t *testing.T) {
	fc := FileConfig{Input: "file-input", Output: "file-out"}
	fc.LLM.Model = "file-model"
	fc.Max.Tokens = 5000
	temp := 0.9
	fc.Temperature = &temp
	fc.Verbose = true

	// Flag values differing from their defaults must survive the merge.
	cfg := defaultConfig()
	cfg.InputPath = "flag-input"
	cfg.LLMModel = "flag-model"
	cfg.OutputDir = "flag-out"
	cfg.MaxTokens = 12000
	MergeFileConfig(&cfg, fc)

	if cfg.InputPath != "flag-input" {
		t.Fatalf("InputPath overridden: %q", cfg.InputPath)
	}
	if cfg.LLMModel != "flag-model" {
		t.Fatalf("LLMModel overridden: %q", cfg.LLMModel)
	}
	if cfg.OutputDir != "flag-out" {
		t.Fatalf("OutputDir overridden: %q", cfg.OutputDir)
	}
	if cfg.MaxTokens != 12000 {
		t.Fatalf("MaxTokens overridden: %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.9 {
		t.Fatalf("Temperature not filled: %v", cfg.Temperature)
	}
	if !cfg.Verbose {
		t.Fatal("Verbose not propagated")
	}
}

func TestMergeFileConfigOverridesFlagDefaults(t *testing.T) {
	fc := FileConfig{Output: "file-out", Formats: []string{"jsonl"}}
	fc.Max.Tokens = 9000
	temp := 0.2
	fc.Temperature = &temp
	fc.Triples.Min = 5
	fc.Triples.Max = 15
	fc.Cache.Dir = "file-cache"

	// Untouched flags sit at their defaults; the file must still win.
	cfg := defaultConfig()
	MergeFileConfig(&cfg, fc)

	if cfg.OutputDir != "file-out" {
		t.Fatalf("OutputDir stuck at default: %q", cfg.OutputDir)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "jsonl" {
		t.Fatalf("Formats stuck at default: %v", cfg.Formats)
	}
	if cfg.MaxTokens != 9000 {
		t.Fatalf("MaxTokens stuck at default: %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.2 {
		t.Fatalf("Temperature stuck at default: %v", cfg.Temperature)
	}
	if cfg.MinTriples != 5 || cfg.MaxTriples != 15 {
		t.Fatalf("triple bounds stuck at defaults: %d/%d", cfg.MinTriples, cfg.MaxTriples)
	}
	if cfg.CacheDir != "file-cache" {
		t.Fatalf("CacheDir stuck at default: %q", cfg.CacheDir)
	}
}

func TestMergeFileConfigEmptyFileKeepsDefaults(t *testing.T) {
	cfg := defaultConfig()
	MergeFileConfig(&cfg, FileConfig{})

	if cfg.OutputDir != DefaultOutputDir || cfg.MaxTokens != DefaultMaxTokens {
		t.Fatalf("empty file config must not disturb defaults: %+v", cfg)
	}
	if cfg.Temperature != DefaultTemperature || cfg.CacheDir != DefaultCacheDir {
		t.Fatalf("empty file config must not disturb defaults: %+v", cfg)
	}
}
