package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file YAML configuration schema. Nested
// sections map naturally to the CLI flags.
type FileConfig struct {
	Input   string   `yaml:"input"`
	Output  string   `yaml:"output"`
	Formats []string `yaml:"formats"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Max struct {
		Tokens int `yaml:"tokens"`
	} `yaml:"max"`

	Temperature *float64 `yaml:"temperature"`

	Triples struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"triples"`

	Language string `yaml:"language"`

	Recursive bool `yaml:"recursive"`
	DryRun    bool `yaml:"dryRun"`
	Verbose   bool `yaml:"verbose"`
	PDF       bool `yaml:"pdf"`

	Cache struct {
		Dir         string        `yaml:"dir"`
		MaxAge      time.Duration `yaml:"maxAge"`
		Clear       bool          `yaml:"clear"`
		StrictPerms bool          `yaml:"strictPerms"`
	} `yaml:"cache"`
}

// LoadConfigFile reads a YAML config file. A missing path returns a zero
// config without error so the file stays optional.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

// Defaults for the CLI flags that carry non-zero default values. The flag
// definitions in cmd/citeset use these so MergeFileConfig can tell "still at
// the default" apart from "explicitly set by the user".
const (
	DefaultOutputDir   = "dataset"
	DefaultFormats     = "csv,json,jsonl"
	DefaultMaxTokens   = 8000
	DefaultTemperature = 0.7
	DefaultMinTriples  = 10
	DefaultMaxTriples  = 30
	DefaultCacheDir    = ".citeset-cache"
)

// MergeFileConfig overlays file config values into cfg for every field that
// is still unset or at its flag default. Flags and environment take
// precedence; the file provides defaults. A flag explicitly set to the same
// value as its default is indistinguishable from an untouched flag, so the
// file wins that corner case.
func MergeFileConfig(cfg *Config, fc FileConfig) {
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == DefaultOutputDir) && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if (len(cfg.Formats) == 0 || strings.Join(cfg.Formats, ",") == DefaultFormats) && len(fc.Formats) > 0 {
		cfg.Formats = append([]string{}, fc.Formats...)
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if (cfg.MaxTokens == 0 || cfg.MaxTokens == DefaultMaxTokens) && fc.Max.Tokens > 0 {
		cfg.MaxTokens = fc.Max.Tokens
	}
	if (cfg.Temperature == 0 || cfg.Temperature == DefaultTemperature) && fc.Temperature != nil {
		cfg.Temperature = *fc.Temperature
	}
	if (cfg.MinTriples == 0 || cfg.MinTriples == DefaultMinTriples) && fc.Triples.Min > 0 {
		cfg.MinTriples = fc.Triples.Min
	}
	if (cfg.MaxTriples == 0 || cfg.MaxTriples == DefaultMaxTriples) && fc.Triples.Max > 0 {
		cfg.MaxTriples = fc.Triples.Max
	}
	if cfg.Language == "" && fc.Language != "" {
		cfg.Language = fc.Language
	}
	if fc.Recursive {
		cfg.Recursive = true
	}
	if fc.DryRun {
		cfg.DryRun = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	if fc.PDF {
		cfg.PDF = true
	}
	if (cfg.CacheDir == "" || cfg.CacheDir == DefaultCacheDir) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if fc.Cache.StrictPerms {
		cfg.CacheStrictPerms = true
	}
}
