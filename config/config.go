package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the per-project state directory.
	DirName = ".textsum"

	// FileName is the project-level config file name.
	FileName = "textsum.yaml"
)

// Config holds all configuration for the textsum tool.
type Config struct {
	Summarize SummarizeConfig `yaml:"summarize"`
	Batch     BatchConfig     `yaml:"batch"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SummarizeConfig holds summarization configuration.
type SummarizeConfig struct {
	Sentences      int      `yaml:"sentences"`
	Language       string   `yaml:"language"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// BatchConfig holds directory summarization configuration.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"`
	MaxBytes int64    `yaml:"max_bytes"` // Skip files larger than this (0 = no limit)
}

// CacheConfig holds in-memory summary cache configuration.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // "console" or "json"
	File       string `yaml:"file"`   // Optional rotating log file
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Summarize: SummarizeConfig{
			Sentences: 3,
			Language:  "english",
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**", "**/" + DirName + "/**"},
			Workers:  4,
			MaxBytes: 4 << 20,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 256,
			TTLSeconds: 600,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textsum.yaml,
// then .textsum/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, DirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// ApplyEnv overrides configuration from the environment. A .env file in dir
// is loaded first; variables already set in the process win over it.
func (c *Config) ApplyEnv(dir string) error {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if v := os.Getenv("TEXTSUM_SENTENCES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TEXTSUM_SENTENCES %q: %w", v, err)
		}
		c.Summarize.Sentences = n
	}
	if v := os.Getenv("TEXTSUM_LANGUAGE"); v != "" {
		c.Summarize.Language = v
	}
	if v := os.Getenv("TEXTSUM_STOPWORDS"); v != "" {
		for _, w := range strings.Split(v, ",") {
			if w = strings.TrimSpace(w); w != "" {
				c.Summarize.ExtraStopwords = append(c.Summarize.ExtraStopwords, w)
			}
		}
	}
	if v := os.Getenv("TEXTSUM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StoreDBPath returns the path to the summary database.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, DirName, "summaries.db")
}

// EnsureDir ensures the .textsum directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, DirName), 0755)
}
