package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the ttskit tool.
type Config struct {
	Fragment  FragmentConfig  `yaml:"fragment"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Seed      SeedConfig      `yaml:"seed"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// FragmentConfig bounds fragment planning.
type FragmentConfig struct {
	Budget int `yaml:"budget"` // maximum runes per fragment
}

// PipelineConfig selects and parameterizes pre-processing steps.
type PipelineConfig struct {
	Steps         []string  `yaml:"steps"`
	Abbreviations []string  `yaml:"abbreviations"`
	Substitutions []SubPair `yaml:"substitutions"`
}

// SubPair is one literal word substitution.
type SubPair struct {
	Search  string `yaml:"search"`
	Replace string `yaml:"replace"`
}

// TokenizerConfig selects tokenizer cases.
type TokenizerConfig struct {
	Cases []string `yaml:"cases"`
}

// SeedConfig controls seed resolution.
type SeedConfig struct {
	CacheEnabled   bool  `yaml:"cache_enabled"`
	FallbackSecond int64 `yaml:"fallback_second"` // second seed half for the clock fallback
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Fragment: FragmentConfig{
			Budget: 100,
		},
		Pipeline: PipelineConfig{
			Steps: []string{"tone_marks", "end_of_line", "abbreviations", "word_sub"},
			Abbreviations: []string{
				"dr", "jr", "mr",
				"mrs", "ms", "msgr",
				"prof", "sr", "st",
			},
			Substitutions: []SubPair{
				{Search: "Esq.", Replace: "Esquire"},
				{Search: "M.", Replace: "Monsieur"},
			},
		},
		Tokenizer: TokenizerConfig{
			Cases: []string{"tone_marks", "period_comma", "colon", "other_punctuation"},
		},
		Seed: SeedConfig{
			CacheEnabled:   true,
			FallbackSecond: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
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
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for ttskit.yaml,
// then .ttskit/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "ttskit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".ttskit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SubstitutionPairs returns the configured substitutions as (search,
// replacement) pairs.
func (c *Config) SubstitutionPairs() [][2]string {
	pairs := make([][2]string, 0, len(c.Pipeline.Substitutions))
	for _, s := range c.Pipeline.Substitutions {
		pairs = append(pairs, [2]string{s.Search, s.Replace})
	}
	return pairs
}

// SeedDBPath returns the path to the seed cache database.
func SeedDBPath(dir string) string {
	return filepath.Join(dir, ".ttskit", "seed.db")
}

// EnsureCacheDir ensures the .ttskit directory exists.
func EnsureCacheDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".ttskit"), 0755)
}
