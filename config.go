package classifile

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultSeparators       = " ._-()[]#,~"
	defaultExtMinLen        = 1
	defaultExtMaxLen        = 5
	defaultDensityThreshold = 0.5
	defaultMaxScored        = 5
)

// Config holds the tunable engine settings. Zero values fall back to the
// package defaults when applied, so an explicit zero (e.g. a density
// threshold of 0) cannot be configured; pick a small positive value instead.
type Config struct {
	// Separators is the set of characters treated as separator components
	Separators string `yaml:"separators"`
	// ExtMinLen/ExtMaxLen bound the accepted extension length
	ExtMinLen int `yaml:"ext-min-len"`
	ExtMaxLen int `yaml:"ext-max-len"`
	// DensityThreshold decides when a numeric position behaves as a
	// sequential index (observed count / inclusive range must exceed it)
	DensityThreshold float64 `yaml:"density-threshold"`
	// MaxScoredSuggestions caps frequency-ranked suggestion lists in scored mode
	MaxScoredSuggestions int `yaml:"max-scored-suggestions"`
}

// DefaultConfig is used wherever no explicit config is supplied.
var DefaultConfig = Config{
	Separators:           defaultSeparators,
	ExtMinLen:            defaultExtMinLen,
	ExtMaxLen:            defaultExtMaxLen,
	DensityThreshold:     defaultDensityThreshold,
	MaxScoredSuggestions: defaultMaxScored,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func (c *Config) applyDefaults() {
	if c.Separators == "" {
		c.Separators = defaultSeparators
	}
	if c.ExtMinLen == 0 {
		c.ExtMinLen = defaultExtMinLen
	}
	if c.ExtMaxLen == 0 {
		c.ExtMaxLen = defaultExtMaxLen
	}
	if c.DensityThreshold == 0 {
		c.DensityThreshold = defaultDensityThreshold
	}
	if c.MaxScoredSuggestions == 0 {
		c.MaxScoredSuggestions = defaultMaxScored
	}
}

// TokenizerOptions derives the tokenizer settings from the config.
func (c *Config) TokenizerOptions() *TokenizerOptions {
	return &TokenizerOptions{
		Separators: c.Separators,
		ExtMinLen:  c.ExtMinLen,
		ExtMaxLen:  c.ExtMaxLen,
	}
}
