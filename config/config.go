package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/machi-da/lda/corpus"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the training run settings.
type Config struct {
	Model       string  `yaml:"model"`
	Topics      int     `yaml:"topics"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Iterations  int     `yaml:"iterations"`
	LogEvery    int     `yaml:"log_every"`
	Seed        uint64  `yaml:"seed"`
	TopWords    int     `yaml:"top_words"`
	Format      string  `yaml:"format"`
	Stoplist    string  `yaml:"stoplist"`
	MinTokenLen int     `yaml:"min_token_len"`
	Lemmatize   bool    `yaml:"lemmatize"`
	Output      string  `yaml:"output"`
	CheckTol    float64 `yaml:"check_tol"`
}

// Default returns the settings used when neither a file nor a flag says
// otherwise.
func Default() Config {
	return Config{
		Model:       "lda",
		Topics:      5,
		Alpha:       0.3,
		Beta:        0.3,
		Iterations:  1000,
		LogEvery:    1000,
		TopWords:    10,
		Format:      corpus.FormatText,
		MinTokenLen: 2,
		Lemmatize:   true,
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no training run can use.
func (c Config) Validate() error {
	switch {
	case c.Topics < 1:
		return fmt.Errorf("%w: topics must be at least 1, got %d", ErrInvalidConfig, c.Topics)
	case !(c.Alpha > 0):
		return fmt.Errorf("%w: alpha must be positive, got %g", ErrInvalidConfig, c.Alpha)
	case !(c.Beta > 0):
		return fmt.Errorf("%w: beta must be positive, got %g", ErrInvalidConfig, c.Beta)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidConfig, c.Iterations)
	case c.LogEvery < 0:
		return fmt.Errorf("%w: log_every must not be negative, got %d", ErrInvalidConfig, c.LogEvery)
	case c.TopWords < 0:
		return fmt.Errorf("%w: top_words must not be negative, got %d", ErrInvalidConfig, c.TopWords)
	case c.MinTokenLen < 1:
		return fmt.Errorf("%w: min_token_len must be at least 1, got %d", ErrInvalidConfig, c.MinTokenLen)
	case c.CheckTol < 0:
		return fmt.Errorf("%w: check_tol must not be negative, got %g", ErrInvalidConfig, c.CheckTol)
	case c.Format != corpus.FormatText && c.Format != corpus.FormatBagOfWords:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	if sl.Terms == nil {
		sl.Terms = []string{}
	}

	return &sl, nil
}
