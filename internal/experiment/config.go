// SPDX-License-Identifier: Apache-2.0

package experiment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/speakerlab/whosaid/internal/corpus"
	"github.com/speakerlab/whosaid/internal/corpus/readers"
	"github.com/speakerlab/whosaid/internal/split"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes one experiment run.
type Config struct {
	Corpus CorpusConfig `json:"corpus" yaml:"corpus" toml:"corpus"`
	Split  SplitConfig  `json:"split" yaml:"split" toml:"split"`

	// Seed fixes every shuffle. Zero draws a fresh seed, which is recorded
	// in the report.
	Seed int64 `json:"seed" yaml:"seed" toml:"seed"`

	// Characters restricts evaluation to these characters. Empty means all.
	Characters []string `json:"characters" yaml:"characters" toml:"characters"`

	// Workers bounds concurrent per-character evaluation. Zero means one
	// worker per CPU.
	Workers int `json:"workers" yaml:"workers" toml:"workers"`
}

type CorpusConfig struct {
	Path      string          `json:"path" yaml:"path" toml:"path"`
	Format    string          `json:"format" yaml:"format" toml:"format"`
	Role      string          `json:"role" yaml:"role" toml:"role"`
	MinWords  int             `json:"min_words" yaml:"min_words" toml:"min_words"`
	MaxWords  int             `json:"max_words" yaml:"max_words" toml:"max_words"`
	Normalize bool            `json:"normalize" yaml:"normalize" toml:"normalize"`
	Header    bool            `json:"header" yaml:"header" toml:"header"`
	Columns   readers.Columns `json:"columns" yaml:"columns" toml:"columns"`
}

type SplitConfig struct {
	Policy         string  `json:"policy" yaml:"policy" toml:"policy"`
	TestSize       float64 `json:"test_size" yaml:"test_size" toml:"test_size"`
	StrictTestSize int     `json:"strict_test_size" yaml:"strict_test_size" toml:"strict_test_size"`
	MinTestWords   int     `json:"min_test_words" yaml:"min_test_words" toml:"min_test_words"`
}

// DefaultConfig keeps every main-role line and holds out a quarter of each
// character's lines.
func DefaultConfig() Config {
	return Config{
		Corpus: CorpusConfig{
			Role:     corpus.MainRole,
			MinWords: 0,
			MaxWords: corpus.Unbounded,
			Columns:  readers.DefaultColumns(),
		},
		Split: SplitConfig{
			TestSize: split.DefaultTestSize,
		},
	}
}

// LoadConfig reads a YAML, JSON or TOML config on top of DefaultConfig and
// validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks c against the config schema and the cross-field rules
// the schema cannot express.
func (c Config) Validate() error {
	if err := validateSchema(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Corpus.MaxWords > 0 && c.Corpus.MinWords > c.Corpus.MaxWords {
		return fmt.Errorf("%w: min_words %d exceeds max_words %d", ErrInvalidConfig, c.Corpus.MinWords, c.Corpus.MaxWords)
	}
	if _, err := c.splitOptions(nil).Resolve(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) partitionOptions(r corpus.Shuffler) corpus.PartitionOptions {
	return corpus.PartitionOptions{
		Role:      c.Corpus.Role,
		MinWords:  c.Corpus.MinWords,
		MaxWords:  c.Corpus.MaxWords,
		Normalize: c.Corpus.Normalize,
		Shuffler:  r,
	}
}

func (c Config) splitOptions(r corpus.Shuffler) split.Options {
	return split.Options{
		Policy:         split.Policy(c.Split.Policy),
		TestSize:       c.Split.TestSize,
		StrictTestSize: c.Split.StrictTestSize,
		MinTestWords:   c.Split.MinTestWords,
		Shuffler:       r,
	}
}

// CSVReader returns a CSV reader configured from the corpus section.
func (c Config) CSVReader() *readers.CSVReader {
	return &readers.CSVReader{Columns: c.Corpus.Columns, Header: c.Corpus.Header}
}
