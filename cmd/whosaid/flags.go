// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/speakerlab/whosaid/internal/corpus"
	"github.com/speakerlab/whosaid/internal/corpus/readers"
	"github.com/speakerlab/whosaid/internal/experiment"
)

// addCorpusFlags registers the flags shared by every command that reads a
// transcript.
func addCorpusFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "experiment config file (.yaml, .json or .toml)")
	fs.String("corpus", "", "transcript file (overrides corpus.path)")
	fs.String("format", "", "transcript format hint (csv|tsv|yaml|json|script)")
	fs.String("role", corpus.MainRole, "role marker of dialogue rows")
	fs.Int("min-words", 0, "drop lines with fewer words")
	fs.Int("max-words", 0, "drop lines with more words (0 = no bound)")
	fs.Bool("header", false, "skip the first CSV record")
	fs.Bool("normalize", false, "truncate every character to the smallest class")
	fs.Int64("seed", 0, "seed for every shuffle (0 = fresh seed)")
}

// resolveConfig loads --config when given and applies explicitly set flags
// on top. Flags always win over the file.
func resolveConfig(cmd *cobra.Command) (experiment.Config, error) {
	fs := cmd.Flags()
	cfg := experiment.DefaultConfig()
	if path, _ := fs.GetString("config"); path != "" {
		loaded, err := experiment.LoadConfig(path)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg = loaded
	}

	if fs.Changed("corpus") {
		cfg.Corpus.Path, _ = fs.GetString("corpus")
	}
	if fs.Changed("format") {
		cfg.Corpus.Format, _ = fs.GetString("format")
	}
	if fs.Changed("role") {
		cfg.Corpus.Role, _ = fs.GetString("role")
	}
	if fs.Changed("min-words") {
		cfg.Corpus.MinWords, _ = fs.GetInt("min-words")
	}
	if fs.Changed("max-words") {
		if n, _ := fs.GetInt("max-words"); n > 0 {
			cfg.Corpus.MaxWords = n
		}
	}
	if fs.Changed("header") {
		cfg.Corpus.Header, _ = fs.GetBool("header")
	}
	if fs.Changed("normalize") {
		cfg.Corpus.Normalize, _ = fs.GetBool("normalize")
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetInt64("seed")
	}

	if cfg.Corpus.Path == "" {
		return experiment.Config{}, fmt.Errorf("a corpus is required: pass --corpus or set corpus.path")
	}
	return cfg, nil
}

// loadCorpus reads the configured transcript file.
func loadCorpus(ctx context.Context, cfg experiment.Config) (corpus.LoadResult, error) {
	loader := readers.DefaultLoader(cfg.CSVReader())
	res, err := loader.LoadFile(ctx, cfg.Corpus.Path, cfg.Corpus.Format)
	if err != nil {
		return corpus.LoadResult{}, err
	}
	slog.Info("corpus loaded", "path", cfg.Corpus.Path, "reader", res.ReaderUsed, "rows", res.RowCount)
	return res, nil
}
