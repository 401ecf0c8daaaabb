// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/speakerlab/whosaid/internal/experiment"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Report per-character accuracy on held-out lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		fs := cmd.Flags()
		if fs.Changed("policy") {
			cfg.Split.Policy, _ = fs.GetString("policy")
		}
		if fs.Changed("test-size") {
			cfg.Split.TestSize, _ = fs.GetFloat64("test-size")
		}
		if fs.Changed("strict-test-size") {
			cfg.Split.StrictTestSize, _ = fs.GetInt("strict-test-size")
		}
		if fs.Changed("min-test-words") {
			cfg.Split.MinTestWords, _ = fs.GetInt("min-test-words")
		}
		if fs.Changed("character") {
			cfg.Characters, _ = fs.GetStringSlice("character")
		}
		if fs.Changed("workers") {
			cfg.Workers, _ = fs.GetInt("workers")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		loaded, err := loadCorpus(ctx, cfg)
		if err != nil {
			return err
		}
		report, err := experiment.Run(ctx, cfg, loaded.Rows)
		if err != nil {
			return fmt.Errorf("run experiment: %w", err)
		}
		report.Source = cfg.Corpus.Path

		out := cmd.OutOrStdout()
		switch output, _ := fs.GetString("output"); output {
		case "yaml":
			return report.WriteYAML(out)
		case "text":
			return report.WriteText(out)
		default:
			return fmt.Errorf("unknown --output %q (want text or yaml)", output)
		}
	},
}

func init() {
	fs := evaluateCmd.Flags()
	addCorpusFlags(fs)
	fs.String("policy", "", "split policy (fractional|strict|strict-filtered); inferred when empty")
	fs.Float64("test-size", 0.25, "fraction of lines held out per character")
	fs.Int("strict-test-size", 0, "hold out exactly this many lines per character")
	fs.Int("min-test-words", 0, "with --strict-test-size, only hold out lines with at least this many words")
	fs.StringSlice("character", nil, "evaluate only these characters (repeatable)")
	fs.Int("workers", 0, "concurrent character evaluations (0 = one per CPU)")
	fs.String("output", "text", "report format (text|yaml)")
}
