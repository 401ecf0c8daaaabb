// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/speakerlab/whosaid/internal/experiment"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Predict which character spoke a line",
	RunE: func(cmd *cobra.Command, args []string) error {
		line, _ := cmd.Flags().GetString("line")
		if line == "" {
			return fmt.Errorf("--line is required")
		}
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		loaded, err := loadCorpus(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		res, err := experiment.Predict(cfg, loaded.Rows, line)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", res.Prediction.Character)
		if verbose, _ := cmd.Flags().GetBool("scores"); verbose {
			for _, s := range res.Scores {
				fmt.Fprintf(out, "  %-20s  %.6g\n", s.Character, s.Score)
			}
		}
		return nil
	},
}

func init() {
	fs := classifyCmd.Flags()
	addCorpusFlags(fs)
	fs.String("line", "", "the line to attribute")
	fs.Bool("scores", false, "print every character's score")
}
