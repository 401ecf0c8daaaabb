// SPDX-License-Identifier: Apache-2.0

package experiment

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	poorColor   = color.New(color.FgRed)
	skipColor   = color.New(color.FgYellow)
)

// Report summarizes one experiment run.
type Report struct {
	RunID      string            `json:"run_id" yaml:"run_id"`
	Source     string            `json:"source,omitempty" yaml:"source,omitempty"`
	Seed       int64             `json:"seed" yaml:"seed"`
	Policy     string            `json:"policy" yaml:"policy"`
	TrainLines int               `json:"train_lines" yaml:"train_lines"`
	TestLines  int               `json:"test_lines" yaml:"test_lines"`
	Overall    float64           `json:"overall_accuracy" yaml:"overall_accuracy"`
	Characters []CharacterResult `json:"characters" yaml:"characters"`
}

type CharacterResult struct {
	Character  string         `json:"character" yaml:"character"`
	TrainLines int            `json:"train_lines" yaml:"train_lines"`
	TestLines  int            `json:"test_lines" yaml:"test_lines"`
	Accuracy   float64        `json:"accuracy" yaml:"accuracy"`
	Correct    int            `json:"correct" yaml:"correct"`
	Total      int            `json:"total" yaml:"total"`
	Confusion  []ConfusionRow `json:"confusion,omitempty" yaml:"confusion,omitempty"`
	Skipped    bool           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Reason     string         `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ConfusionRow counts how many test lines were predicted as Predicted.
type ConfusionRow struct {
	Predicted string `json:"predicted" yaml:"predicted"`
	Count     int    `json:"count" yaml:"count"`
}

// WriteYAML writes r as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// WriteText writes r as an aligned table with one row per character.
func (r *Report) WriteText(w io.Writer) error {
	headerColor.Fprintf(w, "run %s  seed %d  policy %s  train %d  test %d\n",
		r.RunID, r.Seed, r.Policy, r.TrainLines, r.TestLines)
	fmt.Fprintf(w, "%-20s  %8s  %9s  %s\n", "Character", "Accuracy", "Correct", "Predicted as")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, c := range r.Characters {
		if c.Skipped {
			skipColor.Fprintf(w, "%-20s  %8s  %9s  %s\n", c.Character, "-", "-", c.Reason)
			continue
		}
		acc := fmt.Sprintf("%7.2f%%", c.Accuracy*100)
		if c.Accuracy >= 0.5 {
			acc = goodColor.Sprint(acc)
		} else {
			acc = poorColor.Sprint(acc)
		}
		parts := make([]string, len(c.Confusion))
		for i, row := range c.Confusion {
			parts[i] = fmt.Sprintf("%s=%d", row.Predicted, row.Count)
		}
		fmt.Fprintf(w, "%-20s  %8s  %4d/%-4d  %s\n", c.Character, acc, c.Correct, c.Total, strings.Join(parts, " "))
	}

	fmt.Fprintln(w, strings.Repeat("─", 72))
	_, err := fmt.Fprintf(w, "%-20s  %7.2f%%\n", "overall", r.Overall*100)
	return err
}
