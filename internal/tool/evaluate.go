// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/speakerlab/whosaid/internal/experiment"
)

// MetadataEvaluateCorpus describes the evaluate_corpus tool.
var MetadataEvaluateCorpus = &mcp.Tool{
	Name: "evaluate_corpus",
	Description: "Split a dialogue transcript into train and test lines per character, train a " +
		"Naive Bayes speaker model and report per-character accuracy with confusion counts. " +
		"Characters without test lines are reported as skipped.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": withCorpus(map[string]interface{}{
			"test_size": map[string]interface{}{
				"type":             "number",
				"description":      "Fraction of each character's lines held out for testing. Defaults to 0.25.",
				"exclusiveMinimum": 0,
				"exclusiveMaximum": 1,
			},
			"strict_test_size": map[string]interface{}{
				"type":        "integer",
				"description": "Hold out exactly this many lines per character instead of a fraction.",
				"minimum":     0,
			},
			"min_test_words": map[string]interface{}{
				"type":        "integer",
				"description": "With strict_test_size, only hold out lines with at least this many words.",
				"minimum":     0,
			},
			"normalize": map[string]interface{}{
				"type":        "boolean",
				"description": "Truncate every character to the size of the smallest one.",
			},
			"characters": map[string]interface{}{
				"type":        "array",
				"description": "Characters to evaluate. Defaults to all.",
				"items":       map[string]interface{}{"type": "string"},
			},
		}),
	},
}

// InputEvaluateCorpus is the input for the EvaluateCorpus tool.
type InputEvaluateCorpus struct {
	Content        string   `json:"content"`
	Format         string   `json:"format"`
	SourceID       string   `json:"source_id"`
	Seed           int64    `json:"seed"`
	TestSize       float64  `json:"test_size"`
	StrictTestSize int      `json:"strict_test_size"`
	MinTestWords   int      `json:"min_test_words"`
	Normalize      bool     `json:"normalize"`
	Characters     []string `json:"characters"`
}

// OutputEvaluateCorpus is the output for the EvaluateCorpus tool.
type OutputEvaluateCorpus struct {
	Report     experiment.Report `json:"report"`
	ReaderUsed string            `json:"reader_used"`
}

func EvaluateCorpus(ctx context.Context, _ *mcp.CallToolRequest, input InputEvaluateCorpus) (*mcp.CallToolResult, OutputEvaluateCorpus, error) {
	cfg := experiment.DefaultConfig()
	cfg.Seed = input.Seed
	cfg.Corpus.Normalize = input.Normalize
	cfg.Characters = input.Characters
	if input.TestSize > 0 {
		cfg.Split.TestSize = input.TestSize
	}
	cfg.Split.StrictTestSize = input.StrictTestSize
	cfg.Split.MinTestWords = input.MinTestWords
	if err := cfg.Validate(); err != nil {
		return nil, OutputEvaluateCorpus{}, err
	}

	loaded, err := loadRows(ctx, cfg, input.Content, input.Format, input.SourceID)
	if err != nil {
		return nil, OutputEvaluateCorpus{}, err
	}
	report, err := experiment.Run(ctx, cfg, loaded.Rows)
	if err != nil {
		return nil, OutputEvaluateCorpus{}, err
	}
	report.Source = input.SourceID

	return nil, OutputEvaluateCorpus{Report: *report, ReaderUsed: loaded.ReaderUsed}, nil
}
