// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/speakerlab/whosaid/internal/experiment"
	"github.com/speakerlab/whosaid/internal/model"
)

// MetadataClassifyLine describes the classify_line tool.
var MetadataClassifyLine = &mcp.Tool{
	Name: "classify_line",
	Description: "Train a Naive Bayes speaker model on a dialogue transcript and predict which " +
		"character most likely spoke the given line. Returns the winning character together " +
		"with the unnormalized score of every character; scores rank characters and do not sum to 1.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content", "line"},
		"properties": withCorpus(map[string]interface{}{
			"line": map[string]interface{}{
				"type":        "string",
				"description": "The line to attribute",
			},
			"min_words": map[string]interface{}{
				"type":        "integer",
				"description": "Only train on lines with at least this many words.",
				"minimum":     0,
			},
			"max_words": map[string]interface{}{
				"type":        "integer",
				"description": "Only train on lines with at most this many words. Omit for no bound.",
				"minimum":     0,
			},
		}),
	},
}

// InputClassifyLine is the input for the ClassifyLine tool.
type InputClassifyLine struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	SourceID string `json:"source_id"`
	Seed     int64  `json:"seed"`
	Line     string `json:"line"`
	MinWords int    `json:"min_words"`
	MaxWords int    `json:"max_words"`
}

// OutputClassifyLine is the output for the ClassifyLine tool.
type OutputClassifyLine struct {
	// Character is the predicted speaker.
	Character string  `json:"character"`
	Score     float64 `json:"score"`
	// Scores holds every character's score in first-seen order.
	Scores     []model.CharacterScore `json:"scores"`
	ReaderUsed string                 `json:"reader_used"`
	TotalRows  int                    `json:"total_rows"`
}

func ClassifyLine(ctx context.Context, _ *mcp.CallToolRequest, input InputClassifyLine) (*mcp.CallToolResult, OutputClassifyLine, error) {
	if input.Line == "" {
		return nil, OutputClassifyLine{}, fmt.Errorf("line is required")
	}

	cfg := experiment.DefaultConfig()
	cfg.Seed = input.Seed
	cfg.Corpus.MinWords = input.MinWords
	if input.MaxWords > 0 {
		cfg.Corpus.MaxWords = input.MaxWords
	}
	if err := cfg.Validate(); err != nil {
		return nil, OutputClassifyLine{}, err
	}

	loaded, err := loadRows(ctx, cfg, input.Content, input.Format, input.SourceID)
	if err != nil {
		return nil, OutputClassifyLine{}, err
	}
	res, err := experiment.Predict(cfg, loaded.Rows, input.Line)
	if err != nil {
		return nil, OutputClassifyLine{}, err
	}

	return nil, OutputClassifyLine{
		Character:  res.Prediction.Character,
		Score:      res.Prediction.Score,
		Scores:     res.Scores,
		ReaderUsed: loaded.ReaderUsed,
		TotalRows:  loaded.RowCount,
	}, nil
}
