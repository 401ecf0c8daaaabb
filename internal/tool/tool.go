// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the classifier as MCP tools.
package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/speakerlab/whosaid/internal/corpus"
	"github.com/speakerlab/whosaid/internal/corpus/readers"
	"github.com/speakerlab/whosaid/internal/experiment"
)

// NewServer returns an MCP server with every tool registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "whosaid", Version: version}, nil)
	mcp.AddTool(server, MetadataClassifyLine, ClassifyLine)
	mcp.AddTool(server, MetadataEvaluateCorpus, EvaluateCorpus)
	return server
}

var corpusProperties = map[string]interface{}{
	"content": map[string]interface{}{
		"type":        "string",
		"description": "Raw transcript content",
	},
	"format": map[string]interface{}{
		"type":        "string",
		"description": "Format hint for the transcript. One of: csv, tsv, yaml, json, script. If omitted, auto-detection is used.",
		"enum":        []string{"csv", "tsv", "yaml", "json", "script"},
	},
	"source_id": map[string]interface{}{
		"type":        "string",
		"description": "Optional identifier for the transcript (file path, URL, etc.) echoed in the output.",
	},
	"seed": map[string]interface{}{
		"type":        "integer",
		"description": "Seed for every shuffle. Omit or pass 0 for a fresh seed.",
		"minimum":     0,
	},
}

// withCorpus merges the shared corpus properties into a tool's own.
func withCorpus(props map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(corpusProperties)+len(props))
	for k, v := range corpusProperties {
		out[k] = v
	}
	for k, v := range props {
		out[k] = v
	}
	return out
}

// loadRows reads content with the default readers.
func loadRows(ctx context.Context, cfg experiment.Config, content, format, sourceID string) (corpus.LoadResult, error) {
	if content == "" {
		return corpus.LoadResult{}, fmt.Errorf("content is required")
	}
	if sourceID == "" {
		sourceID = "unknown"
	}
	loader := readers.DefaultLoader(cfg.CSVReader())
	return loader.LoadWithMeta(ctx, corpus.Source{
		Content: []byte(content),
		Format:  format,
		ID:      sourceID,
	})
}
