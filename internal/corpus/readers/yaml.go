// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"

	"github.com/speakerlab/whosaid/internal/corpus"
)

// YAMLReader reads a YAML or JSON sequence of {character, line, role}
// objects. Multi-document YAML (separated by '---') is concatenated in
// document order. Rows without a role are treated as corpus.MainRole.
type YAMLReader struct{}

func NewYAMLReader() *YAMLReader {
	return &YAMLReader{}
}

func (r *YAMLReader) Name() string {
	return "yaml"
}

func (r *YAMLReader) CanHandle(source corpus.Source) bool {
	switch strings.ToLower(source.Format) {
	case "yaml", "yml", "json":
		return true
	case "":
	default:
		return false
	}
	content := strings.TrimSpace(string(source.Content))
	return strings.HasPrefix(content, "[") ||
		strings.HasPrefix(content, "- ") ||
		strings.HasPrefix(content, "---")
}

func (r *YAMLReader) Read(_ context.Context, source corpus.Source) ([]corpus.Row, error) {
	file, err := parser.ParseBytes(source.Content, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	var rows []corpus.Row
	for i, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		var docRows []corpus.Row
		if err := yaml.NodeToValue(doc.Body, &docRows); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document %d: %w", i, err)
		}
		for _, row := range docRows {
			if row.Role == "" {
				row.Role = corpus.MainRole
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}
