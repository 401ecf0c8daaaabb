// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"regexp"
	"strings"

	"github.com/speakerlab/whosaid/internal/corpus"
)

// speakerLine matches "NAME: text" with a short, colon-free speaker label.
var speakerLine = regexp.MustCompile(`^([^:,\[\]{}]{1,40}):\s*(.*)$`)

// ScriptReader reads plain screenplay text with one "NAME: line" per line.
// Blank lines and lines without a speaker label are skipped.
type ScriptReader struct {
	// Role is assigned to every row. Empty means corpus.MainRole.
	Role string
}

func NewScriptReader() *ScriptReader {
	return &ScriptReader{Role: corpus.MainRole}
}

func (r *ScriptReader) Name() string {
	return "script"
}

// CanHandle returns true for "script", "transcript" or "txt" hints, or when
// every one of the first few non-blank lines carries a speaker label.
func (r *ScriptReader) CanHandle(source corpus.Source) bool {
	switch strings.ToLower(source.Format) {
	case "script", "transcript", "txt":
		return true
	case "":
	default:
		return false
	}
	seen := 0
	for _, line := range strings.Split(string(source.Content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !speakerLine.MatchString(line) {
			return false
		}
		seen++
		if seen == 5 {
			break
		}
	}
	return seen > 0
}

func (r *ScriptReader) Read(_ context.Context, source corpus.Source) ([]corpus.Row, error) {
	role := r.Role
	if role == "" {
		role = corpus.MainRole
	}

	var rows []corpus.Row
	for _, line := range strings.Split(string(source.Content), "\n") {
		m := speakerLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		rows = append(rows, corpus.Row{
			Character: strings.TrimSpace(m[1]),
			Line:      m[2],
			Role:      role,
		})
	}
	return rows, nil
}
