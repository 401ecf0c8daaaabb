// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/speakerlab/whosaid/internal/corpus"
)

// Columns locates the row fields inside a delimited record.
// A negative RoleColumn means every row is treated as corpus.MainRole.
type Columns struct {
	Character int `json:"character" yaml:"character" toml:"character"`
	Line      int `json:"line" yaml:"line" toml:"line"`
	Role      int `json:"role" yaml:"role" toml:"role"`
}

// DefaultColumns matches the cleaned transcript layout: speaker in the
// first column, the line in the second and the role flag in the fifteenth.
func DefaultColumns() Columns {
	return Columns{Character: 0, Line: 1, Role: 14}
}

// CSVReader reads delimited transcripts. Records too short to hold every
// configured column are skipped.
type CSVReader struct {
	Columns Columns
	// Header skips the first record.
	Header bool
}

func NewCSVReader() *CSVReader {
	return &CSVReader{Columns: DefaultColumns()}
}

func (r *CSVReader) Name() string {
	return "csv"
}

// CanHandle returns true for "csv"/"tsv" format hints, or for content whose
// first line splits into more than one comma-separated field.
func (r *CSVReader) CanHandle(source corpus.Source) bool {
	switch strings.ToLower(source.Format) {
	case "csv", "tsv":
		return true
	case "":
	default:
		return false
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(source.Content)), "\n")
	return strings.Count(first, ",") >= max(r.Columns.Character, r.Columns.Line, r.Columns.Role)
}

func (r *CSVReader) Read(ctx context.Context, source corpus.Source) ([]corpus.Row, error) {
	cr := csv.NewReader(bytes.NewReader(source.Content))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if strings.EqualFold(source.Format, "tsv") {
		cr.Comma = '\t'
	}

	need := max(r.Columns.Character, r.Columns.Line, r.Columns.Role) + 1
	var rows []corpus.Row
	for record := 0; ; record++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", record+1, err)
		}
		if record == 0 && r.Header {
			continue
		}
		if len(fields) < need {
			continue
		}
		role := corpus.MainRole
		if r.Columns.Role >= 0 {
			role = strings.TrimSpace(fields[r.Columns.Role])
		}
		rows = append(rows, corpus.Row{
			Character: strings.TrimSpace(fields[r.Columns.Character]),
			Line:      fields[r.Columns.Line],
			Role:      role,
		})
	}
	return rows, nil
}
