// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"context"
	"errors"
	"strings"
)

// MainRole is the role marker of dialogue-bearing rows.
const MainRole = "main"

var (
	// ErrEmptyCorpus is returned when no row survives the role and length filters.
	ErrEmptyCorpus = errors.New("empty corpus: no qualifying rows")
	// ErrInvalidBounds is returned for negative or inverted word-count bounds.
	ErrInvalidBounds = errors.New("invalid word-count bounds")
	// ErrUnsupportedFormat is returned when no registered reader accepts a source.
	ErrUnsupportedFormat = errors.New("unsupported corpus format")
)

// Row is one ingested transcript record.
type Row struct {
	Character string `json:"character" yaml:"character"`
	Line      string `json:"line" yaml:"line"`
	Role      string `json:"role" yaml:"role"`
}

// Source describes the raw input handed to a RowReader.
type Source struct {
	// Content is the raw document content.
	Content []byte
	Format  string
	ID      string
}

type RowReader interface {
	CanHandle(source Source) bool
	Read(ctx context.Context, source Source) ([]Row, error)
	Name() string
}

// Tokens splits a line on runs of whitespace. Tokens are taken literally:
// no case folding, no punctuation stripping.
func Tokens(line string) []string {
	return strings.Fields(line)
}

// WordCount returns the number of whitespace-delimited tokens in line.
func WordCount(line string) int {
	return len(strings.Fields(line))
}
