// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

type Loader struct {
	readers []RowReader
}

// NewLoader creates a Loader that tries readers in the given order.
func NewLoader(readers ...RowReader) *Loader {
	return &Loader{readers: readers}
}

// LoadResult is the output of a successful load.
type LoadResult struct {
	Rows       []Row
	ReaderUsed string
	RowCount   int
}

func (l *Loader) Load(ctx context.Context, source Source) ([]Row, error) {
	result, err := l.LoadWithMeta(ctx, source)
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

func (l *Loader) LoadWithMeta(ctx context.Context, source Source) (LoadResult, error) {
	reader, err := l.selectReader(source)
	if err != nil {
		return LoadResult{}, err
	}

	rows, err := reader.Read(ctx, source)
	if err != nil {
		return LoadResult{}, fmt.Errorf("reader %q failed: %w", reader.Name(), err)
	}

	slog.Debug("corpus loaded", "source", source.ID, "reader", reader.Name(), "rows", len(rows))
	return LoadResult{
		Rows:       rows,
		ReaderUsed: reader.Name(),
		RowCount:   len(rows),
	}, nil
}

// LoadFile reads path from disk and loads it, using path as the source ID.
func (l *Loader) LoadFile(ctx context.Context, path, format string) (LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return l.LoadWithMeta(ctx, Source{Content: content, Format: format, ID: path})
}

// selectReader returns the first registered reader that can handle the given source.
func (l *Loader) selectReader(source Source) (RowReader, error) {
	for _, reader := range l.readers {
		if reader.CanHandle(source) {
			return reader, nil
		}
	}
	return nil, fmt.Errorf("%w: no reader found for source %q (format hint: %q)", ErrUnsupportedFormat, source.ID, source.Format)
}

// RegisteredReaders returns the names of all currently registered readers.
func (l *Loader) RegisteredReaders() []string {
	names := make([]string, len(l.readers))
	for i, reader := range l.readers {
		names[i] = reader.Name()
	}
	return names
}
