// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"fmt"
	"math"
)

// Unbounded is the default MaxWords: no practical upper bound.
const Unbounded = math.MaxInt

// PartitionOptions control which rows reach the LineCollection.
type PartitionOptions struct {
	// Role is the role marker a row must carry. Empty means MainRole.
	Role string

	// MinWords and MaxWords bound a line's token count, inclusive.
	// A zero MaxWords means Unbounded.
	MinWords int
	MaxWords int

	// Normalize truncates every character to the size of the smallest
	// class after an independent shuffle.
	Normalize bool

	// Shuffler drives normalization. Nil means TimeShuffler().
	Shuffler Shuffler
}

// DefaultPartitionOptions keeps every main-role line.
func DefaultPartitionOptions() PartitionOptions {
	return PartitionOptions{
		Role:     MainRole,
		MinWords: 0,
		MaxWords: Unbounded,
	}
}

// Partition groups qualifying rows by character. Characters are keyed in
// the order they first appear in rows and lines keep row order.
func Partition(rows []Row, opts PartitionOptions) (*LineCollection, error) {
	if opts.MaxWords == 0 {
		opts.MaxWords = Unbounded
	}
	if opts.MinWords < 0 || opts.MaxWords < 0 || opts.MinWords > opts.MaxWords {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, opts.MinWords, opts.MaxWords)
	}
	role := opts.Role
	if role == "" {
		role = MainRole
	}

	lines := NewLineCollection()
	for _, row := range rows {
		if row.Role != role {
			continue
		}
		n := WordCount(row.Line)
		if n < opts.MinWords || n > opts.MaxWords {
			continue
		}
		lines.Add(row.Character, row.Line)
	}
	if lines.Len() == 0 {
		return nil, ErrEmptyCorpus
	}

	if opts.Normalize {
		r := opts.Shuffler
		if r == nil {
			r = TimeShuffler()
		}
		lines = normalize(lines, r)
	}
	return lines, nil
}

// normalize shuffles each character's lines and truncates them to the
// smallest class size.
func normalize(lines *LineCollection, r Shuffler) *LineCollection {
	smallest := math.MaxInt
	for _, ch := range lines.Characters() {
		smallest = min(smallest, len(lines.Lines(ch)))
	}

	out := NewLineCollection()
	for _, ch := range lines.Characters() {
		shuffled := ShuffleLines(r, lines.Lines(ch))
		out.Set(ch, shuffled[:smallest])
	}
	return out
}
