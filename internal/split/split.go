// SPDX-License-Identifier: Apache-2.0

// Package split divides per-character lines into disjoint train and test
// partitions.
package split

import (
	"errors"
	"fmt"

	"github.com/speakerlab/whosaid/internal/corpus"
)

// DefaultTestSize is the fraction of each character's lines held out by the
// fractional policy.
const DefaultTestSize = 0.25

var (
	ErrInvalidTestSize = errors.New("test size must lie in (0, 1)")
	ErrInvalidOptions  = errors.New("invalid split options")
)

// Policy selects how test lines are chosen.
type Policy string

const (
	// Fractional holds out a fraction of every character's lines.
	Fractional Policy = "fractional"
	// Strict holds out a fixed number of lines per character.
	Strict Policy = "strict"
	// StrictFiltered holds out a fixed number of lines per character,
	// drawn only from lines meeting MinTestWords.
	StrictFiltered Policy = "strict-filtered"
)

// Options configure Apply. The zero value selects the fractional policy
// with DefaultTestSize.
type Options struct {
	// Policy may be left empty; Resolve then infers it from the other fields.
	Policy Policy

	TestSize       float64
	StrictTestSize int
	MinTestWords   int

	// Shuffler drives the per-character shuffle. Nil means corpus.TimeShuffler().
	Shuffler corpus.Shuffler
}

// Split is a pair of disjoint collections over the same characters.
type Split struct {
	Train *corpus.LineCollection
	Test  *corpus.LineCollection
}

// Resolve fills in the policy and default test size.
func (o Options) Resolve() (Options, error) {
	if o.StrictTestSize < 0 || o.MinTestWords < 0 {
		return o, fmt.Errorf("%w: strict test size %d, min test words %d", ErrInvalidOptions, o.StrictTestSize, o.MinTestWords)
	}
	if o.Policy == "" {
		switch {
		case o.StrictTestSize > 0 && o.MinTestWords > 0:
			o.Policy = StrictFiltered
		case o.StrictTestSize > 0:
			o.Policy = Strict
		default:
			o.Policy = Fractional
		}
	}
	switch o.Policy {
	case Fractional:
		if o.TestSize == 0 {
			o.TestSize = DefaultTestSize
		}
		if o.TestSize <= 0 || o.TestSize >= 1 {
			return o, fmt.Errorf("%w: got %v", ErrInvalidTestSize, o.TestSize)
		}
	case Strict, StrictFiltered:
	default:
		return o, fmt.Errorf("%w: unknown policy %q", ErrInvalidOptions, o.Policy)
	}
	if o.Shuffler == nil {
		o.Shuffler = corpus.TimeShuffler()
	}
	return o, nil
}

// Apply shuffles each character's lines independently, in character order,
// and divides them according to the resolved policy. lines is not modified.
func Apply(lines *corpus.LineCollection, opts Options) (Split, error) {
	opts, err := opts.Resolve()
	if err != nil {
		return Split{}, err
	}

	out := Split{Train: corpus.NewLineCollection(), Test: corpus.NewLineCollection()}
	for _, ch := range lines.Characters() {
		shuffled := corpus.ShuffleLines(opts.Shuffler, lines.Lines(ch))

		var train, test []string
		switch opts.Policy {
		case Fractional:
			train, test = fractional(shuffled, opts.TestSize)
		case Strict:
			train, test = strict(shuffled, opts.StrictTestSize)
		case StrictFiltered:
			train, test = strictFiltered(shuffled, opts.StrictTestSize, opts.MinTestWords)
		}
		out.Train.Set(ch, train)
		out.Test.Set(ch, test)
	}
	return out, nil
}

func fractional(lines []string, testSize float64) (train, test []string) {
	cut := int((1 - testSize) * float64(len(lines)))
	return lines[:cut:cut], lines[cut:]
}

// strict reserves the last k lines for test. When k covers every line the
// train side is empty.
func strict(lines []string, k int) (train, test []string) {
	cut := max(len(lines)-k, 0)
	return lines[:cut:cut], lines[cut:]
}

// strictFiltered reserves the last k lines with at least minWords tokens.
// Everything else goes to train in shuffled order.
func strictFiltered(lines []string, k, minWords int) (train, test []string) {
	reserved := make([]bool, len(lines))
	for i := len(lines) - 1; i >= 0 && k > 0; i-- {
		if corpus.WordCount(lines[i]) >= minWords {
			reserved[i] = true
			k--
		}
	}

	train = []string{}
	test = []string{}
	for i, line := range lines {
		if reserved[i] {
			test = append(test, line)
		} else {
			train = append(train, line)
		}
	}
	return train, test
}
