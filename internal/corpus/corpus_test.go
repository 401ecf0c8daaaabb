// SPDX-License-Identifier: Apache-2.0

package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakerlab/whosaid/internal/corpus"
)

// ---------------------------------------------------------------------------
// LineCollection
// ---------------------------------------------------------------------------

func TestLineCollection_KeepsFirstSeenOrder(t *testing.T) {
	c := corpus.NewLineCollection()
	c.Add("Niles", "Oh, dear.")
	c.Add("Frasier", "I'm listening.")
	c.Add("Niles", "Sherry?")
	c.Set("Daphne", nil)

	assert.Equal(t, []string{"Niles", "Frasier", "Daphne"}, c.Characters())
	assert.Equal(t, []string{"Oh, dear.", "Sherry?"}, c.Lines("Niles"))
	assert.True(t, c.Has("Daphne"))
	assert.Empty(t, c.Lines("Daphne"))
	assert.Nil(t, c.Lines("Roz"))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.TotalLines())
}

func TestLineCollection_CloneIsIndependent(t *testing.T) {
	c := corpus.NewLineCollection()
	c.Add("Martin", "Eddie!")

	clone := c.Clone()
	clone.Add("Martin", "Get down.")
	clone.Add("Roz", "Hi.")

	assert.Equal(t, []string{"Eddie!"}, c.Lines("Martin"))
	assert.Equal(t, []string{"Martin"}, c.Characters())
	assert.Equal(t, []string{"Eddie!", "Get down."}, clone.Lines("Martin"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"Hello,", "Hello", "there."}, corpus.Tokens("  Hello,\tHello  there.\n"))
	assert.Empty(t, corpus.Tokens(""))
	assert.Empty(t, corpus.Tokens("   "))
	assert.Equal(t, 3, corpus.WordCount("a b  c"))
}

// ---------------------------------------------------------------------------
// Partition
// ---------------------------------------------------------------------------

var sampleRows = []corpus.Row{
	{Character: "Frasier", Line: "I'm listening", Role: "main"},
	{Character: "Caller", Line: "Hi Dr Crane", Role: "guest"},
	{Character: "Niles", Line: "Oh", Role: "main"},
	{Character: "Frasier", Line: "Good morning Seattle and welcome", Role: "main"},
	{Character: "Niles", Line: "Shall we have some sherry", Role: "main"},
	{Character: "Roz", Line: "", Role: "main"},
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name     string
		opts     corpus.PartitionOptions
		wantKeys []string
		want     map[string][]string
	}{
		{
			name:     "defaults keep every main-role line",
			opts:     corpus.DefaultPartitionOptions(),
			wantKeys: []string{"Frasier", "Niles", "Roz"},
			want: map[string][]string{
				"Frasier": {"I'm listening", "Good morning Seattle and welcome"},
				"Niles":   {"Oh", "Shall we have some sherry"},
				"Roz":     {""},
			},
		},
		{
			name:     "min words drops short lines",
			opts:     corpus.PartitionOptions{MinWords: 2},
			wantKeys: []string{"Frasier", "Niles"},
			want: map[string][]string{
				"Frasier": {"I'm listening", "Good morning Seattle and welcome"},
				"Niles":   {"Shall we have some sherry"},
			},
		},
		{
			name:     "zero options keep every main-role line",
			opts:     corpus.PartitionOptions{},
			wantKeys: []string{"Frasier", "Niles", "Roz"},
			want: map[string][]string{
				"Frasier": {"I'm listening", "Good morning Seattle and welcome"},
				"Niles":   {"Oh", "Shall we have some sherry"},
				"Roz":     {""},
			},
		},
		{
			name:     "bounds are inclusive",
			opts:     corpus.PartitionOptions{MinWords: 1, MaxWords: 2},
			wantKeys: []string{"Frasier", "Niles"},
			want: map[string][]string{
				"Frasier": {"I'm listening"},
				"Niles":   {"Oh"},
			},
		},
		{
			name:     "custom role",
			opts:     corpus.PartitionOptions{Role: "guest"},
			wantKeys: []string{"Caller"},
			want:     map[string][]string{"Caller": {"Hi Dr Crane"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := corpus.Partition(sampleRows, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, lines.Characters())
			for ch, want := range tt.want {
				assert.Equal(t, want, lines.Lines(ch), "lines for %s", ch)
			}
		})
	}
}

func TestPartition_Completeness(t *testing.T) {
	opts := corpus.PartitionOptions{MinWords: 2, MaxWords: 4}
	lines, err := corpus.Partition(sampleRows, opts)
	require.NoError(t, err)

	var want []string
	for _, row := range sampleRows {
		n := corpus.WordCount(row.Line)
		if row.Role == corpus.MainRole && n >= opts.MinWords && n <= opts.MaxWords {
			want = append(want, row.Line)
		}
	}
	var got []string
	for _, ch := range lines.Characters() {
		got = append(got, lines.Lines(ch)...)
	}
	assert.ElementsMatch(t, want, got)
}

func TestPartition_EmptyCorpus(t *testing.T) {
	_, err := corpus.Partition(sampleRows, corpus.PartitionOptions{MinWords: 50, MaxWords: corpus.Unbounded})
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)

	_, err = corpus.Partition(nil, corpus.DefaultPartitionOptions())
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}

func TestPartition_InvalidBounds(t *testing.T) {
	_, err := corpus.Partition(sampleRows, corpus.PartitionOptions{MinWords: 5, MaxWords: 2})
	require.ErrorIs(t, err, corpus.ErrInvalidBounds)

	_, err = corpus.Partition(sampleRows, corpus.PartitionOptions{MinWords: -1, MaxWords: 2})
	require.ErrorIs(t, err, corpus.ErrInvalidBounds)
}

func TestPartition_Normalize(t *testing.T) {
	var rows []corpus.Row
	for _, l := range []string{"a", "b", "c", "d", "e"} {
		rows = append(rows, corpus.Row{Character: "Frasier", Line: "frasier " + l, Role: "main"})
	}
	for _, l := range []string{"a", "b"} {
		rows = append(rows, corpus.Row{Character: "Eddie", Line: "eddie " + l, Role: "main"})
	}
	for _, l := range []string{"a", "b", "c"} {
		rows = append(rows, corpus.Row{Character: "Martin", Line: "martin " + l, Role: "main"})
	}

	full, err := corpus.Partition(rows, corpus.DefaultPartitionOptions())
	require.NoError(t, err)

	opts := corpus.DefaultPartitionOptions()
	opts.Normalize = true
	opts.Shuffler = corpus.NewShuffler(3)
	lines, err := corpus.Partition(rows, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Frasier", "Eddie", "Martin"}, lines.Characters())
	for _, ch := range lines.Characters() {
		assert.Len(t, lines.Lines(ch), 2, "class %s", ch)
		assert.Subset(t, full.Lines(ch), lines.Lines(ch))
	}

	opts.Shuffler = corpus.NewShuffler(3)
	again, err := corpus.Partition(rows, opts)
	require.NoError(t, err)
	for _, ch := range lines.Characters() {
		assert.Equal(t, lines.Lines(ch), again.Lines(ch), "same seed must give the same truncation")
	}
}

// ---------------------------------------------------------------------------
// Shuffler
// ---------------------------------------------------------------------------

func TestShuffleLines_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f"}
	out := corpus.ShuffleLines(corpus.NewShuffler(1), in)

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, in)
	assert.ElementsMatch(t, in, out)
	assert.Equal(t, out, corpus.ShuffleLines(corpus.NewShuffler(1), in))
}
