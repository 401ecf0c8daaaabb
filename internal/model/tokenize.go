// SPDX-License-Identifier: Apache-2.0

package model

import "github.com/speakerlab/whosaid/internal/corpus"

// FrequencyTable holds per-character token counts in character insertion
// order. Lookups of unknown characters or tokens return zero.
type FrequencyTable struct {
	order  []string
	counts map[string]map[string]int
	totals map[string]int
}

// Tokenize counts every whitespace token of every line, per character.
// A character with no lines gets an empty table.
func Tokenize(lines *corpus.LineCollection) *FrequencyTable {
	t := &FrequencyTable{
		counts: make(map[string]map[string]int, lines.Len()),
		totals: make(map[string]int, lines.Len()),
	}
	for _, ch := range lines.Characters() {
		words := make(map[string]int)
		total := 0
		for _, line := range lines.Lines(ch) {
			for _, tok := range corpus.Tokens(line) {
				words[tok]++
				total++
			}
		}
		t.order = append(t.order, ch)
		t.counts[ch] = words
		t.totals[ch] = total
	}
	return t
}

// Count returns how often character used token, or zero.
func (t *FrequencyTable) Count(character, token string) int {
	return t.counts[character][token]
}

// Total returns the number of tokens counted for character.
func (t *FrequencyTable) Total(character string) int {
	return t.totals[character]
}

// Tokens returns a copy of character's token counts.
func (t *FrequencyTable) Tokens(character string) map[string]int {
	out := make(map[string]int, len(t.counts[character]))
	for tok, n := range t.counts[character] {
		out[tok] = n
	}
	return out
}

// Characters returns the counted characters in insertion order.
func (t *FrequencyTable) Characters() []string {
	return append([]string{}, t.order...)
}

// Vocabulary returns the number of distinct tokens across all characters.
func (t *FrequencyTable) Vocabulary() int {
	seen := make(map[string]struct{})
	for _, words := range t.counts {
		for tok := range words {
			seen[tok] = struct{}{}
		}
	}
	return len(seen)
}
