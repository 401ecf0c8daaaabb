// SPDX-License-Identifier: Apache-2.0

package model

import "github.com/speakerlab/whosaid/internal/corpus"

// CharacterScore is one entry of a ScoreVector.
type CharacterScore struct {
	Character string  `json:"character" yaml:"character"`
	Score     float64 `json:"score" yaml:"score"`
}

// ScoreVector holds unnormalized joint likelihoods in training character
// order. It ranks characters; it is not a probability distribution.
type ScoreVector []CharacterScore

// Get returns the score for character.
func (v ScoreVector) Get(character string) (float64, bool) {
	for _, s := range v {
		if s.Character == character {
			return s.Score, true
		}
	}
	return 0, false
}

// Score computes prior(c) × Π (count(c, w)+1) / totalWords(c) for every
// training character c, multiplying left to right in token order.
//
// The denominator is the raw word total, without the vocabulary size that
// textbook Laplace smoothing would add.
func Score(train *corpus.LineCollection, freq *FrequencyTable, line string) (ScoreVector, error) {
	totalLines := train.TotalLines()
	if train.Len() == 0 || totalLines == 0 {
		return nil, &EmptyTrainingSetError{}
	}

	tokens := corpus.Tokens(line)
	scores := make(ScoreVector, 0, train.Len())
	for _, ch := range train.Characters() {
		lines := train.Lines(ch)
		totalWords := 0
		for _, l := range lines {
			totalWords += corpus.WordCount(l)
		}
		if totalWords == 0 {
			return nil, &EmptyTrainingSetError{Character: ch}
		}

		score := float64(len(lines)) / float64(totalLines)
		for _, tok := range tokens {
			score *= float64(freq.Count(ch, tok)+1) / float64(totalWords)
		}
		scores = append(scores, CharacterScore{Character: ch, Score: score})
	}
	return scores, nil
}
