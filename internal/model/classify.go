// SPDX-License-Identifier: Apache-2.0

package model

import "github.com/speakerlab/whosaid/internal/corpus"

// Prediction is the winning character and its score.
type Prediction struct {
	Character string  `json:"character" yaml:"character"`
	Score     float64 `json:"score" yaml:"score"`
}

// Classify returns the highest-scoring training character for line.
func Classify(train *corpus.LineCollection, freq *FrequencyTable, line string) (Prediction, error) {
	scores, err := Score(train, freq, line)
	if err != nil {
		return Prediction{}, err
	}
	return scores.Best(), nil
}

// Best scans v left to right and replaces the leader only on a strictly
// greater score, so ties go to the character seen first during
// partitioning. An empty vector yields the zero Prediction.
func (v ScoreVector) Best() Prediction {
	if len(v) == 0 {
		return Prediction{}
	}
	best := Prediction{Character: v[0].Character, Score: v[0].Score}
	for _, s := range v[1:] {
		if s.Score > best.Score {
			best = Prediction{Character: s.Character, Score: s.Score}
		}
	}
	return best
}
