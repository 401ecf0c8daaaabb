// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"

	"github.com/speakerlab/whosaid/internal/corpus"
)

// ConfusionCounts tallies predicted characters for one true character.
type ConfusionCounts map[string]int

// Evaluation is the outcome of classifying one character's test lines.
type Evaluation struct {
	Character string
	Accuracy  float64
	Correct   int
	Total     int
	Confusion ConfusionCounts
}

// Evaluate classifies every test line of target and reports accuracy as the
// share predicted as target.
func Evaluate(target string, train, test *corpus.LineCollection, freq *FrequencyTable) (Evaluation, error) {
	lines := test.Lines(target)
	if len(lines) == 0 {
		return Evaluation{}, &EmptyTestSetError{Character: target}
	}

	confusion := make(ConfusionCounts)
	for i, line := range lines {
		pred, err := Classify(train, freq, line)
		if err != nil {
			return Evaluation{}, fmt.Errorf("classify test line %d of %q: %w", i, target, err)
		}
		confusion[pred.Character]++
	}

	correct := confusion[target]
	return Evaluation{
		Character: target,
		Accuracy:  float64(correct) / float64(len(lines)),
		Correct:   correct,
		Total:     len(lines),
		Confusion: confusion,
	}, nil
}
