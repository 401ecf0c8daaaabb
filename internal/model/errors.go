// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTrainingSet means a character has no training words, so its
	// likelihood denominator would be zero.
	ErrEmptyTrainingSet = errors.New("empty training set")
	// ErrEmptyTestSet means a character has no test lines, so its accuracy
	// is undefined.
	ErrEmptyTestSet = errors.New("empty test set")
)

// EmptyTrainingSetError names the character that could not be scored.
// Character is empty when the training collection has no characters at all.
type EmptyTrainingSetError struct {
	Character string
}

func (e *EmptyTrainingSetError) Error() string {
	if e.Character == "" {
		return "empty training set: no characters to score"
	}
	return fmt.Sprintf("empty training set for character %q", e.Character)
}

func (e *EmptyTrainingSetError) Is(target error) bool { return target == ErrEmptyTrainingSet }

// EmptyTestSetError names the character whose accuracy is undefined.
type EmptyTestSetError struct {
	Character string
}

func (e *EmptyTestSetError) Error() string {
	return fmt.Sprintf("empty test set for character %q", e.Character)
}

func (e *EmptyTestSetError) Is(target error) bool { return target == ErrEmptyTestSet }
