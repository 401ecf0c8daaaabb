// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"math/rand/v2"
	"time"
)

// Shuffler is the source of randomness for every stochastic stage.
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a deterministic Shuffler for seed.
func NewShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TimeShuffler returns a Shuffler seeded from the wall clock.
func TimeShuffler() Shuffler {
	n := time.Now().UnixNano()
	return NewShuffler(uint64(n))
}

// ShuffleLines returns a shuffled copy of lines; the input is left untouched.
func ShuffleLines(r Shuffler, lines []string) []string {
	out := append([]string{}, lines...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
