// Package shuffle provides the order-randomizing primitive used by every
// exercise whose presentation must not reveal answer position or the
// correct initial state.
package shuffle

import (
	"math/rand"
	"slices"
	"time"
)

// MaxResample bounds the resampling loop in PermutationAvoiding. With
// distinct items and n > 1 the chance of drawing the reference n times
// in a row is (1/n!)^MaxResample, so hitting the cap means the
// requirement was unsatisfiable to begin with.
const MaxResample = 10

// NewSource returns a time-seeded source for live sessions. Tests pass
// their own deterministic *rand.Rand instead.
func NewSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Permutation returns a uniformly random permutation of items without
// mutating the input.
func Permutation[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// PermutationAvoiding returns a random permutation of items that differs
// from ref, resampling up to MaxResample times. When len(items) <= 1 the
// requirement is unsatisfiable and a copy of the input order is returned.
func PermutationAvoiding[T comparable](r *rand.Rand, items, ref []T) []T {
	if len(items) > 1 {
		for range MaxResample {
			out := Permutation(r, items)
			if !slices.Equal(out, ref) {
				return out
			}
		}
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
