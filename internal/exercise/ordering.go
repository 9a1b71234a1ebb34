package exercise

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/shuffle"
)

// MoveDirection is the direction of an adjacent-swap move.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// Ordering is a step-sequencing exercise. The learner rearranges a working
// sequence with adjacent swaps until it matches the correct sequence.
// Grading is binary: positional equality, independent of the move history.
type Ordering struct {
	ID      string
	Prompt  string
	correct []string
	working []string
}

// NewOrdering builds an ordering exercise. The initial working sequence is
// a permutation of the correct sequence guaranteed to differ from it
// whenever more than one step exists.
func NewOrdering(r *rand.Rand, id, prompt string, correct []string) (*Ordering, error) {
	if len(correct) == 0 {
		return nil, fmt.Errorf("%w: ordering %s has no steps", ErrUnsatisfiableConfiguration, id)
	}
	seen := make(map[string]bool, len(correct))
	for _, step := range correct {
		if seen[step] {
			return nil, fmt.Errorf("%w: ordering %s has duplicate step %q", ErrUnsatisfiableConfiguration, id, step)
		}
		seen[step] = true
	}

	return &Ordering{
		ID:      id,
		Prompt:  prompt,
		correct: slices.Clone(correct),
		working: shuffle.PermutationAvoiding(r, correct, correct),
	}, nil
}

// Working returns a copy of the current working sequence.
func (o *Ordering) Working() []string {
	return slices.Clone(o.working)
}

// Len returns the number of steps.
func (o *Ordering) Len() int {
	return len(o.working)
}

// Move swaps the item at index with its neighbor in the given direction
// and returns the updated working sequence. A move that would cross the
// sequence boundary is a no-op. An out-of-range index is an error.
func (o *Ordering) Move(index int, dir MoveDirection) ([]string, error) {
	if index < 0 || index >= len(o.working) {
		return nil, fmt.Errorf("ordering %s: move index %d out of range [0,%d)", o.ID, index, len(o.working))
	}

	j := index - 1
	if dir == MoveDown {
		j = index + 1
	}
	if j >= 0 && j < len(o.working) {
		o.working[index], o.working[j] = o.working[j], o.working[index]
	}
	return o.Working(), nil
}

// Evaluate grades the current working sequence against the correct one.
func (o *Ordering) Evaluate() Outcome {
	return Outcome{
		ExerciseID: o.ID,
		Passed:     slices.Equal(o.working, o.correct),
	}
}
