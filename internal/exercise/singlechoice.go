package exercise

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/shuffle"
)

// SingleChoice is a prompt with a set of unique candidate answers, exactly
// one of which is correct.
type SingleChoice struct {
	ID         string
	Prompt     string
	Candidates []string // presentation order
	Points     int      // awarded on a correct first-class submission

	correct string
}

// NewSingleChoice builds a single-choice exercise with candidates in
// shuffled presentation order. The correct answer must be a member of the
// candidate set and candidates must be unique.
func NewSingleChoice(r *rand.Rand, id, prompt string, candidates []string, correct string, points int) (*SingleChoice, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: exercise %s has no candidates", ErrUnsatisfiableConfiguration, id)
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			return nil, fmt.Errorf("%w: exercise %s has duplicate candidate %q", ErrUnsatisfiableConfiguration, id, c)
		}
		seen[c] = true
	}
	if !seen[correct] {
		return nil, fmt.Errorf("%w: exercise %s correct answer %q is not a candidate", ErrUnsatisfiableConfiguration, id, correct)
	}

	return &SingleChoice{
		ID:         id,
		Prompt:     prompt,
		Candidates: shuffle.Permutation(r, candidates),
		Points:     points,
		correct:    correct,
	}, nil
}

// Correct reports whether answer is the designated correct answer.
func (q *SingleChoice) Correct(answer string) bool {
	return answer == q.correct
}

// Evaluate grades a submitted answer by exact string equality.
func (q *SingleChoice) Evaluate(answer string) Outcome {
	passed := q.Correct(answer)
	out := Outcome{ExerciseID: q.ID, Passed: passed}
	if passed {
		out.Points = q.Points
	}
	return out
}

// HasCandidate reports whether answer is a member of the candidate set.
func (q *SingleChoice) HasCandidate(answer string) bool {
	return slices.Contains(q.Candidates, answer)
}
