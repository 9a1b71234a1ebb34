// Package task groups exercises into composite tasks, each with its own
// completion rule. A composite is open until its predicate holds; the
// transition to done is one-way and a done composite ignores further
// mutation for the rest of the session.
package task

import (
	"fmt"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// Sequential is an ordered list of single-choice exercises with exactly
// one active at a time — the phone-call dialog. A wrong answer leaves the
// active step unchanged and signals a retry; a correct answer advances.
type Sequential struct {
	ID    string
	steps []*exercise.SingleChoice

	active int
	done   bool
}

// NewSequential builds a sequential composite over the given steps.
func NewSequential(id string, steps []*exercise.SingleChoice) (*Sequential, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: sequential task %s has no steps", exercise.ErrUnsatisfiableConfiguration, id)
	}
	return &Sequential{ID: id, steps: steps}, nil
}

// Active returns the currently active step, or false when the composite
// is done.
func (s *Sequential) Active() (*exercise.SingleChoice, bool) {
	if s.done {
		return nil, false
	}
	return s.steps[s.active], true
}

// StepIndex returns the zero-based index of the active step.
func (s *Sequential) StepIndex() int { return s.active }

// Len returns the number of steps.
func (s *Sequential) Len() int { return len(s.steps) }

// Done reports whether every step has been answered correctly.
func (s *Sequential) Done() bool { return s.done }

// Submit grades an answer against the active step. A wrong answer returns
// the failing outcome together with exercise.ErrRetryRequired; the active
// step does not advance and any prior selection is discarded by the
// caller. Submissions after completion are no-ops.
func (s *Sequential) Submit(answer string) (exercise.Outcome, error) {
	if s.done {
		last := s.steps[len(s.steps)-1]
		return exercise.Outcome{ExerciseID: last.ID, Passed: true}, nil
	}

	out := s.steps[s.active].Evaluate(answer)
	if !out.Passed {
		return out, exercise.ErrRetryRequired
	}

	s.active++
	if s.active == len(s.steps) {
		s.done = true
	}
	return out, nil
}
