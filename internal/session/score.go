package session

import (
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// Score accumulates per-exercise outcomes. An outcome is immutable once
// recorded: later submissions for the same exercise never change it. The
// numeric score is derived from the outcome set, not incremented.
type Score struct {
	outcomes map[string]exercise.Outcome
	order    []string
}

// NewScore returns an empty aggregator.
func NewScore() *Score {
	return &Score{outcomes: make(map[string]exercise.Outcome)}
}

// Record stores an outcome unless one already exists for the exercise.
// It reports whether the outcome was recorded.
func (s *Score) Record(out exercise.Outcome) bool {
	if _, exists := s.outcomes[out.ExerciseID]; exists {
		return false
	}
	s.outcomes[out.ExerciseID] = out
	s.order = append(s.order, out.ExerciseID)
	return true
}

// Points returns the summed score contribution of all passing outcomes.
func (s *Score) Points() int {
	total := 0
	for _, out := range s.outcomes {
		if out.Passed {
			total += out.Points
		}
	}
	return total
}

// Outcomes returns the recorded outcomes in recording order.
func (s *Score) Outcomes() []exercise.Outcome {
	outs := make([]exercise.Outcome, 0, len(s.order))
	for _, id := range s.order {
		outs = append(outs, s.outcomes[id])
	}
	return outs
}
