package task

import (
	"fmt"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// Binder is an unordered set of single-choice exercises, all answerable in
// any order — the coding binder. Each case retains its last submission;
// re-submission overwrites. The composite is done once every case's last
// submission is correct.
type Binder struct {
	ID    string
	cases []*exercise.SingleChoice

	answers  map[string]string
	outcomes map[string]exercise.Outcome
	done     bool
}

// NewBinder builds a binder composite over the given cases.
func NewBinder(id string, cases []*exercise.SingleChoice) (*Binder, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: binder task %s has no cases", exercise.ErrUnsatisfiableConfiguration, id)
	}
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: binder task %s has duplicate case %s", exercise.ErrUnsatisfiableConfiguration, id, c.ID)
		}
		seen[c.ID] = true
	}
	return &Binder{
		ID:       id,
		cases:    cases,
		answers:  make(map[string]string),
		outcomes: make(map[string]exercise.Outcome),
	}, nil
}

// Cases returns the binder's cases in authored order.
func (b *Binder) Cases() []*exercise.SingleChoice { return b.cases }

// Done reports whether every case's last submission is correct.
func (b *Binder) Done() bool { return b.done }

// Answer returns the last submitted answer for a case.
func (b *Binder) Answer(caseID string) (string, bool) {
	a, ok := b.answers[caseID]
	return a, ok
}

// Outcome returns the last grading result for a case.
func (b *Binder) Outcome(caseID string) (exercise.Outcome, bool) {
	o, ok := b.outcomes[caseID]
	return o, ok
}

// Submit grades an answer for the given case, overwriting any prior
// submission. Submissions after completion are no-ops that return the
// recorded outcome.
func (b *Binder) Submit(caseID, answer string) (exercise.Outcome, error) {
	var target *exercise.SingleChoice
	for _, c := range b.cases {
		if c.ID == caseID {
			target = c
			break
		}
	}
	if target == nil {
		return exercise.Outcome{}, fmt.Errorf("binder %s: unknown case %s", b.ID, caseID)
	}

	if b.done {
		return b.outcomes[caseID], nil
	}

	out := target.Evaluate(answer)
	b.answers[caseID] = answer
	b.outcomes[caseID] = out

	b.done = b.allCorrect()
	return out, nil
}

func (b *Binder) allCorrect() bool {
	for _, c := range b.cases {
		out, ok := b.outcomes[c.ID]
		if !ok || !out.Passed {
			return false
		}
	}
	return true
}
