package task

import (
	"fmt"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// Room gates the three office tasks. The phone call must finish first;
// after that the binder and the audit are eligible in any order, worked
// in parallel. The room is done only when all three composites are done.
type Room struct {
	Call   *Sequential
	Binder *Binder
	Audit  *Audit
}

// NewRoom assembles the room gate from its three composites.
func NewRoom(call *Sequential, binder *Binder, audit *Audit) (*Room, error) {
	if call == nil || binder == nil || audit == nil {
		return nil, fmt.Errorf("%w: room gate is missing a composite", exercise.ErrUnsatisfiableConfiguration)
	}
	return &Room{Call: call, Binder: binder, Audit: audit}, nil
}

// Done reports whether all three composites are done. Once every
// composite has latched done, nothing can revert the gate.
func (r *Room) Done() bool {
	return r.Call.Done() && r.Binder.Done() && r.Audit.Done()
}

// SubmitCall forwards an answer to the phone-call composite.
func (r *Room) SubmitCall(answer string) (exercise.Outcome, error) {
	return r.Call.Submit(answer)
}

// SubmitBinder forwards an answer to a binder case. Eligibility is a
// precondition: before the phone call finishes the binder rejects
// submissions rather than silently ignoring them.
func (r *Room) SubmitBinder(caseID, answer string) (exercise.Outcome, error) {
	if err := r.requireCallDone("binder case " + caseID); err != nil {
		return exercise.Outcome{}, err
	}
	return r.Binder.Submit(caseID, answer)
}

// ToggleChart forwards a chart toggle to the audit composite.
func (r *Room) ToggleChart(itemID string) ([]string, error) {
	if err := r.requireCallDone("chart " + itemID); err != nil {
		return nil, err
	}
	return r.Audit.ToggleChart(itemID)
}

// SubmitCharts forwards the chart submission to the audit composite.
func (r *Room) SubmitCharts() (exercise.Outcome, error) {
	if err := r.requireCallDone("chart audit"); err != nil {
		return exercise.Outcome{}, err
	}
	return r.Audit.SubmitCharts()
}

// SelectPageOption forwards a document-page judgment to the audit
// composite.
func (r *Room) SelectPageOption(docID, pageID, option string) (exercise.Outcome, error) {
	if err := r.requireCallDone("page " + pageID); err != nil {
		return exercise.Outcome{}, err
	}
	return r.Audit.SelectPageOption(docID, pageID, option)
}

func (r *Room) requireCallDone(what string) error {
	if !r.Call.Done() {
		return fmt.Errorf("%w: %s submitted before the phone call finished", exercise.ErrIneligibleExercise, what)
	}
	return nil
}
