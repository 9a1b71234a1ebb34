package task

import (
	"fmt"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// Audit combines the chart multi-select with a family of reviewable
// documents. It is done once the multi-select has passed and the number
// of pages currently judged correct across all documents reaches
// RequiredPages. The page count is derived from the per-page outcome set,
// never incremented, so re-selection can both gain and lose credit while
// the audit is open.
type Audit struct {
	ID            string
	RequiredPages int

	charts    *exercise.MultiSelect
	documents []exercise.Document

	pageSelections map[string]string
	pageOutcomes   map[string]exercise.Outcome
	chartsPassed   bool
	done           bool
}

// NewAudit builds the audit composite. Page IDs must be unique across all
// documents and the document set must contain at least RequiredPages
// pages, otherwise the completion predicate can never hold.
func NewAudit(id string, charts *exercise.MultiSelect, documents []exercise.Document, requiredPages int) (*Audit, error) {
	if charts == nil {
		return nil, fmt.Errorf("%w: audit %s has no chart exercise", exercise.ErrUnsatisfiableConfiguration, id)
	}
	if requiredPages <= 0 {
		return nil, fmt.Errorf("%w: audit %s requires %d pages", exercise.ErrUnsatisfiableConfiguration, id, requiredPages)
	}

	total := 0
	seen := make(map[string]bool)
	for _, d := range documents {
		for _, p := range d.Pages {
			if seen[p.ID] {
				return nil, fmt.Errorf("%w: audit %s has duplicate page %s", exercise.ErrUnsatisfiableConfiguration, id, p.ID)
			}
			seen[p.ID] = true
			total++
		}
	}
	if total < requiredPages {
		return nil, fmt.Errorf("%w: audit %s has %d pages, needs at least %d", exercise.ErrUnsatisfiableConfiguration, id, total, requiredPages)
	}

	return &Audit{
		ID:             id,
		RequiredPages:  requiredPages,
		charts:         charts,
		documents:      documents,
		pageSelections: make(map[string]string),
		pageOutcomes:   make(map[string]exercise.Outcome),
	}, nil
}

// Charts returns the chart multi-select exercise.
func (a *Audit) Charts() *exercise.MultiSelect { return a.charts }

// Documents returns the document set in authored order.
func (a *Audit) Documents() []exercise.Document { return a.documents }

// Done reports whether the completion predicate has been satisfied.
func (a *Audit) Done() bool { return a.done }

// ChartsPassed reports whether the multi-select portion has passed.
func (a *Audit) ChartsPassed() bool { return a.chartsPassed }

// CorrectPages returns the number of pages whose current selection grades
// correct, recomputed from the per-page outcome set.
func (a *Audit) CorrectPages() int {
	n := 0
	for _, out := range a.pageOutcomes {
		if out.Passed {
			n++
		}
	}
	return n
}

// PageSelection returns the learner's current option choice for a page.
func (a *Audit) PageSelection(pageID string) (string, bool) {
	s, ok := a.pageSelections[pageID]
	return s, ok
}

// ToggleChart flips a chart's selection and returns the updated set. Once
// the audit is done the selection is frozen.
func (a *Audit) ToggleChart(itemID string) ([]string, error) {
	if a.done {
		return a.charts.Selected(), nil
	}
	return a.charts.Toggle(itemID)
}

// SubmitCharts grades the current chart selection. Passing is one-way: a
// later submission can never revoke it, and after completion the call is
// a no-op.
func (a *Audit) SubmitCharts() (exercise.Outcome, error) {
	if a.done {
		return exercise.Outcome{ExerciseID: a.charts.ID, Passed: true}, nil
	}

	out, err := a.charts.Evaluate()
	if err != nil {
		return exercise.Outcome{}, err
	}
	if out.Passed {
		a.chartsPassed = true
		a.refresh()
	}
	return out, nil
}

// SelectPageOption records the learner's choice for a document page and
// grades it, replacing any previous result for that page.
func (a *Audit) SelectPageOption(docID, pageID, option string) (exercise.Outcome, error) {
	var page exercise.Page
	found := false
	for i := range a.documents {
		if a.documents[i].ID != docID {
			continue
		}
		if p, ok := a.documents[i].Page(pageID); ok {
			page = p
			found = true
		}
		break
	}
	if !found {
		return exercise.Outcome{}, fmt.Errorf("audit %s: unknown page %s/%s", a.ID, docID, pageID)
	}

	if a.done {
		return a.pageOutcomes[pageID], nil
	}

	out := exercise.EvaluatePage(page, option)
	a.pageSelections[pageID] = option
	a.pageOutcomes[pageID] = out
	a.refresh()
	return out, nil
}

// refresh latches done once the predicate holds.
func (a *Audit) refresh() {
	if a.chartsPassed && a.CorrectPages() >= a.RequiredPages {
		a.done = true
	}
}
