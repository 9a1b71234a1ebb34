package exercise

import (
	"fmt"
	"math/rand"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/shuffle"
)

// NoIssuesOption is the always-present option for judging a page clean.
const NoIssuesOption = "No issues found"

// Page is one page of a reviewable document. A page carries at most one
// real issue; a clean page has an empty Issue.
type Page struct {
	ID    string
	Title string
	Issue string
}

// CorrectOption returns the option value that grades as correct for this
// page: the issue's label when one exists, the no-issues option otherwise.
// It is independent of how options are shuffled for display.
func (p Page) CorrectOption() string {
	if p.Issue != "" {
		return p.Issue
	}
	return NoIssuesOption
}

// EvaluatePage grades a chosen option value against the page's correct
// option. Each page is graded independently; the owning composite decides
// how per-page outcomes accumulate.
func EvaluatePage(p Page, option string) Outcome {
	return Outcome{
		ExerciseID: p.ID,
		Passed:     option == p.CorrectOption(),
	}
}

// Document is an ordered sequence of reviewable pages.
type Document struct {
	ID    string
	Title string
	Pages []Page
}

// Page returns the page with the given ID.
func (d *Document) Page(id string) (Page, bool) {
	for _, p := range d.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}

// PageOptions builds the three options presented for a page: the no-issues
// option, the real issue (or a second distractor on a clean page), and one
// distractor drawn from the shared pool. The pool is filtered so the real
// issue's label never doubles as a distractor. Options come back in
// shuffled presentation order.
func PageOptions(r *rand.Rand, p Page, pool []string) ([]string, error) {
	avail := make([]string, 0, len(pool))
	seen := make(map[string]bool, len(pool))
	for _, d := range pool {
		if d == "" || d == p.Issue || d == NoIssuesOption || seen[d] {
			continue
		}
		seen[d] = true
		avail = append(avail, d)
	}

	need := 2
	if p.Issue != "" {
		need = 1
	}
	if len(avail) < need {
		return nil, fmt.Errorf("%w: page %s needs %d distractors, pool has %d", ErrUnsatisfiableConfiguration, p.ID, need, len(avail))
	}

	opts := []string{NoIssuesOption}
	if p.Issue != "" {
		opts = append(opts, p.Issue)
	}
	opts = append(opts, shuffle.Permutation(r, avail)[:need]...)
	return shuffle.Permutation(r, opts), nil
}
