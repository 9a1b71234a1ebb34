package content

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/task"
)

// QuizQuestionPoints is the score contribution of each quiz choice
// question. The ordering task gates quiz completion but scores nothing.
const QuizQuestionPoints = 1

// Session is one randomized instantiation of the pack: candidate orders,
// the ordering task's starting sequence, the chart universe order, and
// each page's presented options are drawn fresh, while grading data stays
// exactly as authored.
type Session struct {
	PackVersion string

	QuizQuestions []*exercise.SingleChoice
	QuizOrdering  *exercise.Ordering
	Room          *task.Room

	pageOptions map[string][]string
}

// NewSession instantiates the pack for a single run. Construction errors
// surface ErrUnsatisfiableConfiguration and must abort startup.
func NewSession(r *rand.Rand, pack *Pack) (*Session, error) {
	s := &Session{
		PackVersion: pack.Version,
		pageOptions: make(map[string][]string),
	}

	for _, q := range pack.Quiz.Questions {
		sc, err := buildChoice(r, q, QuizQuestionPoints)
		if err != nil {
			return nil, err
		}
		s.QuizQuestions = append(s.QuizQuestions, sc)
	}

	ord, err := exercise.NewOrdering(r, pack.Quiz.Ordering.ID, pack.Quiz.Ordering.Prompt, pack.Quiz.Ordering.Steps)
	if err != nil {
		return nil, err
	}
	s.QuizOrdering = ord

	call, err := buildSequential(r, pack.PhoneCall)
	if err != nil {
		return nil, err
	}
	binder, err := buildBinder(r, pack.Binder)
	if err != nil {
		return nil, err
	}
	audit, err := s.buildAudit(r, pack.Audit)
	if err != nil {
		return nil, err
	}

	room, err := task.NewRoom(call, binder, audit)
	if err != nil {
		return nil, err
	}
	s.Room = room
	return s, nil
}

// PageOptions returns the options presented for a document page, drawn
// once at session start so re-rendering never reshuffles them.
func (s *Session) PageOptions(pageID string) ([]string, bool) {
	opts, ok := s.pageOptions[pageID]
	return slices.Clone(opts), ok
}

func buildChoice(r *rand.Rand, spec ChoiceSpec, points int) (*exercise.SingleChoice, error) {
	candidates := append(slices.Clone(spec.Distractors), spec.Correct)
	return exercise.NewSingleChoice(r, spec.ID, spec.Prompt, candidates, spec.Correct, points)
}

func buildSequential(r *rand.Rand, spec PhoneCallSpec) (*task.Sequential, error) {
	steps := make([]*exercise.SingleChoice, 0, len(spec.Steps))
	for _, st := range spec.Steps {
		sc, err := buildChoice(r, st, 0)
		if err != nil {
			return nil, err
		}
		steps = append(steps, sc)
	}
	return task.NewSequential(spec.ID, steps)
}

func buildBinder(r *rand.Rand, spec BinderSpec) (*task.Binder, error) {
	cases := make([]*exercise.SingleChoice, 0, len(spec.Cases))
	for _, c := range spec.Cases {
		sc, err := buildChoice(r, c, 0)
		if err != nil {
			return nil, err
		}
		cases = append(cases, sc)
	}
	return task.NewBinder(spec.ID, cases)
}

func (s *Session) buildAudit(r *rand.Rand, spec AuditSpec) (*task.Audit, error) {
	universe := make([]exercise.MultiSelectItem, 0, len(spec.Charts.Universe))
	for _, c := range spec.Charts.Universe {
		universe = append(universe, exercise.MultiSelectItem{
			ID:        c.ID,
			Label:     c.Label,
			Defective: c.Defective,
		})
	}
	charts, err := exercise.NewMultiSelect(r, spec.Charts.ID, spec.Charts.Prompt, universe, 2)
	if err != nil {
		return nil, err
	}

	docs := make([]exercise.Document, 0, len(spec.Documents))
	for _, d := range spec.Documents {
		doc := exercise.Document{ID: d.ID, Title: d.Title}
		for _, p := range d.Pages {
			page := exercise.Page{ID: p.ID, Title: p.Title, Issue: p.Issue}
			opts, err := exercise.PageOptions(r, page, spec.DistractorPool)
			if err != nil {
				return nil, fmt.Errorf("document %s: %w", d.ID, err)
			}
			s.pageOptions[page.ID] = opts
			doc.Pages = append(doc.Pages, page)
		}
		docs = append(docs, doc)
	}

	return task.NewAudit(spec.ID, charts, docs, spec.RequiredPages)
}
