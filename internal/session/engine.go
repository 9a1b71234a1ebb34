package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/content"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// ErrEmptyName rejects a blank certificate name. Recoverable; the caller
// re-prompts.
var ErrEmptyName = errors.New("certificate name must not be empty")

// Recorder receives session events for the attempt log. Recording is an
// audit trail only: failures never affect gating, so the engine discards
// recorder errors.
type Recorder interface {
	SessionStarted(sessionID, packVersion string) error
	ExerciseResult(sessionID string, stage string, out exercise.Outcome) error
	StageCompleted(sessionID string, stage string, score int) error
}

// Engine drives one practicum run. All calls are dispatched one at a time
// from the UI loop; nothing here blocks or runs concurrently.
type Engine struct {
	sessionID string
	cs        *content.Session
	score     *Score

	stage           Stage
	quizIndex       int
	quizChoicesDone bool
	name            string

	onComplete CompleteFunc
	rec        Recorder
}

// New builds an engine over an instantiated content session. onComplete
// may be nil; rec may be nil when no attempt log is available.
func New(sessionID string, cs *content.Session, onComplete CompleteFunc, rec Recorder) *Engine {
	e := &Engine{
		sessionID:  sessionID,
		cs:         cs,
		score:      NewScore(),
		stage:      StageQuiz,
		onComplete: onComplete,
		rec:        rec,
	}
	if rec != nil {
		_ = rec.SessionStarted(sessionID, cs.PackVersion)
	}
	return e
}

// SessionID returns the run's identifier.
func (e *Engine) SessionID() string { return e.sessionID }

// Stage returns the current stage.
func (e *Engine) Stage() Stage { return e.stage }

// Score returns the current aggregated score.
func (e *Engine) Score() int { return e.score.Points() }

// Content exposes the instantiated content for rendering.
func (e *Engine) Content() *content.Session { return e.cs }

// Name returns the certificate name captured on completion.
func (e *Engine) Name() string { return e.name }

// ActiveQuizQuestion returns the quiz question awaiting an answer, or
// false once all choice questions are answered.
func (e *Engine) ActiveQuizQuestion() (*exercise.SingleChoice, bool) {
	if e.stage != StageQuiz || e.quizChoicesDone {
		return nil, false
	}
	return e.cs.QuizQuestions[e.quizIndex], true
}

// QuizProgress returns answered and total counts for the choice portion.
func (e *Engine) QuizProgress() (answered, total int) {
	return e.quizIndex, len(e.cs.QuizQuestions)
}

// SubmitSingleChoice grades an answer for the identified exercise. During
// the quiz each question takes exactly one submission and the session
// moves on regardless of correctness; in the room the ID is dispatched to
// the phone call or the binder. Submitting against anything else is an
// eligibility violation.
func (e *Engine) SubmitSingleChoice(exerciseID, answer string) (exercise.Outcome, error) {
	switch e.stage {
	case StageQuiz:
		return e.submitQuizChoice(exerciseID, answer)
	case StageRoom:
		return e.submitRoomChoice(exerciseID, answer)
	}
	return exercise.Outcome{}, fmt.Errorf("%w: single-choice %s submitted during %s stage", exercise.ErrIneligibleExercise, exerciseID, e.stage)
}

func (e *Engine) submitQuizChoice(exerciseID, answer string) (exercise.Outcome, error) {
	q, ok := e.ActiveQuizQuestion()
	if !ok || q.ID != exerciseID {
		return exercise.Outcome{}, fmt.Errorf("%w: quiz question %s is not active", exercise.ErrIneligibleExercise, exerciseID)
	}

	out := q.Evaluate(answer)
	e.score.Record(out)
	e.record(out)
	e.quizIndex++
	if e.quizIndex == len(e.cs.QuizQuestions) {
		e.quizChoicesDone = true
	}
	return out, nil
}

func (e *Engine) submitRoomChoice(exerciseID, answer string) (exercise.Outcome, error) {
	room := e.cs.Room
	if step, ok := room.Call.Active(); ok {
		if step.ID != exerciseID {
			return exercise.Outcome{}, fmt.Errorf("%w: call step %s is not active", exercise.ErrIneligibleExercise, exerciseID)
		}
		out, err := room.SubmitCall(answer)
		e.record(out)
		e.afterRoomMutation()
		return out, err
	}

	out, err := room.SubmitBinder(exerciseID, answer)
	if err == nil {
		e.record(out)
	}
	e.afterRoomMutation()
	return out, err
}

// MoveOrderingItem applies an adjacent swap to the quiz ordering task and
// returns the updated working sequence. The ordering task becomes
// eligible only after every choice question is answered.
func (e *Engine) MoveOrderingItem(taskID string, index int, dir exercise.MoveDirection) ([]string, error) {
	if err := e.requireOrdering(taskID); err != nil {
		return nil, err
	}
	return e.cs.QuizOrdering.Move(index, dir)
}

// SubmitOrdering grades the current working sequence. A failing outcome
// is not an error; the learner keeps rearranging. A passing outcome
// completes the quiz stage.
func (e *Engine) SubmitOrdering(taskID string) (exercise.Outcome, error) {
	if err := e.requireOrdering(taskID); err != nil {
		return exercise.Outcome{}, err
	}

	out := e.cs.QuizOrdering.Evaluate()
	e.record(out)
	if out.Passed {
		e.score.Record(out)
		e.completeStage(StageQuiz)
	}
	return out, nil
}

func (e *Engine) requireOrdering(taskID string) error {
	if e.stage != StageQuiz || !e.quizChoicesDone {
		return fmt.Errorf("%w: ordering task %s before the quiz questions are answered", exercise.ErrIneligibleExercise, taskID)
	}
	if taskID != e.cs.QuizOrdering.ID {
		return fmt.Errorf("%w: unknown ordering task %s", exercise.ErrIneligibleExercise, taskID)
	}
	return nil
}

// ToggleMultiSelect flips one chart in the audit selection.
func (e *Engine) ToggleMultiSelect(taskID, itemID string) ([]string, error) {
	if err := e.requireAudit(taskID); err != nil {
		return nil, err
	}
	return e.cs.Room.ToggleChart(itemID)
}

// SubmitMultiSelect grades the chart selection. A selection of the wrong
// size surfaces exercise.ErrInvalidSelectionCount.
func (e *Engine) SubmitMultiSelect(taskID string) (exercise.Outcome, error) {
	if err := e.requireAudit(taskID); err != nil {
		return exercise.Outcome{}, err
	}

	out, err := e.cs.Room.SubmitCharts()
	if err == nil {
		e.record(out)
	}
	e.afterRoomMutation()
	return out, err
}

func (e *Engine) requireAudit(taskID string) error {
	if e.stage != StageRoom {
		return fmt.Errorf("%w: chart audit during %s stage", exercise.ErrIneligibleExercise, e.stage)
	}
	if taskID != e.cs.Room.Audit.Charts().ID {
		return fmt.Errorf("%w: unknown multi-select task %s", exercise.ErrIneligibleExercise, taskID)
	}
	return nil
}

// SelectDocumentPageOption records a page judgment, replacing any prior
// result for that page.
func (e *Engine) SelectDocumentPageOption(docID, pageID, option string) (exercise.Outcome, error) {
	if e.stage != StageRoom {
		return exercise.Outcome{}, fmt.Errorf("%w: page %s during %s stage", exercise.ErrIneligibleExercise, pageID, e.stage)
	}

	out, err := e.cs.Room.SelectPageOption(docID, pageID, option)
	if err == nil {
		e.record(out)
	}
	e.afterRoomMutation()
	return out, err
}

// SubmitCertificateName captures the learner's name and finishes the
// practicum. Blank names are rejected.
func (e *Engine) SubmitCertificateName(name string) error {
	if e.stage != StageCertificate {
		return fmt.Errorf("%w: certificate submitted during %s stage", exercise.ErrIneligibleExercise, e.stage)
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}

	e.name = trimmed
	e.completeStage(StageCertificate)
	return nil
}

// afterRoomMutation advances to the certificate stage once the room gate
// closes.
func (e *Engine) afterRoomMutation() {
	if e.stage == StageRoom && e.cs.Room.Done() {
		e.completeStage(StageRoom)
	}
}

// completeStage emits the completion event and advances exactly one
// stage. There is no backward path and no skipping.
func (e *Engine) completeStage(s Stage) {
	if s != e.stage || s == StageDone {
		return
	}

	e.stage = s + 1
	if e.rec != nil {
		_ = e.rec.StageCompleted(e.sessionID, s.String(), e.score.Points())
	}
	if e.onComplete != nil {
		e.onComplete(StageComplete{Stage: s, Score: e.score.Points(), Name: e.name})
	}
}

func (e *Engine) record(out exercise.Outcome) {
	if e.rec != nil {
		_ = e.rec.ExerciseResult(e.sessionID, e.stage.String(), out)
	}
}
