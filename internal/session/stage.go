// Package session owns the practicum's top-level state: the current
// stage, the aggregated score, and the engine facade the UI layer calls.
// Transitions are strictly forward; per-stage state is discarded on exit
// except the score, which threads forward immutably.
package session

// Stage is a top-level phase of the practicum.
type Stage int

const (
	StageQuiz Stage = iota
	StageRoom
	StageCertificate
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageQuiz:
		return "quiz"
	case StageRoom:
		return "room"
	case StageCertificate:
		return "certificate"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// StageComplete is the payload delivered to the UI layer when a stage
// finishes: the quiz score for Quiz, nothing extra for Room, the captured
// name for Certificate.
type StageComplete struct {
	Stage Stage
	Score int
	Name  string
}

// CompleteFunc receives stage-completion events.
type CompleteFunc func(StageComplete)
