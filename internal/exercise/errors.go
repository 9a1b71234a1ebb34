package exercise

import "errors"

// Engine error taxonomy. Wrong-answer conditions are recoverable and
// never abort the session; configuration integrity violations are fatal
// at construction time.
var (
	// ErrRetryRequired signals a wrong answer in a sequential composite.
	// The caller re-prompts; the active exercise is unchanged.
	ErrRetryRequired = errors.New("retry required")

	// ErrInvalidSelectionCount signals a submission that violates a
	// cardinality constraint. The caller blocks submission until the
	// selection is corrected.
	ErrInvalidSelectionCount = errors.New("invalid selection count")

	// ErrIneligibleExercise signals an evaluation call against an
	// exercise whose prerequisite composite is not done. This is a
	// UI-sequencing bug, not a learner mistake.
	ErrIneligibleExercise = errors.New("exercise not eligible")

	// ErrUnsatisfiableConfiguration signals content that cannot be
	// graded, e.g. a defective-chart universe without exactly the
	// required count. Construction fails fast.
	ErrUnsatisfiableConfiguration = errors.New("unsatisfiable configuration")
)
