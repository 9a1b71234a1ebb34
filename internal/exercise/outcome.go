package exercise

// Outcome records the graded result of a single submission. Outcomes are
// values; once handed to a caller they are never mutated.
type Outcome struct {
	ExerciseID string
	Passed     bool
	Points     int // score contribution when passed (0 for ungraded gates)
}
