package exercise

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var checkInSteps = []string{
	"Greet the patient",
	"Verify insurance",
	"Collect the copay",
	"Update the chart",
	"Room the patient",
}

func newCheckInOrdering(t *testing.T, r *rand.Rand) *Ordering {
	t.Helper()
	o, err := NewOrdering(r, "checkin", "Put the check-in steps in order", checkInSteps)
	if err != nil {
		t.Fatalf("NewOrdering: %v", err)
	}
	return o
}

func TestOrderingInitialWorkingDiffersFromCorrect(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		o := newCheckInOrdering(t, r)
		if slices.Equal(o.Working(), checkInSteps) {
			t.Fatalf("trial %d: initial working sequence equals the correct order", i)
		}
	}
}

func TestOrderingEvaluate(t *testing.T) {
	o := newCheckInOrdering(t, testRand())

	if o.Evaluate().Passed {
		t.Fatal("shuffled initial sequence graded as correct")
	}

	// Selection-sort the working sequence into place with adjacent swaps.
	for target := 0; target < len(checkInSteps); target++ {
		idx := slices.Index(o.Working(), checkInSteps[target])
		for idx > target {
			if _, err := o.Move(idx, MoveUp); err != nil {
				t.Fatalf("Move: %v", err)
			}
			idx--
		}
	}

	if !slices.Equal(o.Working(), checkInSteps) {
		t.Fatalf("adjacent swaps failed to sort: %v", o.Working())
	}
	out := o.Evaluate()
	if !out.Passed || out.ExerciseID != "checkin" {
		t.Errorf("solved sequence: got %+v", out)
	}
}

func TestOrderingSingleTranspositionFails(t *testing.T) {
	for i := 0; i < len(checkInSteps)-1; i++ {
		o := newCheckInOrdering(t, testRand())

		// Force the working sequence to the correct order, then make
		// exactly one transposition.
		for target := 0; target < len(checkInSteps); target++ {
			idx := slices.Index(o.Working(), checkInSteps[target])
			for idx > target {
				o.Move(idx, MoveUp)
				idx--
			}
		}
		o.Move(i, MoveDown)

		if o.Evaluate().Passed {
			t.Errorf("transposition at %d graded as correct", i)
		}
	}
}

func TestOrderingMoveBounds(t *testing.T) {
	o := newCheckInOrdering(t, testRand())
	before := o.Working()

	// Boundary moves are no-ops.
	after, err := o.Move(0, MoveUp)
	if err != nil {
		t.Fatalf("Move(0, up): %v", err)
	}
	if !slices.Equal(after, before) {
		t.Errorf("Move(0, up) changed the sequence")
	}
	after, err = o.Move(o.Len()-1, MoveDown)
	if err != nil {
		t.Fatalf("Move(last, down): %v", err)
	}
	if !slices.Equal(after, before) {
		t.Errorf("Move(last, down) changed the sequence")
	}

	// Out-of-range indices are caller bugs.
	if _, err := o.Move(-1, MoveUp); err == nil {
		t.Error("Move(-1) did not error")
	}
	if _, err := o.Move(o.Len(), MoveDown); err == nil {
		t.Error("Move(len) did not error")
	}
}

func TestOrderingConstructionErrors(t *testing.T) {
	if _, err := NewOrdering(testRand(), "o", "p", nil); !errors.Is(err, ErrUnsatisfiableConfiguration) {
		t.Errorf("empty steps: got %v", err)
	}
	if _, err := NewOrdering(testRand(), "o", "p", []string{"a", "a"}); !errors.Is(err, ErrUnsatisfiableConfiguration) {
		t.Errorf("duplicate steps: got %v", err)
	}
}
