package exercise

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func TestSingleChoiceEvaluate(t *testing.T) {
	candidates := []string{
		"Ask for the patient's date of birth",
		"Put the caller on hold indefinitely",
		"Guess which patient is calling",
		"Hang up and wait for a call back",
	}
	q, err := NewSingleChoice(testRand(), "q1", "A caller asks about a bill. What do you do first?", candidates, candidates[0], 1)
	if err != nil {
		t.Fatalf("NewSingleChoice: %v", err)
	}

	out := q.Evaluate(candidates[0])
	if !out.Passed || out.Points != 1 || out.ExerciseID != "q1" {
		t.Errorf("correct answer: got %+v", out)
	}

	for _, wrong := range candidates[1:] {
		out := q.Evaluate(wrong)
		if out.Passed {
			t.Errorf("Evaluate(%q) passed, want fail", wrong)
		}
		if out.Points != 0 {
			t.Errorf("Evaluate(%q) awarded %d points on a fail", wrong, out.Points)
		}
	}
}

func TestSingleChoiceShufflesCandidates(t *testing.T) {
	candidates := []string{"a", "b", "c", "d", "e", "f"}
	q, err := NewSingleChoice(testRand(), "q", "p", candidates, "a", 0)
	if err != nil {
		t.Fatalf("NewSingleChoice: %v", err)
	}

	sorted := slices.Clone(q.Candidates)
	slices.Sort(sorted)
	if !slices.Equal(sorted, candidates) {
		t.Errorf("candidate multiset changed: %v", q.Candidates)
	}
	if !q.HasCandidate("a") {
		t.Error("correct answer missing from shuffled candidates")
	}
}

func TestSingleChoiceConstructionErrors(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		correct    string
	}{
		{"empty candidates", nil, "x"},
		{"correct not a candidate", []string{"a", "b"}, "c"},
		{"duplicate candidate", []string{"a", "a", "b"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSingleChoice(testRand(), "q", "p", tt.candidates, tt.correct, 0)
			if !errors.Is(err, ErrUnsatisfiableConfiguration) {
				t.Errorf("got %v, want ErrUnsatisfiableConfiguration", err)
			}
		})
	}
}
