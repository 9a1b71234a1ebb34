package task

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

func mustChoice(t *testing.T, id, correct string, wrong ...string) *exercise.SingleChoice {
	t.Helper()
	candidates := append([]string{correct}, wrong...)
	q, err := exercise.NewSingleChoice(testRand(), id, "prompt "+id, candidates, correct, 0)
	require.NoError(t, err)
	return q
}

func testCall(t *testing.T) *Sequential {
	t.Helper()
	s, err := NewSequential("phone-call", []*exercise.SingleChoice{
		mustChoice(t, "call-1", "Good morning, Family Practice, how may I help you?", "Yeah?", "Hold please."),
		mustChoice(t, "call-2", "May I have your date of birth to pull your chart?", "What do you want?", "Call back later."),
		mustChoice(t, "call-3", "You're all set for Tuesday at 2pm. Anything else?", "Bye.", "I guess that works."),
	})
	require.NoError(t, err)
	return s
}

func testBinder(t *testing.T) *Binder {
	t.Helper()
	b, err := NewBinder("coding-binder", []*exercise.SingleChoice{
		mustChoice(t, "case-1", "99213", "99205", "90471"),
		mustChoice(t, "case-2", "J01.90", "J45.909", "E11.9"),
		mustChoice(t, "case-3", "99395", "99213", "99203"),
		mustChoice(t, "case-4", "S93.401A", "M54.5", "W19.XXXA"),
	})
	require.NoError(t, err)
	return b
}

func testCharts(t *testing.T) *exercise.MultiSelect {
	t.Helper()
	items := make([]exercise.MultiSelectItem, 10)
	for i := range items {
		items[i] = exercise.MultiSelectItem{
			ID:    string(rune('a' + i)),
			Label: "Chart " + string(rune('A'+i)),
		}
	}
	items[1].Defective = true
	items[6].Defective = true
	m, err := exercise.NewMultiSelect(testRand(), "charts", "Pull the two charts with errors", items, 2)
	require.NoError(t, err)
	return m
}

func testDocuments() []exercise.Document {
	return []exercise.Document{
		{
			ID:    "intake",
			Title: "Intake packet",
			Pages: []exercise.Page{
				{ID: "intake-1", Issue: "Missing provider signature"},
				{ID: "intake-2"},
			},
		},
		{
			ID:    "referral",
			Title: "Referral letter",
			Pages: []exercise.Page{
				{ID: "referral-1", Issue: "Wrong date of birth"},
				{ID: "referral-2"},
			},
		},
	}
}

func testAudit(t *testing.T) *Audit {
	t.Helper()
	a, err := NewAudit("chart-audit", testCharts(t), testDocuments(), 3)
	require.NoError(t, err)
	return a
}

// finishCall answers every phone-call step correctly.
func finishCall(t *testing.T, s *Sequential) {
	t.Helper()
	answers := []string{
		"Good morning, Family Practice, how may I help you?",
		"May I have your date of birth to pull your chart?",
		"You're all set for Tuesday at 2pm. Anything else?",
	}
	for _, a := range answers {
		_, err := s.Submit(a)
		require.NoError(t, err)
	}
	require.True(t, s.Done())
}
