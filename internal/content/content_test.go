package content

import (
	"encoding/json"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

func TestEmbeddedPackLoads(t *testing.T) {
	pack, err := Load()
	require.NoError(t, err)

	assert.Len(t, pack.Quiz.Questions, 4)
	assert.Len(t, pack.Quiz.Ordering.Steps, 5)
	assert.Len(t, pack.PhoneCall.Steps, 3)
	assert.Len(t, pack.Binder.Cases, 4)
	assert.Len(t, pack.Audit.Charts.Universe, 10)
	assert.Equal(t, 3, pack.Audit.RequiredPages)

	defective := 0
	for _, c := range pack.Audit.Charts.Universe {
		if c.Defective {
			defective++
		}
	}
	assert.Equal(t, 2, defective, "the universe must hold exactly two defective charts")
}

func TestParseRejectsMalformedPacks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing quiz", func(m map[string]any) { delete(m, "quiz") }},
		{"empty version", func(m map[string]any) { m["version"] = "" }},
		{"one-step ordering", func(m map[string]any) {
			quiz := m["quiz"].(map[string]any)
			ordering := quiz["ordering"].(map[string]any)
			ordering["steps"] = []any{"only step"}
		}},
		{"unknown field", func(m map[string]any) { m["surprise"] = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m map[string]any
			require.NoError(t, json.Unmarshal(packJSON, &m))
			tt.mutate(m)
			raw, err := json.Marshal(m)
			require.NoError(t, err)

			_, err = Parse(raw)
			assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)
		})
	}

	_, err := Parse([]byte("not json"))
	assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)
}

func TestParseRejectsOldOrInvalidVersions(t *testing.T) {
	for _, version := range []string{"0.9.0", "banana"} {
		var m map[string]any
		require.NoError(t, json.Unmarshal(packJSON, &m))
		m["version"] = version
		raw, _ := json.Marshal(m)

		_, err := Parse(raw)
		assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration, "version %q", version)
	}
}

func TestNewSessionInstantiatesEverything(t *testing.T) {
	pack, err := Load()
	require.NoError(t, err)

	s, err := NewSession(rand.New(rand.NewSource(3)), pack)
	require.NoError(t, err)

	assert.Len(t, s.QuizQuestions, 4)
	for _, q := range s.QuizQuestions {
		assert.Equal(t, QuizQuestionPoints, q.Points)
		assert.Len(t, q.Candidates, 4)
	}
	require.NotNil(t, s.QuizOrdering)
	require.NotNil(t, s.Room)
	assert.Equal(t, 3, s.Room.Call.Len())
	assert.Len(t, s.Room.Binder.Cases(), 4)
	assert.Len(t, s.Room.Audit.Charts().Items, 10)

	// Every page has exactly three presented options including its
	// correct one.
	for _, doc := range s.Room.Audit.Documents() {
		for _, p := range doc.Pages {
			opts, ok := s.PageOptions(p.ID)
			require.True(t, ok, "page %s has no options", p.ID)
			require.Len(t, opts, 3)
			assert.Contains(t, opts, exercise.NoIssuesOption)
			assert.Contains(t, opts, p.CorrectOption())
		}
	}
}

func TestNewSessionOrderingNeverStartsSolved(t *testing.T) {
	pack, err := Load()
	require.NoError(t, err)

	r := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		s, err := NewSession(r, pack)
		require.NoError(t, err)
		if slices.Equal(s.QuizOrdering.Working(), pack.Quiz.Ordering.Steps) {
			t.Fatalf("trial %d: ordering task presented already solved", i)
		}
	}
}
