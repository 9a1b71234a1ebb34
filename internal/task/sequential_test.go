package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

func TestSequentialWrongAnswerSignalsRetry(t *testing.T) {
	s := testCall(t)

	out, err := s.Submit("Yeah?")
	assert.ErrorIs(t, err, exercise.ErrRetryRequired)
	assert.False(t, out.Passed)
	assert.Equal(t, 0, s.StepIndex(), "wrong answer must not advance")
	assert.False(t, s.Done())

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "call-1", active.ID, "active step unchanged after retry")
}

func TestSequentialAdvancesOnCorrect(t *testing.T) {
	s := testCall(t)

	out, err := s.Submit("Good morning, Family Practice, how may I help you?")
	require.NoError(t, err)
	assert.True(t, out.Passed)
	assert.Equal(t, 1, s.StepIndex())

	// A retry on step two, then recovery.
	_, err = s.Submit("Call back later.")
	assert.ErrorIs(t, err, exercise.ErrRetryRequired)

	finishFrom := []string{
		"May I have your date of birth to pull your chart?",
		"You're all set for Tuesday at 2pm. Anything else?",
	}
	for _, a := range finishFrom {
		_, err := s.Submit(a)
		require.NoError(t, err)
	}
	assert.True(t, s.Done())

	_, ok := s.Active()
	assert.False(t, ok, "no active step after completion")
}

func TestSequentialDoneIsImmutable(t *testing.T) {
	s := testCall(t)
	finishCall(t, s)

	out, err := s.Submit("anything at all")
	require.NoError(t, err)
	assert.True(t, out.Passed)
	assert.True(t, s.Done())
}

func TestSequentialRequiresSteps(t *testing.T) {
	_, err := NewSequential("empty", nil)
	assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)
}
