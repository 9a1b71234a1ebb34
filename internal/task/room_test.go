package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

func testRoom(t *testing.T) *Room {
	t.Helper()
	r, err := NewRoom(testCall(t), testBinder(t), testAudit(t))
	require.NoError(t, err)
	return r
}

func TestRoomEligibilityGate(t *testing.T) {
	r := testRoom(t)

	// Binder and audit are locked until the phone call finishes.
	_, err := r.SubmitBinder("case-1", "99213")
	assert.ErrorIs(t, err, exercise.ErrIneligibleExercise)
	_, err = r.ToggleChart("a")
	assert.ErrorIs(t, err, exercise.ErrIneligibleExercise)
	_, err = r.SubmitCharts()
	assert.ErrorIs(t, err, exercise.ErrIneligibleExercise)
	_, err = r.SelectPageOption("intake", "intake-1", exercise.NoIssuesOption)
	assert.ErrorIs(t, err, exercise.ErrIneligibleExercise)

	finishCall(t, r.Call)

	_, err = r.SubmitBinder("case-1", "99213")
	assert.NoError(t, err)
}

func TestRoomBinderAndAuditInterleave(t *testing.T) {
	r := testRoom(t)
	finishCall(t, r.Call)

	// No ordering constraint between binder and audit.
	r.SubmitBinder("case-2", "J01.90")
	r.ToggleChart("b")
	r.SubmitBinder("case-1", "99213")
	r.ToggleChart("g")
	out, err := r.SubmitCharts()
	require.NoError(t, err)
	assert.True(t, out.Passed)

	r.SelectPageOption("intake", "intake-1", "Missing provider signature")
	r.SubmitBinder("case-3", "99395")
	r.SelectPageOption("intake", "intake-2", exercise.NoIssuesOption)
	r.SubmitBinder("case-4", "S93.401A")
	assert.True(t, r.Binder.Done())
	assert.False(t, r.Done(), "audit still one page short")

	r.SelectPageOption("referral", "referral-1", "Wrong date of birth")
	assert.True(t, r.Audit.Done())
	assert.True(t, r.Done())
}

func TestRoomDoneIsIdempotent(t *testing.T) {
	r := testRoom(t)
	finishCall(t, r.Call)
	for id, a := range map[string]string{
		"case-1": "99213", "case-2": "J01.90", "case-3": "99395", "case-4": "S93.401A",
	} {
		r.SubmitBinder(id, a)
	}
	r.ToggleChart("b")
	r.ToggleChart("g")
	r.SubmitCharts()
	r.SelectPageOption("intake", "intake-1", "Missing provider signature")
	r.SelectPageOption("intake", "intake-2", exercise.NoIssuesOption)
	r.SelectPageOption("referral", "referral-1", "Wrong date of birth")
	require.True(t, r.Done())

	// Repeated evaluation calls against completed exercises never change
	// the gate.
	r.SubmitCall("junk")
	r.SubmitBinder("case-1", "wrong")
	r.SubmitCharts()
	r.SelectPageOption("intake", "intake-1", exercise.NoIssuesOption)
	assert.True(t, r.Done())
}

func TestRoomRequiresAllComposites(t *testing.T) {
	_, err := NewRoom(nil, testBinder(t), testAudit(t))
	assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)
}
