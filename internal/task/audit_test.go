package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

func passCharts(t *testing.T, a *Audit) {
	t.Helper()
	a.ToggleChart("b")
	a.ToggleChart("g")
	out, err := a.SubmitCharts()
	require.NoError(t, err)
	require.True(t, out.Passed)
}

func TestAuditPredicateNeedsBothParts(t *testing.T) {
	a := testAudit(t)

	// Three correct pages without the charts: still open.
	a.SelectPageOption("intake", "intake-1", "Missing provider signature")
	a.SelectPageOption("intake", "intake-2", exercise.NoIssuesOption)
	a.SelectPageOption("referral", "referral-1", "Wrong date of birth")
	assert.Equal(t, 3, a.CorrectPages())
	assert.False(t, a.Done())

	passCharts(t, a)
	assert.True(t, a.Done())
}

func TestAuditChartsAloneInsufficient(t *testing.T) {
	a := testAudit(t)
	passCharts(t, a)
	assert.True(t, a.ChartsPassed())
	assert.False(t, a.Done())
}

func TestAuditReselectionRevokesAndRestoresCredit(t *testing.T) {
	a := testAudit(t)
	passCharts(t, a)

	a.SelectPageOption("intake", "intake-1", "Missing provider signature")
	a.SelectPageOption("intake", "intake-2", exercise.NoIssuesOption)
	assert.Equal(t, 2, a.CorrectPages())

	// Changing a correct page to a wrong option loses its credit.
	out, err := a.SelectPageOption("intake", "intake-2", "Wrong date of birth")
	require.NoError(t, err)
	assert.False(t, out.Passed)
	assert.Equal(t, 1, a.CorrectPages())
	assert.False(t, a.Done())

	// Restore it, then earn the third page.
	a.SelectPageOption("intake", "intake-2", exercise.NoIssuesOption)
	assert.Equal(t, 2, a.CorrectPages())
	a.SelectPageOption("referral", "referral-1", "Wrong date of birth")
	assert.Equal(t, 3, a.CorrectPages())
	assert.True(t, a.Done())
}

func TestAuditOpeningMoreDocumentsKeepsCredit(t *testing.T) {
	a := testAudit(t)
	a.SelectPageOption("intake", "intake-1", "Missing provider signature")
	require.Equal(t, 1, a.CorrectPages())

	// Working a second document never resets earned credit.
	a.SelectPageOption("referral", "referral-2", exercise.NoIssuesOption)
	assert.Equal(t, 2, a.CorrectPages())
}

func TestAuditDoneIsLatched(t *testing.T) {
	a := testAudit(t)
	passCharts(t, a)
	a.SelectPageOption("intake", "intake-1", "Missing provider signature")
	a.SelectPageOption("intake", "intake-2", exercise.NoIssuesOption)
	a.SelectPageOption("referral", "referral-1", "Wrong date of birth")
	require.True(t, a.Done())

	// Post-completion mutation attempts are frozen out.
	out, err := a.SelectPageOption("intake", "intake-1", "Wrong date of birth")
	require.NoError(t, err)
	assert.True(t, out.Passed, "recorded outcome returned, not regraded")
	assert.True(t, a.Done())
	assert.Equal(t, 3, a.CorrectPages())

	sel, err := a.ToggleChart("a")
	require.NoError(t, err)
	assert.NotContains(t, sel, "a", "chart selection frozen after completion")
}

func TestAuditUnknownPage(t *testing.T) {
	a := testAudit(t)
	_, err := a.SelectPageOption("intake", "nope", exercise.NoIssuesOption)
	assert.Error(t, err)
	_, err = a.SelectPageOption("nope", "intake-1", exercise.NoIssuesOption)
	assert.Error(t, err)
}

func TestAuditConstructionErrors(t *testing.T) {
	_, err := NewAudit("a", nil, testDocuments(), 3)
	assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)

	// Not enough pages to ever satisfy the predicate.
	short := []exercise.Document{{ID: "d", Pages: []exercise.Page{{ID: "p1"}}}}
	_, err = NewAudit("a", testCharts(t), short, 3)
	assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)

	// Duplicate page IDs across documents.
	dup := testDocuments()
	dup[1].Pages[0].ID = "intake-1"
	_, err = NewAudit("a", testCharts(t), dup, 3)
	assert.ErrorIs(t, err, exercise.ErrUnsatisfiableConfiguration)
}
