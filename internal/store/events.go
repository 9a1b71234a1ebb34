package store

import (
	"context"
	"time"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

// Event kinds.
const (
	KindSessionStarted = "session_started"
	KindExerciseResult = "exercise_result"
	KindStageCompleted = "stage_completed"
)

// SessionStarted records the beginning of a practicum run.
func (s *Store) SessionStarted(sessionID, packVersion string) error {
	_, err := s.db.Exec(
		`INSERT INTO events (session_id, kind, pack_version) VALUES (?, ?, ?)`,
		sessionID, KindSessionStarted, packVersion,
	)
	return err
}

// ExerciseResult records one graded submission.
func (s *Store) ExerciseResult(sessionID, stage string, out exercise.Outcome) error {
	_, err := s.db.Exec(
		`INSERT INTO events (session_id, kind, stage, exercise_id, passed, points) VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID, KindExerciseResult, stage, out.ExerciseID, boolToInt(out.Passed), out.Points,
	)
	return err
}

// StageCompleted records a stage transition with the score at that point.
func (s *Store) StageCompleted(sessionID, stage string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO events (session_id, kind, stage, score) VALUES (?, ?, ?, ?)`,
		sessionID, KindStageCompleted, stage, score,
	)
	return err
}

// SessionSummary is one practicum run as seen by the stats command.
type SessionSummary struct {
	SessionID   string
	StartedAt   time.Time
	Attempts    int
	Correct     int
	QuizScore   int
	LastStage   string
	PackVersion string
}

// stageLabels maps the SQL stage rank back to its label; rank 0 means no
// stage was completed.
var stageLabels = []string{"", "quiz", "room", "certificate"}

// Summaries returns one row per recorded session, most recent first.
func (s *Store) Summaries(ctx context.Context) ([]SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			e.session_id,
			MIN(e.created_at),
			COALESCE(MAX(CASE WHEN e.kind = ? THEN e.pack_version END), ''),
			COALESCE(SUM(CASE WHEN e.kind = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN e.kind = ? AND e.passed = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(MAX(CASE WHEN e.kind = ? AND e.stage = 'quiz' THEN e.score END), 0),
			COALESCE(MAX(CASE WHEN e.kind = ? THEN
				CASE e.stage WHEN 'quiz' THEN 1 WHEN 'room' THEN 2 WHEN 'certificate' THEN 3 ELSE 0 END
			END), 0)
		FROM events e
		GROUP BY e.session_id
		ORDER BY MIN(e.created_at) DESC`,
		KindSessionStarted, KindExerciseResult, KindExerciseResult, KindStageCompleted, KindStageCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var (
			sum       SessionSummary
			startedAt int64
			rank      int
		)
		if err := rows.Scan(&sum.SessionID, &startedAt, &sum.PackVersion, &sum.Attempts, &sum.Correct, &sum.QuizScore, &rank); err != nil {
			return nil, err
		}
		sum.StartedAt = time.Unix(startedAt, 0)
		sum.LastStage = stageLabels[rank]
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Reset deletes every recorded event.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM events`)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
