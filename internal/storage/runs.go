package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord is the summary of one finished run.
type RunRecord struct {
	ID               int64
	RunID            string // Assigned by SaveRun
	GameID           string
	Seed             int64
	Score            int
	EnemiesDestroyed int
	HitsTaken        int
	LivesLost        int
	ShotsFired       int
	DurationSecs     float64
	CreatedAt        time.Time
}

// SaveRun records a finished run under a fresh run ID and returns that ID.
func (s *Store) SaveRun(run RunRecord) (string, error) {
	runID := uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, seed, score, enemies_destroyed, hits_taken, lives_lost, shots_fired, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		run.GameID,
		run.Seed,
		run.Score,
		run.EnemiesDestroyed,
		run.HitsTaken,
		run.LivesLost,
		run.ShotsFired,
		run.DurationSecs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return runID, nil
}

// RecentRuns retrieves the latest runs for the given game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, seed, score, enemies_destroyed, hits_taken,
		        lives_lost, shots_fired, duration_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.GameID,
			&r.Seed,
			&r.Score,
			&r.EnemiesDestroyed,
			&r.HitsTaken,
			&r.LivesLost,
			&r.ShotsFired,
			&r.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
