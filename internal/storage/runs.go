package storage

import (
	"fmt"
	"time"
)

// Run is one finished game: the final score plus how it was played.
type Run struct {
	ID        int64
	GameID    string
	Score     int
	Ticks     int
	Duration  time.Duration
	Seed      int64
	CreatedAt time.Time
}

// RecordRun stores a finished run together with its entry in the score
// table, in one transaction. It returns the run's row ID.
func (s *Store) RecordRun(r Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", r.GameID, r.Score); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO runs (game_id, score, ticks, duration_ms, seed) VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Ticks, r.Duration.Milliseconds(), r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs of gameID, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	return s.queryRuns("ORDER BY id DESC", gameID, limit)
}

// TopRuns returns up to limit runs of gameID, best score first. Ties go to
// the shorter run. A non-positive limit means 20.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	return s.queryRuns("ORDER BY score DESC, ticks ASC, id ASC", gameID, limit)
}

func (s *Store) queryRuns(order, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, ticks, duration_ms, seed, created_at
		 FROM runs
		 WHERE game_id = ? `+order+`
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Ticks, &durationMS, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
