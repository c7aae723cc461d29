package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/flowgrid/internal/games/flow"
)

// SolveEntry is one solved level.
type SolveEntry struct {
	ID         int64
	RunID      string
	LevelID    string
	LevelIndex int
	Seed       int64
	Moves      int
	Par        int
	Hints      int
	Ticks      int
	Score      int
	CreatedAt  time.Time
}

// LevelStats aggregates every solve of one level.
type LevelStats struct {
	LevelID    string
	Solves     int
	BestMoves  int
	AvgMoves   float64
	BestTicks  int
	BestScore  int
	LastSolved time.Time
}

const solveColumns = `id, run_id, level_id, level_index, seed, moves, par, hints, ticks, score, created_at`

// SaveSolve records a solved level. Returns the ID of the inserted record.
func (s *Store) SaveSolve(e SolveEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO solves (run_id, level_id, level_index, seed, moves, par, hints, ticks, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.LevelID, e.LevelIndex, e.Seed, e.Moves, e.Par, e.Hints, e.Ticks, e.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordSolve implements flow.SolveRecorder.
func (s *Store) RecordSolve(rec flow.SolveRecord) error {
	_, err := s.SaveSolve(SolveEntry{
		RunID:      rec.RunID,
		LevelID:    rec.LevelID,
		LevelIndex: rec.LevelIndex,
		Seed:       rec.Seed,
		Moves:      rec.Moves,
		Par:        rec.Par,
		Hints:      rec.Hints,
		Ticks:      rec.Ticks,
		Score:      rec.Score,
	})
	return err
}

var _ flow.SolveRecorder = (*Store)(nil)

// BestSolves returns the best solves of a level: fewest moves, then fastest.
func (s *Store) BestSolves(levelID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySolves(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE level_id = ?
		 ORDER BY moves ASC, ticks ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
}

// RunSolves returns every solve of one play run in campaign order.
func (s *Store) RunSolves(runID string) ([]SolveEntry, error) {
	return s.querySolves(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE run_id = ?
		 ORDER BY level_index ASC, id ASC`,
		runID,
	)
}

func (s *Store) querySolves(query string, args ...any) ([]SolveEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RunID,
			&e.LevelID,
			&e.LevelIndex,
			&e.Seed,
			&e.Moves,
			&e.Par,
			&e.Hints,
			&e.Ticks,
			&e.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LevelStats returns aggregated statistics for every level with at least one solve.
func (s *Store) LevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), AVG(moves), MIN(ticks), MAX(score), MAX(created_at)
		 FROM solves
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var ls LevelStats
		var lastSolved any
		if err := rows.Scan(&ls.LevelID, &ls.Solves, &ls.BestMoves, &ls.AvgMoves, &ls.BestTicks, &ls.BestScore, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastSolved = parseTimestamp(lastSolved)
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearSolves deletes every solve of a level, or all solves when levelID is empty.
func (s *Store) ClearSolves(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM solves")
	} else {
		_, err = s.db.Exec("DELETE FROM solves WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}
