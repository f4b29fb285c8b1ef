package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/kitchen-rush/internal/core"
)

// RunEntry is the summary of one finished shift.
type RunEntry struct {
	ID           int64
	RunID        string
	GameID       string
	Menu         string
	Seed         int64
	Score        int
	Served       int
	WrongOrder   int
	Unmatched    int
	Trashed      int
	DurationSecs int
	CreatedAt    time.Time
}

// RunFromReport converts a game's end-of-session report.
func RunFromReport(r core.RunReport) RunEntry {
	return RunEntry{
		RunID:        r.RunID,
		GameID:       r.GameID,
		Menu:         r.Variant,
		Seed:         r.Seed,
		Score:        r.Score,
		Served:       r.Served,
		WrongOrder:   r.WrongOrder,
		Unmatched:    r.Unmatched,
		Trashed:      r.Trashed,
		DurationSecs: r.DurationSecs,
	}
}

// SaveRun records a shift summary. Saving the same run id twice is an error.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.RunID == "" {
		return 0, fmt.Errorf("storage: run without an id")
	}

	res, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, menu, seed, score, served, wrong_order, unmatched, trashed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.GameID,
		run.Menu,
		run.Seed,
		run.Score,
		run.Served,
		run.WrongOrder,
		run.Unmatched,
		run.Trashed,
		run.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, game_id, menu, seed, score, served, wrong_order,
		        unmatched, trashed, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunEntry, error) {
	var r RunEntry
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RunID,
		&r.GameID,
		&r.Menu,
		&r.Seed,
		&r.Score,
		&r.Served,
		&r.WrongOrder,
		&r.Unmatched,
		&r.Trashed,
		&r.DurationSecs,
		&createdAt,
	)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// RunByID retrieves a shift by its run id. Returns nil if there is none.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the latest shifts of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunTotals adds up the shifts of a game.
type RunTotals struct {
	Runs       int
	Served     int
	WrongOrder int
	Unmatched  int
	Trashed    int
}

// GetRunTotals sums every recorded shift of a game.
func (s *Store) GetRunTotals(gameID string) (RunTotals, error) {
	var t RunTotals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(served), 0), COALESCE(SUM(wrong_order), 0),
		        COALESCE(SUM(unmatched), 0), COALESCE(SUM(trashed), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&t.Runs, &t.Served, &t.WrongOrder, &t.Unmatched, &t.Trashed)
	if err != nil {
		return RunTotals{}, fmt.Errorf("storage: cannot get run totals: %w", err)
	}
	return t, nil
}
