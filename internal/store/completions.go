// internal/store/completions.go
//
// SQLite-backed record of finished daily challenges. One row per
// (session, day); UNIQUE keeps a replayed finish from inserting twice.
// The table only ever matters for the current day — rows for past days
// are dead weight and are swept opportunistically on insert.

package store

import (
	"context"
	"database/sql"
	"errors"
)

// CompletionStore persists terminal session state.
type CompletionStore struct {
	db *sql.DB
}

// NewCompletionStore wraps an open database handle.
func NewCompletionStore(db *sql.DB) *CompletionStore { return &CompletionStore{db: db} }

// Record inserts a completion row; replays are ignored.
func (s *CompletionStore) Record(ctx context.Context, sessionID, day string, attempts int, won, gaveUp bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_completions (session_id, day, attempts, won, gave_up)
		VALUES (?, ?, ?, ?, ?)`,
		sessionID, day, attempts, won, gaveUp,
	)
	if err != nil {
		return err
	}
	// Sweep rows from other days while we hold a write anyway.
	_, _ = s.db.ExecContext(ctx, `DELETE FROM daily_completions WHERE day <> ?`, day)
	return nil
}

// Find looks up a completion for (session, day).
func (s *CompletionStore) Find(ctx context.Context, sessionID, day string) (attempts int, won, gaveUp, found bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT attempts, won, gave_up FROM daily_completions
		WHERE session_id = ? AND day = ?`,
		sessionID, day,
	).Scan(&attempts, &won, &gaveUp)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, false, false, nil
	}
	if err != nil {
		return 0, false, false, false, err
	}
	return attempts, won, gaveUp, true, nil
}

// CountForDay reports how many sessions finished the given day's
// challenge. Operator visibility only.
func (s *CompletionStore) CountForDay(ctx context.Context, day string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM daily_completions WHERE day = ?`, day).Scan(&n)
	return n, err
}
