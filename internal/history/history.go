// internal/history/history.go
//
// SQLite log of concluded rounds.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations once each (recorded in _migrations).
//   - Recording finished rounds and listing/aggregating them per session.
//
// The log is write-mostly: nothing here restores a score into a running game.

package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const defaultLimit = 20

// timeLayout is fixed width so finished_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Result is one concluded round.
type Result struct {
	SessionID    string    `json:"sessionId"`
	RoundID      string    `json:"roundId"`
	Language     string    `json:"language"`
	Word         string    `json:"word"`
	Outcome      string    `json:"outcome"` // "won" | "lost"
	WrongGuesses int       `json:"wrongGuesses"`
	Points       int       `json:"points"`
	FinishedAt   time.Time `json:"finishedAt"`
}

// Summary aggregates a session's rounds.
type Summary struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
	Points int `json:"points"`
}

// Recorder is what the HTTP layer needs from the history log.
type Recorder interface {
	Record(ctx context.Context, r Result) error
	Recent(ctx context.Context, sessionID string, limit int) ([]Result, error)
	Summary(ctx context.Context, sessionID string) (Summary, error)
	Close() error
}

// Store is the SQLite Recorder.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// openDB ensures the parent directory exists, then opens with WAL and a busy timeout.
func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies each embedded *.sql file in lexical order inside its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(migrationsFS, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Record inserts r. A round already recorded is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO rounds
            (round_id, session_id, language, word, outcome, wrong_guesses, points, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(round_id) DO NOTHING`,
		r.RoundID, r.SessionID, r.Language, r.Word, r.Outcome, r.WrongGuesses, r.Points,
		r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Recent lists a session's rounds, newest first. limit <= 0 means 20.
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT round_id, session_id, language, word, outcome, wrong_guesses, points, finished_at
        FROM rounds
        WHERE session_id=?
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var finished string
		if err := rows.Scan(&r.RoundID, &r.SessionID, &r.Language, &r.Word, &r.Outcome,
			&r.WrongGuesses, &r.Points, &finished); err != nil {
			return nil, err
		}
		at, err := time.Parse(timeLayout, finished)
		if err != nil {
			return nil, fmt.Errorf("round %s finished_at: %w", r.RoundID, err)
		}
		r.FinishedAt = at
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary counts a session's rounds and points.
func (s *Store) Summary(ctx context.Context, sessionID string) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(CASE WHEN outcome='won' THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(points), 0)
        FROM rounds WHERE session_id=?`, sessionID,
	).Scan(&sum.Played, &sum.Won, &sum.Points)
	sum.Lost = sum.Played - sum.Won
	return sum, err
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Nop discards everything; used when no database is configured.
type Nop struct{}

func (Nop) Record(context.Context, Result) error { return nil }

func (Nop) Recent(context.Context, string, int) ([]Result, error) { return []Result{}, nil }

func (Nop) Summary(context.Context, string) (Summary, error) { return Summary{}, nil }

func (Nop) Close() error { return nil }
