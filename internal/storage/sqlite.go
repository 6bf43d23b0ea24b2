// Package storage provides SQLite-based persistence for the round journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Store manages the SQLite database connection for the round journal.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	Source    string // Front-end that hosted the round: "terminal", "window", "ssh:<user>"
	Outcome   string // "won" or "lost"
	Score     int
	Total     int
	Ticks     int
	StateHash uint64
	CreatedAt time.Time
}

// Stats aggregates the whole journal.
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Destroyed  int64 // Bricks destroyed across all rounds
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			state_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound appends a round to the journal.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	// Hashes use the full uint64 range, which SQLite integers cannot hold
	hash := strconv.FormatUint(r.StateHash, 16)

	result, err := s.db.Exec(
		`INSERT INTO rounds (source, outcome, score, total, ticks, state_hash)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Source, r.Outcome, r.Score, r.Total, r.Ticks, hash,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds returns the newest rounds first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, source, outcome, score, total, ticks, state_hash, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var hash string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Source, &r.Outcome, &r.Score, &r.Total, &r.Ticks, &hash, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.StateHash, err = strconv.ParseUint(hash, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad state hash %q: %w", hash, err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RoundStats returns win/loss counts for the whole journal.
func (s *Store) RoundStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(score), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.Wins, &stats.Losses, &stats.Destroyed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM rounds ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRounds deletes the whole journal.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Journal adapts a Store to breakout.RoundObserver.
// Writes are best-effort: failures are logged and play continues.
type Journal struct {
	store  *Store
	source string
	logger *log.Logger
}

// NewJournal creates an observer that records rounds under source.
func NewJournal(store *Store, source string, logger *log.Logger) *Journal {
	return &Journal{store: store, source: source, logger: logger}
}

// RoundEnded implements breakout.RoundObserver.
func (j *Journal) RoundEnded(r breakout.Round) {
	if j.store == nil {
		return
	}

	_, err := j.store.SaveRound(RoundRecord{
		Source:    j.source,
		Outcome:   r.Outcome.String(),
		Score:     r.Score,
		Total:     r.Total,
		Ticks:     r.Ticks,
		StateHash: r.Hash,
	})
	if err != nil && j.logger != nil {
		j.logger.Warn("could not record round", "error", err)
	}
}

// Ensure Journal implements RoundObserver
var _ breakout.RoundObserver = (*Journal)(nil)
