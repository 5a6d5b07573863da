// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/skyfall/internal/core"
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	RoundID   string
	Variant   string // Difficulty preset the round was played on
	Score     int
	Cause     string
	Ticks     int
	Stars     int
	Coins     int
	PowerUps  int
	Enemies   int
	Shots     int
	CreatedAt time.Time
}

// RecordFromSummary converts a round summary reported by the game.
func RecordFromSummary(variant string, s core.RoundSummary) RoundRecord {
	return RoundRecord{
		RoundID:  s.RoundID,
		Variant:  variant,
		Score:    s.Score,
		Cause:    string(s.Cause),
		Ticks:    s.Ticks,
		Stars:    s.StarsCollected,
		Coins:    s.CoinsCollected,
		PowerUps: s.PowerUpsCollected,
		Enemies:  s.EnemiesDestroyed,
		Shots:    s.ShotsFired,
	}
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
			round_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			cause TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			powerups INTEGER NOT NULL DEFAULT 0,
			enemies INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_variant ON rounds(variant);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(variant, score DESC);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, variant, score, cause, ticks, stars, coins, powerups, enemies, shots)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.Variant, r.Score, r.Cause, r.Ticks,
		r.Stars, r.Coins, r.PowerUps, r.Enemies, r.Shots,
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

const roundColumns = `id, round_id, variant, score, cause, ticks, stars, coins, powerups, enemies, shots, created_at`

// TopRounds retrieves the top N rounds for the given variant.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopRounds(variant string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// AllRounds retrieves every round for the given variant (no limit).
func (s *Store) AllRounds(variant string) ([]RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a round by its round ID.
// Returns nil without error when no such round exists.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	)

	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return &r, nil
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRounds deletes all rounds for the given variant.
func (s *Store) ClearRounds(variant string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// RoundStats contains aggregated statistics for one variant.
type RoundStats struct {
	Variant    string
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Stars      int64
	Coins      int64
	Enemies    int64
	Causes     map[string]int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a variant.
func (s *Store) Stats(variant string) (*RoundStats, error) {
	stats := &RoundStats{Variant: variant, Causes: make(map[string]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(stars), 0), COALESCE(SUM(coins), 0), COALESCE(SUM(enemies), 0), MAX(created_at)
		 FROM rounds WHERE variant = ?`,
		variant,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.Stars, &stats.Coins, &stats.Enemies, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	rows, err := s.db.Query(
		`SELECT cause, COUNT(*) FROM rounds WHERE variant = ? GROUP BY cause`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round causes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan cause row: %w", err)
		}
		stats.Causes[cause] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRound(sc scanner) (RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := sc.Scan(
		&r.ID, &r.RoundID, &r.Variant, &r.Score, &r.Cause, &r.Ticks,
		&r.Stars, &r.Coins, &r.PowerUps, &r.Enemies, &r.Shots, &createdAt,
	)
	if err != nil {
		return RoundRecord{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string, depending on how the driver
// returned the column.
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
