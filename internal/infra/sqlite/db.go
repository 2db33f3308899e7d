// Package sqlite provides SQLite-based generation history for mathsheet.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/tutu-network/mathsheet/internal/domain"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/history.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "history.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			seed        INTEGER NOT NULL,
			count       INTEGER NOT NULL,
			task_types  TEXT NOT NULL,
			digits_min  INTEGER NOT NULL,
			digits_max  INTEGER NOT NULL,
			base        TEXT NOT NULL DEFAULT '',
			created_at  INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,

		`CREATE TABLE IF NOT EXISTS run_files (
			run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			idx           INTEGER NOT NULL,
			task_file     TEXT NOT NULL,
			solution_file TEXT NOT NULL,
			PRIMARY KEY (run_id, idx)
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Run Repository ─────────────────────────────────────────────────────────

// InsertRun stores a run and its output files in one transaction.
func (d *DB) InsertRun(run domain.Run) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, seed, count, task_types, digits_min, digits_max, base, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, int64(run.Seed), run.Count, joinTypes(run.TaskTypes),
		run.DigitsMin, run.DigitsMax, run.Base, run.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, f := range run.Files {
		if _, err := tx.Exec(
			`INSERT INTO run_files (run_id, idx, task_file, solution_file) VALUES (?, ?, ?, ?)`,
			run.ID, i, f.Task, f.Solution,
		); err != nil {
			return fmt.Errorf("insert run file: %w", err)
		}
	}
	return tx.Commit()
}

// GetRun retrieves a run with its files. Returns domain.ErrRunNotFound when
// no run has that id.
func (d *DB) GetRun(id string) (*domain.Run, error) {
	row := d.db.QueryRow(
		`SELECT id, seed, count, task_types, digits_min, digits_max, base, created_at
		 FROM runs WHERE id = ?`, id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(
		`SELECT task_file, solution_file FROM run_files WHERE run_id = ? ORDER BY idx`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.OutputFiles
		if err := rows.Scan(&f.Task, &f.Solution); err != nil {
			return nil, err
		}
		run.Files = append(run.Files, f)
	}
	return run, rows.Err()
}

// ListRuns returns the most recent runs first, without their files. A limit
// of zero or less lists every run.
func (d *DB) ListRuns(limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := d.db.Query(
		`SELECT id, seed, count, task_types, digits_min, digits_max, base, created_at
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run and, by cascade, its files.
func (d *DB) DeleteRun(id string) error {
	result, err := d.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*domain.Run, error) {
	var r domain.Run
	var seed, createdAt int64
	var types string

	err := s.Scan(&r.ID, &seed, &r.Count, &types, &r.DigitsMin, &r.DigitsMax, &r.Base, &createdAt)
	if err != nil {
		return nil, err
	}

	r.Seed = uint64(seed)
	r.TaskTypes = splitTypes(types)
	r.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &r, nil
}

func joinTypes(types []domain.TaskType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func splitTypes(s string) []domain.TaskType {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.TaskType, len(parts))
	for i, p := range parts {
		out[i] = domain.TaskType(p)
	}
	return out
}
