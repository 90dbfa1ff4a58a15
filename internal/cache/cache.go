// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package cache is a sqlite-backed digest history for change
// detection (spec §3's "module-level digest"): it records each parse
// run's source path, content digest, and outcome, so a caller can skip
// re-parsing a file whose digest hasn't changed since the last run
// (not incremental reparsing within a single parse — that remains a
// non-goal — just a before-you-start skip).
//
// Grounded on the teacher's stores/sqlite.SQLiteStore: the same
// go:embed schema.sql plus modernc.org/sqlite open/exec shape,
// repurposed from turn-report rows to parse-run rows.
package cache

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Cache wraps a SQLite database of past parse-run outcomes.
type Cache struct {
	db *sql.DB
}

// Config configures Open.
type Config struct {
	// Path is the database file path. Empty means an in-memory
	// database, scoped to this process only.
	Path string
}

// Open opens (creating if necessary) a digest-history database and
// ensures its schema exists.
func Open(cfg Config) (*Cache, error) {
	dsn := "file::memory:?cache=shared&_pragma=foreign_keys(1)"
	if cfg.Path != "" {
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
			cfg.Path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: exec schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Record is one row of parse-run history.
type Record struct {
	RunID          string
	Path           string
	Digest         string
	Status         string
	SyntaxErrors   int
	SemanticErrors int
	Warnings       int
	LineCount      int
	Elapsed        time.Duration
}

// Insert appends a parse-run record.
func (c *Cache) Insert(ctx context.Context, r Record) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO parse_runs (run_id, path, digest, status, syntax_errors, semantic_errors, warnings, line_count, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Path, r.Digest, r.Status, r.SyntaxErrors, r.SemanticErrors, r.Warnings, r.LineCount, r.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("cache: insert: %w", err)
	}
	return nil
}

// LastDigest returns the digest recorded for the most recent parse run
// of path, or "" if path has never been parsed.
func (c *Cache) LastDigest(ctx context.Context, path string) (string, error) {
	var digest string
	err := c.db.QueryRowContext(ctx,
		`SELECT digest FROM parse_runs WHERE path = ? ORDER BY id DESC LIMIT 1`, path).Scan(&digest)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache: last digest: %w", err)
	}
	return digest, nil
}

// Recent returns the most recent n parse-run records across all
// paths, newest first, for the web dashboard.
func (c *Cache) Recent(ctx context.Context, n int) ([]Record, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT run_id, path, digest, status, syntax_errors, semantic_errors, warnings, line_count, elapsed_ms
		FROM parse_runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("cache: recent: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var elapsedMs int64
		if err := rows.Scan(&r.RunID, &r.Path, &r.Digest, &r.Status, &r.SyntaxErrors, &r.SemanticErrors, &r.Warnings, &r.LineCount, &elapsedMs); err != nil {
			return nil, fmt.Errorf("cache: scan: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// EnsureDir is a small convenience used by cmd/m2parse: it makes sure
// the parent directory of a file-backed cache path exists before Open
// tries to create the database file there.
func EnsureDir(path string) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
