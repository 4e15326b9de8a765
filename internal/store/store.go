// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps the built pin table in a SQLite database so other
// tools can query pins and functions without re-reading the spreadsheet.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pingen/pkg/types"
)

const defaultDBPath = "pins.db"

// Store manages the pin database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at cfg.Path and creates the schema if
// it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pins (
			number TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			default_function TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pin_functions (
			pin_number TEXT NOT NULL REFERENCES pins(number) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			function TEXT NOT NULL,
			PRIMARY KEY (pin_number, position)
		)`,
		`CREATE TABLE IF NOT EXISTS functions (
			name TEXT PRIMARY KEY
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pins_name ON pins(name)`,
		`CREATE INDEX IF NOT EXISTS idx_pin_functions_function ON pin_functions(function)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from a store run.
type IngestSummary struct {
	Pins      int
	Replaced  int
	Functions int
}

// Ingest replaces the stored table with pins and the function set in one
// transaction. A pin number that appears twice keeps the later row.
func (s *Store) Ingest(ctx context.Context, pins []types.Pin, functions map[string]bool, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM pin_functions`, `DELETE FROM pins`, `DELETE FROM functions`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return summary, fmt.Errorf("clearing previous table: %w", err)
		}
	}

	seen := make(map[string]bool, len(pins))
	for i, p := range pins {
		if seen[p.Number] {
			if _, err := tx.ExecContext(ctx, `DELETE FROM pin_functions WHERE pin_number = ?`, p.Number); err != nil {
				return summary, fmt.Errorf("replacing pin %s: %w", p.Number, err)
			}
			fmt.Fprintf(w, "replaced duplicate pin %s\n", p.Number)
			summary.Replaced++
		} else {
			summary.Pins++
		}
		seen[p.Number] = true

		_, err := tx.ExecContext(ctx,
			`INSERT INTO pins (number, name, default_function, position) VALUES (?, ?, ?, ?)
			 ON CONFLICT(number) DO UPDATE SET
				name=excluded.name, default_function=excluded.default_function, position=excluded.position`,
			p.Number, p.Name, p.Default, i,
		)
		if err != nil {
			return summary, fmt.Errorf("inserting pin %s: %w", p.Number, err)
		}

		for j, fn := range p.Functions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO pin_functions (pin_number, position, function) VALUES (?, ?, ?)`,
				p.Number, j, fn,
			); err != nil {
				return summary, fmt.Errorf("inserting function %s of pin %s: %w", fn, p.Number, err)
			}
		}
	}

	names := make([]string, 0, len(functions))
	for f := range functions {
		names = append(names, f)
	}
	sort.Strings(names)
	for _, f := range names {
		if _, err := tx.ExecContext(ctx, `INSERT INTO functions (name) VALUES (?)`, f); err != nil {
			return summary, fmt.Errorf("inserting function %s: %w", f, err)
		}
	}
	summary.Functions = len(names)

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "stored %d pins, %d distinct functions in %s\n", summary.Pins, summary.Functions, s.path)
	return summary, nil
}
