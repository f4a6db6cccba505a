// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package store persists user defined units in SQLite and reads them from YAML
// definition files.
package store

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/errs"

	"github.com/mikecarlton/units"
)

const schema = `
CREATE TABLE IF NOT EXISTS units (
	symbol TEXT PRIMARY KEY,
	multiplier REAL NOT NULL,
	expr TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	display BOOLEAN NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// DB holds user defined units.
type DB struct {
	db     *sql.DB
	logger *slog.Logger
}

// DefaultPath is ~/data/units.sqlite3.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", Error.New("failed to get home directory: %v", err)
	}
	return filepath.Join(homeDir, "data", "units.sqlite3"), nil
}

// Open opens (creating if needed) the database at path.
func Open(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, Error.New("failed to create data directory: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, Error.New("failed to open database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, Error.New("failed to create schema: %v", err)
	}

	logger.Debug("opened unit database", "path", path)

	return &DB{db: db, logger: logger}, nil
}

func (s *DB) Close() error {
	return Error.Wrap(s.db.Close())
}

// Save stores d, replacing any definition with the same symbol.
func (s *DB) Save(ctx context.Context, d Definition) error {
	if d.Symbol == "" || d.Of == "" {
		return Error.New("definition needs a symbol and a unit")
	}
	if !validMultiplier(d.Multiplier) {
		return Error.New("%s: multiplier must be finite and positive, got %v", d.Symbol, d.Multiplier)
	}

	query := `
	INSERT OR REPLACE INTO units (symbol, multiplier, expr, description, display)
	VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, d.Symbol, d.Multiplier, d.Of, d.Description, d.Display); err != nil {
		return Error.Wrap(err)
	}

	s.logger.Debug("saved unit", "symbol", d.Symbol, "multiplier", d.Multiplier, "of", d.Of)

	return nil
}

// Delete removes the definition of symbol and reports whether there was one.
func (s *DB) Delete(ctx context.Context, symbol string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM units WHERE symbol = ?`, symbol)
	if err != nil {
		return false, Error.Wrap(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, Error.Wrap(err)
	}
	return n > 0, nil
}

// Get returns the definition of symbol, or nil if there is none.
func (s *DB) Get(ctx context.Context, symbol string) (*Definition, error) {
	query := `
	SELECT symbol, multiplier, expr, description, display, created_at
	FROM units
	WHERE symbol = ?
	`

	var d Definition
	err := s.db.QueryRowContext(ctx, query, symbol).Scan(
		&d.Symbol, &d.Multiplier, &d.Of, &d.Description, &d.Display, &d.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return &d, nil
}

// List returns every definition in the order they were saved.
func (s *DB) List(ctx context.Context) (_ []Definition, err error) {
	query := `
	SELECT symbol, multiplier, expr, description, display, created_at
	FROM units
	ORDER BY created_at, rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var result []Definition
	for rows.Next() {
		var d Definition
		if err := rows.Scan(&d.Symbol, &d.Multiplier, &d.Of, &d.Description, &d.Display, &d.CreatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		result = append(result, d)
	}

	return result, Error.Wrap(rows.Err())
}

// LoadInto declares every stored definition on reg. A definition that no longer applies,
// e.g. because its unit expression is unknown, is logged and skipped.
func (s *DB) LoadInto(ctx context.Context, reg *units.Registry) (int, error) {
	defs, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, d := range defs {
		if _, err := d.Apply(reg); err != nil {
			s.logger.Warn("skipping stored unit", "symbol", d.Symbol, "error", err)
			continue
		}
		loaded++
	}

	return loaded, nil
}
