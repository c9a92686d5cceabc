package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

const sqliteTimeLayout = time.RFC3339Nano

const (
	kindString = "string"
	kindInt    = "int"
)

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	// One connection serializes host writes against widget reads.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 2000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// OpenSQLite opens path and applies migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Load(ctx context.Context) (snapshot.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, kind, text_value, int_value FROM snapshot_values`)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	defer rows.Close()

	values := make(map[string]snapshot.Value)
	for rows.Next() {
		key, value, scanErr := scanValue(rows)
		if scanErr != nil {
			return snapshot.Snapshot{}, scanErr
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return snapshot.Snapshot{}, err
	}
	return snapshot.New(values), nil
}

func (r *SQLiteRepository) Replace(ctx context.Context, snap snapshot.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_values`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_values (key, kind, text_value, int_value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range snap.Keys() {
		value, _ := snap.Lookup(key)
		kind, text, num, convErr := valueColumns(value)
		if convErr != nil {
			return fmt.Errorf("key %s: %w", key, convErr)
		}
		if _, err := stmt.ExecContext(ctx, key, kind, text, num); err != nil {
			return fmt.Errorf("insert key %s: %w", key, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (id, generation, written_at) VALUES (1, 1, ?)
		ON CONFLICT(id) DO UPDATE SET generation = generation + 1, written_at = excluded.written_at`,
		mustTime(r.now()),
	); err != nil {
		return fmt.Errorf("bump generation: %w", err)
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Meta(ctx context.Context) (Meta, error) {
	row := r.db.QueryRowContext(ctx, `SELECT generation, written_at FROM snapshot_meta WHERE id = 1`)
	var out Meta
	var written string
	if err := row.Scan(&out.Generation, &written); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Meta{}, ErrNotFound
		}
		return Meta{}, err
	}
	writtenAt, err := time.Parse(sqliteTimeLayout, written)
	if err != nil {
		return Meta{}, err
	}
	out.WrittenAt = writtenAt
	return out, nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func valueColumns(v snapshot.Value) (string, any, any, error) {
	switch v.Kind {
	case snapshot.KindString:
		return kindString, v.Str, nil, nil
	case snapshot.KindInt:
		return kindInt, nil, int64(v.Int), nil
	default:
		return "", nil, nil, fmt.Errorf("storage: unsupported value kind %d", v.Kind)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanValue(s scanner) (string, snapshot.Value, error) {
	var key, kind string
	var text sql.NullString
	var num sql.NullInt64
	if err := s.Scan(&key, &kind, &text, &num); err != nil {
		return "", snapshot.Value{}, err
	}
	switch kind {
	case kindString:
		return key, snapshot.StringValue(text.String), nil
	case kindInt:
		return key, snapshot.IntValue(int(num.Int64)), nil
	default:
		return "", snapshot.Value{}, fmt.Errorf("storage: unknown value kind %q for key %s", kind, key)
	}
}
