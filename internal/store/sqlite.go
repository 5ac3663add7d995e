package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

//go:embed migrations/*.sql
var migrations embed.FS

// migrateMu serializes goose runs; goose keeps its base FS and dialect in
// package globals.
var migrateMu sync.Mutex

const sqliteFile = "readykit.db"

// SQLite stores keys in a single kv table.
type SQLite struct {
	db    *sql.DB
	quota int64
	once  sync.Once
}

// OpenSQLite opens (creating if needed) <dir>/readykit.db and applies
// pending migrations.
func OpenSQLite(ctx context.Context, dir string, quota int64) (*SQLite, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFile))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A single connection keeps every statement on one sqlite handle.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLite{db: db, quota: quota}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", types.ErrKeyNotFound
	}
	if err != nil {
		return "", s.wrap("get "+key, err)
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// SetMany upserts every entry in one transaction.
func (s *SQLite) SetMany(ctx context.Context, entries map[string]string) error {
	for k := range entries {
		if err := checkKey(k); err != nil {
			return err
		}
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.wrap("begin", err)
	}
	defer tx.Rollback()

	if s.quota > 0 {
		var used int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0) FROM kv`,
		).Scan(&used); err != nil {
			return s.wrap("size", err)
		}
		old := make(map[string]string)
		for k := range entries {
			var v string
			err := tx.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, k).Scan(&v)
			switch {
			case errors.Is(err, sql.ErrNoRows):
			case err != nil:
				return s.wrap("get "+k, err)
			default:
				old[k] = v
			}
		}
		if err := checkQuota(s.quota, used, old, entries); err != nil {
			return err
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return s.wrap("prepare upsert", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range entries {
		if _, err := stmt.ExecContext(ctx, k, v, now); err != nil {
			return s.wrap("set "+k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return s.wrap("commit", err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return s.wrap("delete "+key, err)
	}
	return nil
}

func (s *SQLite) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key ASC`)
	if err != nil {
		return nil, s.wrap("keys", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, s.wrap("scan key", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLite) Size(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0) FROM kv`,
	).Scan(&n)
	if err != nil {
		return 0, s.wrap("size", err)
	}
	return n, nil
}

func (s *SQLite) Close() error {
	var err error
	s.once.Do(func() { err = s.db.Close() })
	return err
}

// wrap maps a closed database to ErrStoreClosed.
func (s *SQLite) wrap(op string, err error) error {
	if errors.Is(err, sql.ErrConnDone) || err.Error() == "sql: database is closed" {
		return types.ErrStoreClosed
	}
	return fmt.Errorf("%s: %w", op, err)
}
