package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite database file at path, creating it when absent. The
// second return value reports whether this call created the file, so the
// caller can decide whether to seed initial data.
func Open(ctx context.Context, path string) (*sql.DB, bool, error) {
	existed := true
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, false, fmt.Errorf("platform/db: stat %s: %w", path, err)
		}
		existed = false
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("platform/db: create dir %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, false, fmt.Errorf("platform/db: open %s: %w", path, err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY churn.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("platform/db: ping: %w", err)
	}

	return conn, !existed, nil
}

// WithTx executes fn within a transaction, rolling back when fn or the commit
// fails.
func WithTx(ctx context.Context, conn *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("platform/db: begin tx: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("platform/db: commit tx: %w", err)
	}

	return nil
}
