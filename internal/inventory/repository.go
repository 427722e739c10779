package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	platformdb "github.com/cornerstore/invtrack/internal/platform/db"
)

// Repository persists inventory rows.
type Repository interface {
	EnsureSchema(ctx context.Context) error
	Seed(ctx context.Context, items []ItemFields) error
	FetchAll(ctx context.Context) (Snapshot, error)
	ApplyMutations(ctx context.Context, muts []Mutation) error
}

// SQLiteRepository implements Repository over a SQLite handle.
type SQLiteRepository struct {
	conn *sql.DB
}

// NewSQLiteRepository constructs SQLiteRepository.
func NewSQLiteRepository(conn *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{conn: conn}
}

// The CHECK constraints back the service-level validation so a mutation that
// slips past it still rolls the whole transaction back.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS inventory (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item_name TEXT,
	price REAL CHECK (price IS NULL OR price >= 0),
	units_sold INTEGER CHECK (units_sold IS NULL OR units_sold >= 0),
	units_left INTEGER CHECK (units_left IS NULL OR units_left >= 0),
	cost_price REAL CHECK (cost_price IS NULL OR cost_price >= 0),
	reorder_point INTEGER CHECK (reorder_point IS NULL OR reorder_point >= 0),
	description TEXT
)`

const insertSQL = `
INSERT INTO inventory (item_name, price, units_sold, units_left, cost_price, reorder_point, description)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const updateSQL = `
UPDATE inventory
SET item_name = ?, price = ?, units_sold = ?, units_left = ?, cost_price = ?, reorder_point = ?, description = ?
WHERE id = ?`

const deleteSQL = `DELETE FROM inventory WHERE id = ?`

const selectAllSQL = `
SELECT id, item_name, price, units_sold, units_left, cost_price, reorder_point, description
FROM inventory
ORDER BY id`

// EnsureSchema creates the inventory table when missing. Safe to call on every
// startup.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Seed bulk-inserts the initial sample rows. Not idempotent; callers gate on
// the wasCreated flag from opening the store.
func (r *SQLiteRepository) Seed(ctx context.Context, items []ItemFields) error {
	err := platformdb.WithTx(ctx, r.conn, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertSQL)
		if err != nil {
			return fmt.Errorf("prepare seed insert: %w", err)
		}
		defer stmt.Close()

		for _, it := range items {
			if _, err := stmt.ExecContext(ctx, it.Name, it.Price, it.UnitsSold, it.UnitsLeft, it.CostPrice, it.ReorderPoint, it.Description); err != nil {
				return fmt.Errorf("seed insert: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	return nil
}

// FetchAll reads the whole table in primary-key order. A missing table is
// reported as ErrNoData so callers can tell an uninitialised store from a
// hard read failure.
func (r *SQLiteRepository) FetchAll(ctx context.Context) (Snapshot, error) {
	rows, err := r.conn.QueryContext(ctx, selectAllSQL)
	if err != nil {
		if isMissingTable(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("%w: fetch all: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var snap Snapshot
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.UnitsSold, &it.UnitsLeft, &it.CostPrice, &it.ReorderPoint, &it.Description); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrStorageUnavailable, err)
		}
		snap = append(snap, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrStorageUnavailable, err)
	}
	return snap, nil
}

// ApplyMutations applies the sequence as one all-or-nothing transaction. On
// any failure the store is left in its pre-call state.
func (r *SQLiteRepository) ApplyMutations(ctx context.Context, muts []Mutation) error {
	if len(muts) == 0 {
		return nil
	}
	err := platformdb.WithTx(ctx, r.conn, func(tx *sql.Tx) error {
		for _, m := range muts {
			if err := applyOne(ctx, tx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	return nil
}

func applyOne(ctx context.Context, tx *sql.Tx, m Mutation) error {
	f := m.Fields
	switch m.Kind {
	case MutationInsert:
		if _, err := tx.ExecContext(ctx, insertSQL, f.Name, f.Price, f.UnitsSold, f.UnitsLeft, f.CostPrice, f.ReorderPoint, f.Description); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
	case MutationUpdate:
		if _, err := tx.ExecContext(ctx, updateSQL, f.Name, f.Price, f.UnitsSold, f.UnitsLeft, f.CostPrice, f.ReorderPoint, f.Description, m.ID); err != nil {
			return fmt.Errorf("update id %d: %w", m.ID, err)
		}
	case MutationDelete:
		if _, err := tx.ExecContext(ctx, deleteSQL, m.ID); err != nil {
			return fmt.Errorf("delete id %d: %w", m.ID, err)
		}
	default:
		return fmt.Errorf("unknown mutation kind %q", m.Kind)
	}
	return nil
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
