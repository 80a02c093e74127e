package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/history"
)

// SQLiteHistoryRepo stores snapshots in map_history and the cursor in
// maps.history_index.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, mapID string, position int, e history.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO map_history (map_id, position, snapshot, description, created_at) VALUES (?, ?, ?, ?, ?)`,
		mapID, position, string(e.Snapshot), e.Description, formatTimestamp(e.At),
	)
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) List(ctx context.Context, mapID string) ([]history.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT snapshot, description, created_at FROM map_history WHERE map_id = ? ORDER BY position`, mapID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var snapshot, at string
		var e history.Entry
		if err := rows.Scan(&snapshot, &e.Description, &at); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Snapshot = []byte(snapshot)
		if e.At, err = parseTimestamp(at); err != nil {
			return nil, fmt.Errorf("parsing history created_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}

func (r *SQLiteHistoryRepo) Truncate(ctx context.Context, mapID string, position int) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM map_history WHERE map_id = ? AND position >= ?`, mapID, position); err != nil {
		return fmt.Errorf("truncating history: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) Cursor(ctx context.Context, mapID string) (int, error) {
	var cursor int
	err := r.db.QueryRowContext(ctx, `SELECT history_index FROM maps WHERE id = ?`, mapID).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("map %s: %w", mapID, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("reading history cursor: %w", err)
	}
	return cursor, nil
}

func (r *SQLiteHistoryRepo) SetCursor(ctx context.Context, mapID string, cursor int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE maps SET history_index = ? WHERE id = ?`, cursor, mapID)
	if err != nil {
		return fmt.Errorf("setting history cursor: %w", err)
	}
	return requireAffected(res, "map "+mapID)
}
