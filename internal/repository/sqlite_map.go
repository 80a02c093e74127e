package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/mapfile"
)

// SQLiteMapRepo stores each map as its serialized save-file document.
type SQLiteMapRepo struct {
	db db.DBTX
}

func NewSQLiteMapRepo(conn db.DBTX) *SQLiteMapRepo {
	return &SQLiteMapRepo{db: conn}
}

const mapColumns = `id, title, version, document, created_at, updated_at`

func (r *SQLiteMapRepo) Create(ctx context.Context, m *domain.Map) error {
	doc, err := mapfile.Serialize(m.Root)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO maps (`+mapColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Version, string(doc),
		formatTimestamp(m.CreatedAt), formatTimestamp(m.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting map: %w", err)
	}
	return nil
}

func (r *SQLiteMapRepo) GetByID(ctx context.Context, id string) (*domain.Map, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+mapColumns+` FROM maps WHERE id = ?`, id)
	m, err := scanMap(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("map %s: %w", id, ErrNotFound)
	}
	return m, err
}

func (r *SQLiteMapRepo) List(ctx context.Context) ([]*domain.Map, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+mapColumns+` FROM maps ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing maps: %w", err)
	}
	defer rows.Close()

	var maps []*domain.Map
	for rows.Next() {
		m, err := scanMap(rows)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating maps: %w", err)
	}
	return maps, nil
}

func (r *SQLiteMapRepo) Update(ctx context.Context, m *domain.Map) error {
	doc, err := mapfile.Serialize(m.Root)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE maps SET title = ?, version = ?, document = ?, updated_at = ? WHERE id = ?`,
		m.Title, m.Version, string(doc), formatTimestamp(m.UpdatedAt), m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating map: %w", err)
	}
	return requireAffected(res, "map "+m.ID)
}

func (r *SQLiteMapRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting map: %w", err)
	}
	return requireAffected(res, "map "+id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMap(row rowScanner) (*domain.Map, error) {
	var m domain.Map
	var doc, createdAt, updatedAt string
	if err := row.Scan(&m.ID, &m.Title, &m.Version, &doc, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning map: %w", err)
	}

	env, err := mapfile.Deserialize([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("map %s document: %w", m.ID, err)
	}
	m.Root = env.Root

	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if m.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &m, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
