package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/history"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type MapRepo interface {
	Create(ctx context.Context, m *domain.Map) error
	GetByID(ctx context.Context, id string) (*domain.Map, error)
	List(ctx context.Context) ([]*domain.Map, error)
	Update(ctx context.Context, m *domain.Map) error
	Delete(ctx context.Context, id string) error
}

// HistoryRepo persists a map's undo/redo timeline. Positions are 0-based
// and contiguous.
type HistoryRepo interface {
	Append(ctx context.Context, mapID string, position int, e history.Entry) error
	List(ctx context.Context, mapID string) ([]history.Entry, error)
	// Truncate removes every entry at or after position.
	Truncate(ctx context.Context, mapID string, position int) error
	Cursor(ctx context.Context, mapID string) (int, error)
	SetCursor(ctx context.Context, mapID string, cursor int) error
}
