package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/history"
	"github.com/alexanderramin/mindplan/internal/mapfile"
	"github.com/alexanderramin/mindplan/internal/repository"
)

// DefaultHistoryLimit bounds the undo timeline of each map.
const DefaultHistoryLimit = 100

// mapStore runs map mutations inside one transaction together with the
// matching history entry.
type mapStore struct {
	uow          db.UnitOfWork
	historyLimit int
}

// create stores a new map and its first history entry.
func (s mapStore) create(ctx context.Context, m *domain.Map, description string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteMapRepo(tx).Create(ctx, m); err != nil {
			return err
		}
		hist := repository.NewSQLiteHistoryRepo(tx)
		return s.push(ctx, hist, history.New(s.historyLimit), m.ID, m.Root, description)
	})
}

// mutate applies fn to a copy of the map's tree. fn returns the tree to
// store, which may be the one it was given.
func (s mapStore) mutate(ctx context.Context, mapID, description string, fn func(root *domain.Node) (*domain.Node, error)) (*domain.Map, error) {
	var out *domain.Map
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		maps := repository.NewSQLiteMapRepo(tx)
		hist := repository.NewSQLiteHistoryRepo(tx)

		m, err := maps.GetByID(ctx, mapID)
		if err != nil {
			return err
		}
		stack, err := s.loadStack(ctx, hist, mapID)
		if err != nil {
			return err
		}
		if stack.Len() == 0 {
			// Maps stored before history existed start their timeline here.
			if err := s.push(ctx, hist, stack, mapID, m.Root, "initial state"); err != nil {
				return err
			}
		}

		root, err := fn(domain.Clone(m.Root))
		if err != nil {
			return err
		}
		m.Root = root
		m.Title = root.Topic
		m.UpdatedAt = time.Now().UTC()
		if err := maps.Update(ctx, m); err != nil {
			return err
		}
		if err := s.push(ctx, hist, stack, mapID, root, description); err != nil {
			return err
		}
		out = m
		return nil
	})
	return out, err
}

// travel moves the history cursor with step and restores that snapshot.
func (s mapStore) travel(ctx context.Context, mapID string, step func(*history.Stack) (history.Entry, bool), none error) (*domain.Map, error) {
	var out *domain.Map
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		maps := repository.NewSQLiteMapRepo(tx)
		hist := repository.NewSQLiteHistoryRepo(tx)

		m, err := maps.GetByID(ctx, mapID)
		if err != nil {
			return err
		}
		stack, err := s.loadStack(ctx, hist, mapID)
		if err != nil {
			return err
		}
		entry, ok := step(stack)
		if !ok {
			return none
		}
		env, err := mapfile.Deserialize(entry.Snapshot)
		if err != nil {
			return fmt.Errorf("restoring snapshot %q: %w", entry.Description, err)
		}
		m.Root = env.Root
		m.Title = env.Root.Topic
		m.UpdatedAt = time.Now().UTC()
		if err := maps.Update(ctx, m); err != nil {
			return err
		}
		if err := hist.SetCursor(ctx, mapID, stack.Cursor()); err != nil {
			return err
		}
		out = m
		return nil
	})
	return out, err
}

func (s mapStore) loadStack(ctx context.Context, hist repository.HistoryRepo, mapID string) (*history.Stack, error) {
	entries, err := hist.List(ctx, mapID)
	if err != nil {
		return nil, err
	}
	cursor, err := hist.Cursor(ctx, mapID)
	if err != nil {
		return nil, err
	}
	return history.Restore(entries, cursor, s.historyLimit), nil
}

// push records root as the newest entry and writes the change through to
// the history table.
func (s mapStore) push(ctx context.Context, hist repository.HistoryRepo, stack *history.Stack, mapID string, root *domain.Node, description string) error {
	snapshot, err := mapfile.Serialize(root)
	if err != nil {
		return err
	}
	entry := history.Entry{Snapshot: snapshot, Description: description, At: time.Now().UTC()}

	prev := stack.Cursor()
	if dropped := stack.Push(entry); dropped > 0 {
		if err := hist.Truncate(ctx, mapID, 0); err != nil {
			return err
		}
		for i, e := range stack.Entries() {
			if err := hist.Append(ctx, mapID, i, e); err != nil {
				return err
			}
		}
	} else {
		if err := hist.Truncate(ctx, mapID, prev+1); err != nil {
			return err
		}
		if err := hist.Append(ctx, mapID, stack.Cursor(), entry); err != nil {
			return err
		}
	}
	return hist.SetCursor(ctx, mapID, stack.Cursor())
}

func findNode(root *domain.Node, id string) (*domain.Node, error) {
	n := domain.Find(root, id)
	if n == nil {
		return nil, fmt.Errorf("node %s: %w", id, ErrNodeNotFound)
	}
	return n, nil
}
