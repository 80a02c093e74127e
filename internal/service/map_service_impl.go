package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/history"
	"github.com/alexanderramin/mindplan/internal/mapfile"
	"github.com/alexanderramin/mindplan/internal/repository"
	"github.com/google/uuid"
)

// HistoryItem is one undo step as shown to the user.
type HistoryItem struct {
	Description string
	At          time.Time
	Current     bool
}

type HistoryView struct {
	Items   []HistoryItem
	CanUndo bool
	CanRedo bool
}

type mapService struct {
	maps     repository.MapRepo
	history  repository.HistoryRepo
	store    mapStore
	observer UseCaseObserver
}

func NewMapService(
	maps repository.MapRepo,
	hist repository.HistoryRepo,
	uow db.UnitOfWork,
	historyLimit int,
	observers ...UseCaseObserver,
) MapService {
	return &mapService{
		maps:     maps,
		history:  hist,
		store:    mapStore{uow: uow, historyLimit: historyLimit},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *mapService) Create(ctx context.Context, title string) (m *domain.Map, err error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.DefaultMapTitle
	}
	fields := map[string]any{"title": title}
	done := observe(ctx, s.observer, "create-map", fields)
	defer func() { done(err) }()

	now := time.Now().UTC()
	m = &domain.Map{
		ID:        uuid.New().String(),
		Title:     title,
		Version:   domain.SchemaVersion,
		Root:      &domain.Node{ID: mapfile.NewNodeID(), Topic: title},
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields["map_id"] = m.ID
	if err = s.store.create(ctx, m, "create map"); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mapService) Import(ctx context.Context, path string) (m *domain.Map, err error) {
	fields := map[string]any{"path": path}
	done := observe(ctx, s.observer, "import-map", fields)
	defer func() { done(err) }()

	env, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}
	if err = mapfile.Validate(env); err != nil {
		return nil, fmt.Errorf("validating %s:\n%w", filepath.Base(path), err)
	}
	if strings.TrimSpace(env.Root.Topic) == "" {
		env.Root.Topic = domain.DefaultMapTitle
	}

	now := time.Now().UTC()
	m = &domain.Map{
		ID:        uuid.New().String(),
		Title:     env.Root.Topic,
		Version:   env.Version,
		Root:      env.Root,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields["map_id"] = m.ID
	fields["node_count"] = domain.Count(m.Root)
	if err = s.store.create(ctx, m, "import "+filepath.Base(path)); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mapService) ExportJSON(ctx context.Context, id string) ([]byte, error) {
	m, err := s.maps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapfile.Serialize(m.Root)
}

func (s *mapService) SaveFile(ctx context.Context, id, path string) (err error) {
	done := observe(ctx, s.observer, "save-map", map[string]any{"map_id": id, "path": path})
	defer func() { done(err) }()

	m, err := s.maps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return mapfile.Save(path, m.Root)
}

func (s *mapService) Get(ctx context.Context, id string) (*domain.Map, error) {
	return s.maps.GetByID(ctx, id)
}

func (s *mapService) List(ctx context.Context) ([]*domain.Map, error) {
	return s.maps.List(ctx)
}

func (s *mapService) Delete(ctx context.Context, id string) (err error) {
	done := observe(ctx, s.observer, "delete-map", map[string]any{"map_id": id})
	defer func() { done(err) }()
	return s.maps.Delete(ctx, id)
}

func (s *mapService) Undo(ctx context.Context, id string) (m *domain.Map, err error) {
	done := observe(ctx, s.observer, "undo", map[string]any{"map_id": id})
	defer func() { done(err) }()
	return s.store.travel(ctx, id, (*history.Stack).Undo, ErrNothingToUndo)
}

func (s *mapService) Redo(ctx context.Context, id string) (m *domain.Map, err error) {
	done := observe(ctx, s.observer, "redo", map[string]any{"map_id": id})
	defer func() { done(err) }()
	return s.store.travel(ctx, id, (*history.Stack).Redo, ErrNothingToRedo)
}

func (s *mapService) History(ctx context.Context, id string) (*HistoryView, error) {
	stack, err := s.store.loadStack(ctx, s.history, id)
	if err != nil {
		return nil, err
	}
	view := &HistoryView{CanUndo: stack.CanUndo(), CanRedo: stack.CanRedo()}
	for i, e := range stack.Entries() {
		view.Items = append(view.Items, HistoryItem{
			Description: e.Description,
			At:          e.At,
			Current:     i == stack.Cursor(),
		})
	}
	return view, nil
}

func (s *mapService) AddNode(ctx context.Context, mapID, parentID, topic string, index int) (node *domain.Node, err error) {
	done := observe(ctx, s.observer, "add-node", map[string]any{"map_id": mapID, "parent_id": parentID})
	defer func() { done(err) }()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	node = &domain.Node{ID: mapfile.NewNodeID(), Topic: topic}
	_, err = s.store.mutate(ctx, mapID, "add "+topic, func(root *domain.Node) (*domain.Node, error) {
		if !domain.AddChild(root, parentID, node, index) {
			return nil, fmt.Errorf("parent %s: %w", parentID, ErrNodeNotFound)
		}
		return root, nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (s *mapService) RenameNode(ctx context.Context, mapID, nodeID, topic string) (err error) {
	done := observe(ctx, s.observer, "rename-node", map[string]any{"map_id": mapID, "node_id": nodeID})
	defer func() { done(err) }()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}
	_, err = s.store.mutate(ctx, mapID, "rename to "+topic, func(root *domain.Node) (*domain.Node, error) {
		n, err := findNode(root, nodeID)
		if err != nil {
			return nil, err
		}
		n.Topic = topic
		return root, nil
	})
	return err
}

func (s *mapService) RemoveNode(ctx context.Context, mapID, nodeID string) (err error) {
	done := observe(ctx, s.observer, "remove-node", map[string]any{"map_id": mapID, "node_id": nodeID})
	defer func() { done(err) }()

	_, err = s.store.mutate(ctx, mapID, "remove node", func(root *domain.Node) (*domain.Node, error) {
		if root.ID == nodeID {
			return nil, ErrRootNode
		}
		if !domain.RemoveNode(root, nodeID) {
			return nil, fmt.Errorf("node %s: %w", nodeID, ErrNodeNotFound)
		}
		return root, nil
	})
	return err
}

func (s *mapService) MoveNode(ctx context.Context, mapID, nodeID string, index int) (err error) {
	fields := map[string]any{"map_id": mapID, "node_id": nodeID, "index": index}
	done := observe(ctx, s.observer, "move-node", fields)
	defer func() { done(err) }()

	_, err = s.store.mutate(ctx, mapID, "move node", func(root *domain.Node) (*domain.Node, error) {
		node, parent := domain.FindWithParent(root, nodeID)
		switch {
		case node == nil:
			return nil, fmt.Errorf("node %s: %w", nodeID, ErrNodeNotFound)
		case parent == nil:
			return nil, ErrRootNode
		}
		moved, ok := domain.MoveNodeToPosition(root, nodeID, parent.ID, index)
		if !ok {
			return nil, fmt.Errorf("moving node %s failed", nodeID)
		}
		return moved, nil
	})
	return err
}
