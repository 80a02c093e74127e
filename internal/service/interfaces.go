package service

import (
	"context"
	"io"

	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/export"
)

type MapService interface {
	Create(ctx context.Context, title string) (*domain.Map, error)
	// Import loads a save file and stores it as a new map.
	Import(ctx context.Context, path string) (*domain.Map, error)
	// ExportJSON returns the map in save-file form.
	ExportJSON(ctx context.Context, id string) ([]byte, error)
	SaveFile(ctx context.Context, id, path string) error
	Get(ctx context.Context, id string) (*domain.Map, error)
	List(ctx context.Context) ([]*domain.Map, error)
	Delete(ctx context.Context, id string) error
	Undo(ctx context.Context, id string) (*domain.Map, error)
	Redo(ctx context.Context, id string) (*domain.Map, error)
	History(ctx context.Context, id string) (*HistoryView, error)

	AddNode(ctx context.Context, mapID, parentID, topic string, index int) (*domain.Node, error)
	RenameNode(ctx context.Context, mapID, nodeID, topic string) error
	RemoveNode(ctx context.Context, mapID, nodeID string) error
	// MoveNode reorders a node among its siblings. index is clamped.
	MoveNode(ctx context.Context, mapID, nodeID string, index int) error
}

type PlanService interface {
	EditPlan(ctx context.Context, mapID, nodeID string, edit PlanEdit) (*PlanView, error)
	ClearPlan(ctx context.Context, mapID, nodeID string) error
	GetPlan(ctx context.Context, mapID, nodeID string) (*PlanView, error)
}

type ExportService interface {
	// Rows flattens the map. A non-nil depth keeps only rows at that depth.
	Rows(ctx context.Context, mapID string, depth *int) ([]export.Row, error)
	WriteCSV(ctx context.Context, mapID string, w io.Writer, opts export.CSVOptions) error
	WriteHTML(ctx context.Context, mapID string, w io.Writer, title string) error
}
