package service

import (
	"context"
	"io"

	"github.com/alexanderramin/mindplan/internal/export"
	"github.com/alexanderramin/mindplan/internal/repository"
)

type exportService struct {
	maps     repository.MapRepo
	observer UseCaseObserver
}

func NewExportService(maps repository.MapRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{maps: maps, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Rows(ctx context.Context, mapID string, depth *int) ([]export.Row, error) {
	m, err := s.maps.GetByID(ctx, mapID)
	if err != nil {
		return nil, err
	}
	rows := export.Flatten(m.Root)
	if depth == nil {
		return rows, nil
	}
	filtered := rows[:0]
	for _, r := range rows {
		if r.Depth == *depth {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *exportService) WriteCSV(ctx context.Context, mapID string, w io.Writer, opts export.CSVOptions) (err error) {
	fields := map[string]any{"map_id": mapID, "format": "csv"}
	done := observe(ctx, s.observer, "export", fields)
	defer func() { done(err) }()

	rows, err := s.Rows(ctx, mapID, nil)
	if err != nil {
		return err
	}
	fields["rows"] = len(rows)
	return export.WriteCSV(w, rows, opts)
}

func (s *exportService) WriteHTML(ctx context.Context, mapID string, w io.Writer, title string) (err error) {
	fields := map[string]any{"map_id": mapID, "format": "html"}
	done := observe(ctx, s.observer, "export", fields)
	defer func() { done(err) }()

	rows, err := s.Rows(ctx, mapID, nil)
	if err != nil {
		return err
	}
	fields["rows"] = len(rows)
	return export.WriteHTML(w, rows, title)
}
