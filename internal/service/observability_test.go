package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/alexanderramin/mindplan/internal/repository"
	"github.com/alexanderramin/mindplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "edit-plan",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"map_id": "m1"},
	})
	out := buf.String()
	assert.Contains(t, out, "use_case=edit-plan")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "map_id=m1")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestContextUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.NewJSONLogger(context.Background(), &buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	NewContextUseCaseObserver().ObserveUseCase(ctx, UseCaseEvent{
		Name: "undo",
		Err:  errors.New("nothing to undo"),
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "undo", record["use_case"])
	assert.Equal(t, "nothing to undo", record["error"])

	// No logger in the context: the event is dropped.
	NewContextUseCaseObserver().ObserveUseCase(context.Background(), UseCaseEvent{Name: "undo"})
}

func TestServicesReportUseCases(t *testing.T) {
	var buf bytes.Buffer
	svc := setupServices(t)
	maps := NewMapService(
		repository.NewSQLiteMapRepo(svc.db),
		repository.NewSQLiteHistoryRepo(svc.db),
		testutil.NewTestUoW(svc.db),
		DefaultHistoryLimit,
		NewLogUseCaseObserver(&buf),
	)

	m, err := maps.Create(context.Background(), "Observed")
	require.NoError(t, err)
	_, err = maps.Undo(context.Background(), m.ID)
	require.ErrorIs(t, err, ErrNothingToUndo)

	out := buf.String()
	assert.Contains(t, out, "use_case=create-map")
	assert.Contains(t, out, "map_id="+m.ID)
	assert.Contains(t, out, `error="nothing to undo"`)
}
