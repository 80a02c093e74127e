package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()

	sub, err := svc.maps.AddNode(ctx, m.ID, task.ID, "Review", -1)
	require.NoError(t, err)
	_, err = svc.plans.EditPlan(ctx, m.ID, sub.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{InvestedTimeHours: ptr(1.5)}, domain.FieldInvestedTime),
	})
	require.NoError(t, err)

	rows, err := svc.exports.Rows(ctx, m.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Release > Write docs", rows[2].ParentPath)

	level2, err := svc.exports.Rows(ctx, m.ID, ptr(2))
	require.NoError(t, err)
	require.Len(t, level2, 1)
	assert.Equal(t, sub.ID, level2[0].ID)

	var csvOut bytes.Buffer
	require.NoError(t, svc.exports.WriteCSV(ctx, m.ID, &csvOut, export.CSVOptions{}))
	assert.Equal(t, 4, strings.Count(csvOut.String(), "\r\n"))
	assert.Contains(t, csvOut.String(), ",1.5,")

	var htmlOut bytes.Buffer
	require.NoError(t, svc.exports.WriteHTML(ctx, m.ID, &htmlOut, ""))
	assert.Contains(t, htmlOut.String(), "<h1>Action Plan</h1>")
}
