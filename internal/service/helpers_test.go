package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/repository"
	"github.com/alexanderramin/mindplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db      *sql.DB
	maps    MapService
	plans   *planService
	exports ExportService
}

func setupServices(t *testing.T) testServices {
	t.Helper()
	return setupServicesWithUoW(t, nil, DefaultHistoryLimit)
}

func setupServicesWithUoW(t *testing.T, uow db.UnitOfWork, limit int) testServices {
	t.Helper()
	conn := testutil.NewTestDB(t)
	if uow == nil {
		uow = testutil.NewTestUoW(conn)
	}
	mapRepo := repository.NewSQLiteMapRepo(conn)
	histRepo := repository.NewSQLiteHistoryRepo(conn)
	return testServices{
		db:      conn,
		maps:    NewMapService(mapRepo, histRepo, uow, limit),
		plans:   NewPlanService(mapRepo, uow, limit, nil).(*planService),
		exports: NewExportService(mapRepo),
	}
}

func mustDate(t *testing.T, s string) *datecalc.Date {
	t.Helper()
	d, err := datecalc.ParseISODate(s)
	require.NoError(t, err)
	return &d
}

func ptr[T any](v T) *T { return &v }

func patch(values domain.PlanAttributes, fields ...domain.PlanField) domain.PlanPatch {
	return domain.PlanPatch{Values: values, Set: fields}
}
