package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPlanMap(t *testing.T) (testServices, *domain.Map, *domain.Node) {
	t.Helper()
	svc := setupServices(t)
	ctx := context.Background()
	m, err := svc.maps.Create(ctx, "Release")
	require.NoError(t, err)
	task, err := svc.maps.AddNode(ctx, m.ID, m.Root.ID, "Write docs", -1)
	require.NoError(t, err)
	return svc, m, task
}

func TestPlanService_EditDerivesElapsed(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()

	_, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{StartDate: mustDate(t, "2026-01-01")}, domain.FieldStartDate),
	})
	require.NoError(t, err)

	view, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch:           patch(domain.PlanAttributes{DueDate: mustDate(t, "2026-01-09")}, domain.FieldDueDate),
		ExcludeWeekends: true,
	})
	require.NoError(t, err)
	require.NotNil(t, view.Plan.ElapsedTimeDays)
	assert.Equal(t, 6, *view.Plan.ElapsedTimeDays)
	assert.Equal(t, []domain.PlanField{domain.FieldElapsedTime}, view.Derived)
	assert.Equal(t, []string{"Release", "Write docs"}, view.Path)

	stored, err := svc.plans.GetPlan(ctx, m.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, *stored.Plan.ElapsedTimeDays)
	assert.Equal(t, "2026-01-01", stored.Plan.StartDate.String())
}

func TestPlanService_EditElapsedDerivesDue(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()

	view, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{
			StartDate:       mustDate(t, "2026-01-01"),
			ElapsedTimeDays: ptr(8),
		}, domain.FieldStartDate, domain.FieldElapsedTime),
	})
	require.NoError(t, err)
	require.NotNil(t, view.Plan.DueDate)
	assert.Equal(t, "2026-01-09", view.Plan.DueDate.String())
}

func TestPlanService_RejectsInvalidInput(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()

	_, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{
			StartDate:       mustDate(t, "2026-01-01"),
			ElapsedTimeDays: ptr(-2),
		}, domain.FieldStartDate, domain.FieldElapsedTime),
	})
	require.ErrorIs(t, err, ErrInvalidPlan)
	assert.Contains(t, err.Error(), "Elapsed Time must be non-negative")

	_, err = svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{Status: ptr(domain.PlanStatus("Blocked"))}, domain.FieldStatus),
	})
	require.ErrorIs(t, err, ErrInvalidPlan)

	view, err := svc.plans.GetPlan(ctx, m.ID, task.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Plan.StartDate, "rejected edits are not stored")
}

func TestPlanService_StartAfterDueWarns(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()

	view, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{
			StartDate: mustDate(t, "2026-02-10"),
			DueDate:   mustDate(t, "2026-02-01"),
		}, domain.FieldStartDate, domain.FieldDueDate),
		ExcludeWeekends: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Start date is after due date"}, view.Warnings)
	assert.Equal(t, 0, *view.Plan.ElapsedTimeDays)
}

func TestPlanService_ClearAndUndo(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()

	_, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{Assignee: ptr("Ana Lopez")}, domain.FieldAssignee),
	})
	require.NoError(t, err)
	require.NoError(t, svc.plans.ClearPlan(ctx, m.ID, task.ID))

	view, err := svc.plans.GetPlan(ctx, m.ID, task.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Plan.Assignee)

	_, err = svc.maps.Undo(ctx, m.ID)
	require.NoError(t, err)
	view, err = svc.plans.GetPlan(ctx, m.ID, task.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Plan.Assignee)
	assert.Equal(t, "AL", view.Flags.Assignee.Initials)
}

func TestPlanService_GetPlanFlags(t *testing.T) {
	svc, m, task := setupPlanMap(t)
	ctx := context.Background()
	svc.plans.today = func() datecalc.Date { return *mustDate(t, "2026-04-10") }

	_, err := svc.plans.EditPlan(ctx, m.ID, task.ID, PlanEdit{
		Patch: patch(domain.PlanAttributes{
			DueDate: mustDate(t, "2026-04-01"),
			Status:  ptr(domain.StatusInProgress),
		}, domain.FieldDueDate, domain.FieldStatus),
	})
	require.NoError(t, err)

	view, err := svc.plans.GetPlan(ctx, m.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, view.Flags.Overdue.IsOverdue)
	assert.Equal(t, 9, view.Flags.Overdue.DaysOverdue)
	assert.True(t, view.Flags.Status.IsInProgress)

	_, err = svc.plans.GetPlan(ctx, m.ID, "missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}
