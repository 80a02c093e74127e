package cli

import (
	"testing"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFormValuesOf(t *testing.T) {
	start, err := datecalc.ParseISODate("2026-01-05")
	require.NoError(t, err)
	hours := 1.5
	days := 3
	name := "Ada"
	status := domain.StatusCompleted

	v := planFormValuesOf(domain.PlanAttributes{
		StartDate:         &start,
		InvestedTimeHours: &hours,
		ElapsedTimeDays:   &days,
		Assignee:          &name,
		Status:            &status,
	})
	assert.Equal(t, planFormValues{
		Start:    "2026-01-05",
		Invested: "1.5",
		Elapsed:  "3",
		Assignee: "Ada",
		Status:   "Completed",
	}, v)
	assert.Equal(t, planFormValues{}, planFormValuesOf(domain.PlanAttributes{}))
}

func TestPlanFormPatch_OnlyChangedFields(t *testing.T) {
	before := planFormValues{Start: "2026-01-05", Due: "2026-01-09", Elapsed: "4", Assignee: "Ada"}

	patch, err := planFormPatch(before, before)
	require.NoError(t, err)
	assert.Empty(t, patch.Set)

	after := before
	after.Elapsed = " 6 "
	after.Assignee = ""
	after.Status = "In Progress"
	patch, err = planFormPatch(before, after)
	require.NoError(t, err)
	assert.Equal(t, []domain.PlanField{domain.FieldElapsedTime, domain.FieldAssignee, domain.FieldStatus}, patch.Set)
	require.NotNil(t, patch.Values.ElapsedTimeDays)
	assert.Equal(t, 6, *patch.Values.ElapsedTimeDays)
	assert.Nil(t, patch.Values.Assignee)
	require.NotNil(t, patch.Values.Status)
	assert.Equal(t, domain.StatusInProgress, *patch.Values.Status)
}

func TestPlanFormPatch_DatesAndClearing(t *testing.T) {
	before := planFormValues{Start: "2026-01-05", Invested: "2"}
	after := planFormValues{Start: "", Due: "2026-02-01", Invested: ""}

	patch, err := planFormPatch(before, after)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.PlanField{domain.FieldStartDate, domain.FieldDueDate, domain.FieldInvestedTime}, patch.Set)
	assert.Nil(t, patch.Values.StartDate)
	require.NotNil(t, patch.Values.DueDate)
	assert.Equal(t, "2026-02-01", patch.Values.DueDate.String())
	assert.Nil(t, patch.Values.InvestedTimeHours)
}

func TestPlanFormPatch_Errors(t *testing.T) {
	_, err := planFormPatch(planFormValues{}, planFormValues{Due: "09/01/2026"})
	assert.ErrorIs(t, err, datecalc.ErrMalformedDate)

	_, err = planFormPatch(planFormValues{}, planFormValues{Invested: "lots"})
	assert.ErrorContains(t, err, "invested time must be a number")

	_, err = planFormPatch(planFormValues{}, planFormValues{Elapsed: "1.5"})
	assert.ErrorContains(t, err, "whole number")
}

func TestValidateNumber(t *testing.T) {
	hours := validateNumber(true)
	assert.NoError(t, hours(""))
	assert.NoError(t, hours("2.5"))
	assert.EqualError(t, hours("-1"), "must be non-negative")
	assert.EqualError(t, hours("x"), "must be a number")

	days := validateNumber(false)
	assert.NoError(t, days("3"))
	assert.EqualError(t, days("1.5"), "must be a number")
}

func TestPlanEditForm_Builds(t *testing.T) {
	v := planFormValues{}
	assert.NotNil(t, planEditForm("Build", &v))
}
