package service

import (
	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
)

// derivePlan applies the edit to before and recomputes the one field made
// stale by it:
//
//   - dates edited and both present: elapsed follows the dates;
//   - elapsed edited alone, or with one date: the missing or unedited date
//     follows, preferring to keep the start date fixed.
//
// It returns the fields it derived.
func derivePlan(before domain.PlanAttributes, edit PlanEdit) (domain.PlanAttributes, []domain.PlanField, error) {
	p := edit.Patch
	after := p.Apply(before)
	exclude := edit.ExcludeWeekends

	startEdited := p.Has(domain.FieldStartDate)
	dueEdited := p.Has(domain.FieldDueDate)
	elapsedEdited := p.Has(domain.FieldElapsedTime)

	if elapsedEdited && after.ElapsedTimeDays != nil && !(startEdited && dueEdited) {
		switch {
		case dueEdited && after.DueDate != nil:
			start, err := datecalc.DeriveStartDate(after.DueDate, after.ElapsedTimeDays, exclude)
			if err != nil {
				return before, nil, err
			}
			after.StartDate = start
			return after, []domain.PlanField{domain.FieldStartDate}, nil
		case after.StartDate != nil:
			due, err := datecalc.DeriveDueDate(after.StartDate, after.ElapsedTimeDays, exclude)
			if err != nil {
				return before, nil, err
			}
			after.DueDate = due
			return after, []domain.PlanField{domain.FieldDueDate}, nil
		case after.DueDate != nil:
			start, err := datecalc.DeriveStartDate(after.DueDate, after.ElapsedTimeDays, exclude)
			if err != nil {
				return before, nil, err
			}
			after.StartDate = start
			return after, []domain.PlanField{domain.FieldStartDate}, nil
		}
		return after, nil, nil
	}

	if (startEdited || dueEdited) && after.StartDate != nil && after.DueDate != nil {
		after.ElapsedTimeDays = datecalc.DeriveElapsedDays(after.StartDate, after.DueDate, exclude)
		return after, []domain.PlanField{domain.FieldElapsedTime}, nil
	}
	return after, nil, nil
}
