package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/spf13/pflag"
)

// parseDateArg accepts YYYY-MM-DD or DD-MMM-YYYY.
func parseDateArg(s string) (datecalc.Date, error) {
	s = strings.TrimSpace(s)
	d, err := datecalc.ParseISODate(s)
	if err == nil || errors.Is(err, datecalc.ErrInvalidDate) {
		return d, err
	}
	if d, err := datecalc.ParseDisplay(s); err == nil {
		return d, nil
	}
	return datecalc.Date{}, fmt.Errorf("%w: %q (use YYYY-MM-DD or DD-MMM-YYYY)", datecalc.ErrMalformedDate, s)
}

// dateValue is a pflag.Value holding an optional date. An empty argument
// clears it.
type dateValue struct {
	date *datecalc.Date
}

var _ pflag.Value = (*dateValue)(nil)

func (v *dateValue) String() string {
	if v.date == nil {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		v.date = nil
		return nil
	}
	d, err := parseDateArg(s)
	if err != nil {
		return err
	}
	v.date = &d
	return nil
}

func (v *dateValue) Type() string { return "date" }

// parseStatus matches s against the plan statuses ignoring case and
// separators, so "in-progress" selects "In Progress". Unknown values are
// returned unchanged for validation to reject.
func parseStatus(s string) domain.PlanStatus {
	norm := func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		return strings.NewReplacer("-", " ", "_", " ").Replace(v)
	}
	want := norm(s)
	for _, opt := range domain.PlanStatusOptions {
		if norm(string(opt)) == want {
			return opt
		}
	}
	return domain.PlanStatus(s)
}

// planFieldFlags maps --clear names to plan fields.
var planFieldFlags = map[string]domain.PlanField{
	"start":    domain.FieldStartDate,
	"due":      domain.FieldDueDate,
	"invested": domain.FieldInvestedTime,
	"elapsed":  domain.FieldElapsedTime,
	"assignee": domain.FieldAssignee,
	"status":   domain.FieldStatus,
}
