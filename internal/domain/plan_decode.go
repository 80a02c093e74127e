package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/alexanderramin/mindplan/internal/datecalc"
)

// fieldProblem is a plan value that could not be decoded. The field is left
// nil and the message is reported by ValidatePlan.
type fieldProblem struct {
	field PlanField
	msg   string
}

// UnmarshalJSON decodes plan fields one at a time so that a bad value in one
// field neither hides the others nor fails the whole document. Values that do
// not fit their field are recorded and surface as validation errors.
func (p *PlanAttributes) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PlanAttributes{}
	for _, f := range PlanFields {
		v, ok := raw[string(f)]
		if !ok || string(v) == "null" {
			continue
		}
		if msg := p.decodeField(f, v); msg != "" {
			p.problems = append(p.problems, fieldProblem{field: f, msg: msg})
		}
	}
	return nil
}

func (p *PlanAttributes) decodeField(f PlanField, v json.RawMessage) string {
	label := fieldLabels[f]
	switch f {
	case FieldStartDate, FieldDueDate:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return label + " must be a date string"
		}
		if s == "" {
			return ""
		}
		d, err := datecalc.ParseISODate(s)
		if err != nil {
			return fmt.Sprintf("%s %q is not a valid YYYY-MM-DD date", label, s)
		}
		if f == FieldStartDate {
			p.StartDate = &d
		} else {
			p.DueDate = &d
		}
	case FieldInvestedTime:
		var h float64
		if err := json.Unmarshal(v, &h); err != nil {
			return label + " must be a number"
		}
		p.InvestedTimeHours = &h
	case FieldElapsedTime:
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			return label + " must be a number"
		}
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return fmt.Sprintf("%s must be a whole number of days (got %v)", label, n)
		}
		days := int(n)
		p.ElapsedTimeDays = &days
	case FieldAssignee:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return label + " must be a string"
		}
		p.Assignee = &s
	case FieldStatus:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return label + " must be a string"
		}
		st := PlanStatus(s)
		p.Status = &st
	}
	return ""
}

var fieldLabels = map[PlanField]string{
	FieldStartDate:    "Start Date",
	FieldDueDate:      "Due Date",
	FieldInvestedTime: "Invested Time",
	FieldElapsedTime:  "Elapsed Time",
	FieldAssignee:     "Assignee",
	FieldStatus:       "Status",
}
