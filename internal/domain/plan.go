package domain

import (
	"slices"

	"github.com/alexanderramin/mindplan/internal/datecalc"
)

// PlanAttributes are the planning fields stored under node.extended.plan.
// Every field is optional; nil means "not set".
type PlanAttributes struct {
	StartDate         *datecalc.Date `json:"startDate"`
	DueDate           *datecalc.Date `json:"dueDate"`
	InvestedTimeHours *float64       `json:"investedTimeHours"`
	ElapsedTimeDays   *int           `json:"elapsedTimeDays"`
	Assignee          *string        `json:"assignee"`
	Status            *PlanStatus    `json:"status"`

	problems []fieldProblem
}

// PlanPatch overwrites the fields listed in Set with the matching values.
// Listing a field whose value is nil clears it.
type PlanPatch struct {
	Values PlanAttributes
	Set    []PlanField
}

// Has reports whether f is part of the patch.
func (p PlanPatch) Has(f PlanField) bool {
	return slices.Contains(p.Set, f)
}

// Apply returns plan with the patched fields replaced.
func (p PlanPatch) Apply(plan PlanAttributes) PlanAttributes {
	out := plan
	out.problems = nil
	for _, pr := range plan.problems {
		if !p.Has(pr.field) {
			out.problems = append(out.problems, pr)
		}
	}
	for _, f := range p.Set {
		switch f {
		case FieldStartDate:
			out.StartDate = p.Values.StartDate
		case FieldDueDate:
			out.DueDate = p.Values.DueDate
		case FieldInvestedTime:
			out.InvestedTimeHours = p.Values.InvestedTimeHours
		case FieldElapsedTime:
			out.ElapsedTimeDays = p.Values.ElapsedTimeDays
		case FieldAssignee:
			out.Assignee = p.Values.Assignee
		case FieldStatus:
			out.Status = p.Values.Status
		}
	}
	return out
}

// PlanOf returns the node's plan, or an all-nil plan when none is set.
func PlanOf(n *Node) PlanAttributes {
	if n == nil || n.Extended == nil || n.Extended.Plan == nil {
		return PlanAttributes{}
	}
	return *n.Extended.Plan
}

// SetPlan merges patch into the node's plan, creating the extended
// namespace when missing.
func SetPlan(n *Node, patch PlanPatch) {
	merged := patch.Apply(PlanOf(n))
	if n.Extended == nil {
		n.Extended = &Extended{}
	}
	n.Extended.Plan = &merged
}

// ClearPlan resets every plan field of n to nil.
func ClearPlan(n *Node) {
	if n.Extended != nil && n.Extended.Plan != nil {
		n.Extended.Plan = &PlanAttributes{}
	}
}

// HasPlanData reports whether any plan field of n is set.
func HasPlanData(n *Node) bool {
	p := PlanOf(n)
	return p.StartDate != nil || p.DueDate != nil ||
		p.InvestedTimeHours != nil || p.ElapsedTimeDays != nil ||
		p.Assignee != nil || p.Status != nil
}
