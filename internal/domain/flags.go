package domain

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/mindplan/internal/datecalc"
)

type StatusFlags struct {
	HasStatus    bool
	Status       PlanStatus
	IsNotStarted bool
	IsInProgress bool
	IsCompleted  bool
}

type OverdueFlags struct {
	IsOverdue   bool
	DueDate     *datecalc.Date
	DaysOverdue int
}

type AssigneeFlags struct {
	HasAssignee bool
	Assignee    string
	Initials    string
}

type TimeFlags struct {
	HasTimeTracking   bool
	InvestedTimeHours *float64
	ElapsedTimeDays   *int
	HasInvestedTime   bool
	HasElapsedTime    bool
}

// PlanFlags bundles every derived indicator for one plan.
type PlanFlags struct {
	Status   StatusFlags
	Overdue  OverdueFlags
	Assignee AssigneeFlags
	Time     TimeFlags
}

func StatusFlagsOf(p PlanAttributes) StatusFlags {
	if p.Status == nil || *p.Status == "" {
		return StatusFlags{}
	}
	s := *p.Status
	return StatusFlags{
		HasStatus:    true,
		Status:       s,
		IsNotStarted: s == StatusNotStarted,
		IsInProgress: s == StatusInProgress,
		IsCompleted:  s == StatusCompleted,
	}
}

// OverdueFlagsOf marks a plan overdue when its due date is before today and
// it is not Completed.
func OverdueFlagsOf(p PlanAttributes, today datecalc.Date) OverdueFlags {
	if p.DueDate == nil {
		return OverdueFlags{}
	}
	completed := p.Status != nil && *p.Status == StatusCompleted
	f := OverdueFlags{DueDate: p.DueDate}
	if p.DueDate.Before(today) && !completed {
		f.IsOverdue = true
		f.DaysOverdue = datecalc.CountCalendarDays(*p.DueDate, today)
	}
	return f
}

// AssigneeFlagsOf derives up to two upper-case initials from the assignee.
func AssigneeFlagsOf(p PlanAttributes) AssigneeFlags {
	if p.Assignee == nil || *p.Assignee == "" {
		return AssigneeFlags{}
	}
	return AssigneeFlags{
		HasAssignee: true,
		Assignee:    *p.Assignee,
		Initials:    Initials(*p.Assignee),
	}
}

// Initials returns the first letter of up to two words of name, upper-cased.
// A blank name yields "?".
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

func TimeFlagsOf(p PlanAttributes) TimeFlags {
	f := TimeFlags{
		InvestedTimeHours: p.InvestedTimeHours,
		ElapsedTimeDays:   p.ElapsedTimeDays,
		HasInvestedTime:   p.InvestedTimeHours != nil,
		HasElapsedTime:    p.ElapsedTimeDays != nil,
	}
	f.HasTimeTracking = f.HasInvestedTime || f.HasElapsedTime
	return f
}

// FlagsOf computes all flags for p as of today.
func FlagsOf(p PlanAttributes, today datecalc.Date) PlanFlags {
	return PlanFlags{
		Status:   StatusFlagsOf(p),
		Overdue:  OverdueFlagsOf(p, today),
		Assignee: AssigneeFlagsOf(p),
		Time:     TimeFlagsOf(p),
	}
}
