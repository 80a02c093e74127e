// Package export turns a mind-map tree into flat rows and renders them as
// CSV or as a standalone HTML table.
package export

import (
	"strings"

	"github.com/alexanderramin/mindplan/internal/domain"
)

// Row is one node of the tree with its plan fields and ancestry.
type Row struct {
	ID                string
	Depth             int
	Title             string
	StartDate         *string
	DueDate           *string
	InvestedTimeHours *float64
	ElapsedTimeDays   *int
	Assignee          *string
	Status            *string
	// ParentPath joins the ancestor topics with " > ". It is empty for the
	// root row.
	ParentPath string
}

// Headers are the column titles shared by every export format.
var Headers = []string{
	"ID",
	"Depth",
	"Title",
	"Start Date",
	"Due Date",
	"Invested Time (hours)",
	"Elapsed Time (days)",
	"Assignee",
	"Status",
	"Parent Path",
}

// Flatten lists every node of root in depth-first pre-order.
func Flatten(root *domain.Node) []Row {
	var rows []Row
	var ancestors []string
	var visit func(n *domain.Node, depth int)
	visit = func(n *domain.Node, depth int) {
		rows = append(rows, rowFor(n, depth, strings.Join(ancestors, domain.PathSeparator)))
		ancestors = append(ancestors, n.Topic)
		for _, c := range n.Children {
			visit(c, depth+1)
		}
		ancestors = ancestors[:len(ancestors)-1]
	}
	if root != nil {
		visit(root, 0)
	}
	return rows
}

func rowFor(n *domain.Node, depth int, parentPath string) Row {
	p := domain.PlanOf(n)
	r := Row{
		ID:                n.ID,
		Depth:             depth,
		Title:             n.Topic,
		InvestedTimeHours: p.InvestedTimeHours,
		ElapsedTimeDays:   p.ElapsedTimeDays,
		Assignee:          p.Assignee,
		ParentPath:        parentPath,
	}
	if p.StartDate != nil {
		s := p.StartDate.String()
		r.StartDate = &s
	}
	if p.DueDate != nil {
		s := p.DueDate.String()
		r.DueDate = &s
	}
	if p.Status != nil {
		s := string(*p.Status)
		r.Status = &s
	}
	return r
}

// SameIDs reports whether a and b list the same node ids in the same order.
func SameIDs(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
