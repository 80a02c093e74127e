package formatter

import (
	"strings"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one rendered line of a map tree.
type TreeItem struct {
	Prefix string
	Title  string
	Status *domain.PlanStatus
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeSpace  = "   "
)

// MapTreeItems flattens root into tree lines. maxDepth < 0 shows every level.
// Details list the assignee initials, due date and overdue days.
func MapTreeItems(root *domain.Node, today datecalc.Date, maxDepth int) []TreeItem {
	if root == nil {
		return nil
	}
	var items []TreeItem
	var visit func(n *domain.Node, depth int, indent string, last bool)
	visit = func(n *domain.Node, depth int, indent string, last bool) {
		prefix, childIndent := "", ""
		if depth > 0 {
			if last {
				prefix, childIndent = indent+treeCorner, indent+treeSpace
			} else {
				prefix, childIndent = indent+treeBranch, indent+treePipe
			}
		}
		plan := domain.PlanOf(n)
		items = append(items, TreeItem{
			Prefix: prefix,
			Title:  n.Topic,
			Status: plan.Status,
			Detail: treeDetail(plan, today),
		})
		if maxDepth >= 0 && depth >= maxDepth {
			return
		}
		for i, c := range n.Children {
			visit(c, depth+1, childIndent, i == len(n.Children)-1)
		}
	}
	visit(root, 0, "", true)
	return items
}

func treeDetail(p domain.PlanAttributes, today datecalc.Date) string {
	flags := domain.FlagsOf(p, today)
	var parts []string
	if flags.Assignee.HasAssignee {
		parts = append(parts, flags.Assignee.Initials)
	}
	if p.DueDate != nil {
		parts = append(parts, "due "+datecalc.FormatDisplay(*p.DueDate))
	}
	if flags.Overdue.IsOverdue {
		parts = append(parts, OverdueBadge(flags.Overdue.DaysOverdue))
	}
	return strings.Join(parts, " · ")
}

// RenderTree renders items with box-drawing connectors. Completed items get
// a green ✔ prefix, in-progress items an amber ▶ prefix, and details are
// right-aligned in a badge column.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	width := 0
	for i, item := range items {
		title := item.Title
		marker := ""
		if item.Status != nil {
			switch *item.Status {
			case domain.StatusCompleted:
				marker = StyleGreen.Render("✔ ")
				title = Dim(title)
			case domain.StatusInProgress:
				marker = StyleYellowBold.Render("▶ ")
				title = StyleYellowBold.Render(title)
			}
		}
		lines[i] = item.Prefix + marker + title
		width = max(width, lipgloss.Width(lines[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(lines[i])
		if item.Detail != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(lines[i])+2))
			b.WriteString(StyleBlue.Render("[ " + item.Detail + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
