package formatter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/service"
)

// FormatMapTree renders a map as a header, its tree and a completion line.
// Maps above domain.PerfWarningNodeCount get a size warning.
func FormatMapTree(m *domain.Map, today datecalc.Date, maxDepth int) string {
	var b strings.Builder
	b.WriteString(Header(m.Title))
	b.WriteString("\n")
	b.WriteString(RenderTree(MapTreeItems(m.Root, today, maxDepth)))
	b.WriteString("\n")

	nodes := domain.Count(m.Root)
	tracked, completed := 0, 0
	domain.Walk(m.Root, func(n *domain.Node, _ int, _ *domain.Node) bool {
		if s := domain.PlanOf(n).Status; s != nil {
			tracked++
			if *s == domain.StatusCompleted {
				completed++
			}
		}
		return true
	})
	b.WriteString(Dim(fmt.Sprintf("%d nodes", nodes)))
	if tracked > 0 {
		b.WriteString("  " + RenderProgress(completed, tracked, 10) + Dim(" completed"))
	}
	b.WriteString("\n")
	if nodes > domain.PerfWarningNodeCount {
		b.WriteString(Warning(fmt.Sprintf("large map: %d nodes may render slowly", nodes)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMapList renders stored maps as a table, most recent first.
func FormatMapList(maps []*domain.Map, now time.Time) string {
	if len(maps) == 0 {
		return Dim("No maps yet. Create one with 'mindplan map new'.") + "\n"
	}
	rows := make([][]string, 0, len(maps))
	for _, m := range maps {
		rows = append(rows, []string{
			TruncID(m.ID),
			Bold(m.Title),
			strconv.Itoa(domain.Count(m.Root)),
			HumanTimestamp(m.UpdatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "NODES", "UPDATED"}, rows)
}

// FormatHistory lists undo steps oldest first and marks the current one.
func FormatHistory(h *service.HistoryView, now time.Time) string {
	if len(h.Items) == 0 {
		return Dim("No history.") + "\n"
	}
	var b strings.Builder
	for i, item := range h.Items {
		marker := "  "
		desc := item.Description
		if item.Current {
			marker = StyleHeader.Render("▶ ")
			desc = Bold(desc)
		}
		fmt.Fprintf(&b, "%s%2d  %s  %s\n", marker, i+1, desc, Dim(HumanTimestamp(item.At, now)))
	}
	var hints []string
	if h.CanUndo {
		hints = append(hints, "undo available")
	}
	if h.CanRedo {
		hints = append(hints, "redo available")
	}
	if len(hints) > 0 {
		b.WriteString(Dim(strings.Join(hints, ", ")) + "\n")
	}
	return b.String()
}

// FormatPlanView renders one node's plan. Derived fields are marked.
func FormatPlanView(v *service.PlanView) string {
	var b strings.Builder
	b.WriteString(Bold(v.Topic) + "\n")
	if len(v.Path) > 1 {
		b.WriteString(Dim(strings.Join(v.Path, domain.PathSeparator)) + "\n")
	}
	b.WriteString("\n")

	p := v.Plan
	line := func(label string, field domain.PlanField, value string) {
		if field != "" && slices.Contains(v.Derived, field) {
			value += Dim(" (derived)")
		}
		fmt.Fprintf(&b, "%-15s%s\n", label, value)
	}
	line("Start Date", domain.FieldStartDate, FormatDate(p.StartDate))
	line("Due Date", domain.FieldDueDate, FormatDate(p.DueDate))
	line("Invested Time", domain.FieldInvestedTime, FormatHours(p.InvestedTimeHours))
	line("Elapsed Time", domain.FieldElapsedTime, FormatDays(p.ElapsedTimeDays))

	assignee := Placeholder
	if v.Flags.Assignee.HasAssignee {
		assignee = fmt.Sprintf("%s (%s)", v.Flags.Assignee.Assignee, v.Flags.Assignee.Initials)
	}
	line("Assignee", domain.FieldAssignee, assignee)

	status := Placeholder
	if p.Status != nil {
		status = StatusPill(*p.Status)
	}
	line("Status", domain.FieldStatus, status)
	if v.Flags.Overdue.IsOverdue {
		line("Overdue", "", OverdueBadge(v.Flags.Overdue.DaysOverdue))
	}

	for _, w := range v.Warnings {
		b.WriteString(Warning(w) + "\n")
	}
	return b.String()
}
