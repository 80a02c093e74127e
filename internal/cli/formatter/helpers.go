package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/charmbracelet/lipgloss"
)

// Placeholder is shown for unset plan values.
const Placeholder = "--"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns "Today", "Yesterday" or a date like "Jan 2, 2026".
func HumanDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a relative timestamp for recent times and falls
// back to HumanDate.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDate(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t, now)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatDate renders d as DD-MMM-YYYY.
func FormatDate(d *datecalc.Date) string {
	if d == nil {
		return Placeholder
	}
	return datecalc.FormatDisplay(*d)
}

func FormatHours(h *float64) string {
	if h == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*h, 'f', -1, 64) + "h"
}

func FormatDays(d *int) string {
	if d == nil {
		return Placeholder
	}
	if *d == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", *d)
}

// DayMode names the counting mode for output.
func DayMode(excludeWeekends bool) string {
	if excludeWeekends {
		return "business"
	}
	return "calendar"
}
