package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style used for a plan status.
func StatusColor(s domain.PlanStatus) lipgloss.Style {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleYellow
	case domain.StatusNotStarted:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator such as "● In Progress".
func StatusPill(s domain.PlanStatus) string {
	icon := map[domain.PlanStatus]string{
		domain.StatusCompleted:  "✔ ",
		domain.StatusInProgress: "● ",
		domain.StatusNotStarted: "○ ",
	}[s]
	if icon == "" {
		return StyleDim.Render(Placeholder)
	}
	return StatusColor(s).Render(icon + string(s))
}

// OverdueBadge renders "OVERDUE 3d" in red.
func OverdueBadge(days int) string {
	return StyleRed.Render(fmt.Sprintf("OVERDUE %dd", days))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warning renders text with a yellow "!" marker.
func Warning(text string) string {
	return StyleYellow.Render("! " + text)
}
