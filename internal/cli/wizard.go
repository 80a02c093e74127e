package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mindplanHuhTheme returns a huh theme using the Gruvbox palette.
func mindplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues is the text state of the plan edit form.
type planFormValues struct {
	Start    string
	Due      string
	Invested string
	Elapsed  string
	Assignee string
	Status   string
}

func planFormValuesOf(p domain.PlanAttributes) planFormValues {
	var v planFormValues
	if p.StartDate != nil {
		v.Start = p.StartDate.String()
	}
	if p.DueDate != nil {
		v.Due = p.DueDate.String()
	}
	if p.InvestedTimeHours != nil {
		v.Invested = strconv.FormatFloat(*p.InvestedTimeHours, 'f', -1, 64)
	}
	if p.ElapsedTimeDays != nil {
		v.Elapsed = strconv.Itoa(*p.ElapsedTimeDays)
	}
	if p.Assignee != nil {
		v.Assignee = *p.Assignee
	}
	if p.Status != nil {
		v.Status = string(*p.Status)
	}
	return v
}

// planFormPatch turns the edited form into a patch holding only the fields
// whose text changed. Blank fields clear the value.
func planFormPatch(before, after planFormValues) (domain.PlanPatch, error) {
	var patch domain.PlanPatch
	set := func(f domain.PlanField) { patch.Set = append(patch.Set, f) }
	trim := strings.TrimSpace

	if s := trim(after.Start); s != trim(before.Start) {
		d, err := datecalc.ParseOptional(&s)
		if err != nil {
			return patch, fmt.Errorf("start date: %w", err)
		}
		patch.Values.StartDate = d
		set(domain.FieldStartDate)
	}
	if s := trim(after.Due); s != trim(before.Due) {
		d, err := datecalc.ParseOptional(&s)
		if err != nil {
			return patch, fmt.Errorf("due date: %w", err)
		}
		patch.Values.DueDate = d
		set(domain.FieldDueDate)
	}
	if trim(after.Invested) != trim(before.Invested) {
		if s := trim(after.Invested); s != "" {
			h, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return patch, fmt.Errorf("invested time must be a number, got %q", s)
			}
			patch.Values.InvestedTimeHours = &h
		}
		set(domain.FieldInvestedTime)
	}
	if trim(after.Elapsed) != trim(before.Elapsed) {
		if s := trim(after.Elapsed); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return patch, fmt.Errorf("elapsed time must be a whole number of days, got %q", s)
			}
			patch.Values.ElapsedTimeDays = &n
		}
		set(domain.FieldElapsedTime)
	}
	if trim(after.Assignee) != trim(before.Assignee) {
		if s := trim(after.Assignee); s != "" {
			patch.Values.Assignee = &s
		}
		set(domain.FieldAssignee)
	}
	if after.Status != before.Status {
		if after.Status != "" {
			s := domain.PlanStatus(after.Status)
			patch.Values.Status = &s
		}
		set(domain.FieldStatus)
	}
	return patch, nil
}

func validateNumber(allowFraction bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		var v float64
		var err error
		if allowFraction {
			v, err = strconv.ParseFloat(s, 64)
		} else {
			var n int
			n, err = strconv.Atoi(s)
			v = float64(n)
		}
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < 0 {
			return fmt.Errorf("must be non-negative")
		}
		return nil
	}
}

// planEditForm builds the interactive plan editor bound to v.
func planEditForm(topic string, v *planFormValues) *huh.Form {
	validateDate := func(s string) error { return domain.ValidateDateInput(strings.TrimSpace(s)) }

	statuses := []huh.Option[string]{huh.NewOption("--", "")}
	for _, s := range domain.PlanStatusOptions {
		statuses = append(statuses, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Description(topic).
				Placeholder("YYYY-MM-DD").
				Validate(validateDate).
				Value(&v.Start),
			huh.NewInput().
				Title("Due date").
				Placeholder("YYYY-MM-DD").
				Validate(validateDate).
				Value(&v.Due),
			huh.NewInput().
				Title("Elapsed time (days)").
				Description("Editing this moves the due date").
				Validate(validateNumber(false)).
				Value(&v.Elapsed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Invested time (hours)").
				Validate(validateNumber(true)).
				Value(&v.Invested),
			huh.NewInput().
				Title("Assignee").
				CharLimit(domain.MaxAssigneeLen).
				Value(&v.Assignee),
			huh.NewSelect[string]().
				Title("Status").
				Options(statuses...).
				Value(&v.Status),
		),
	).WithTheme(mindplanHuhTheme()).WithShowHelp(false)
}
