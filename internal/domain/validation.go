package domain

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/mindplan/internal/datecalc"
)

// ValidationResult collects blocking errors and non-blocking warnings.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether there are no errors. Warnings do not count.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err joins the errors into a single error, or returns nil.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("invalid plan: %s", strings.Join(r.Errors, "; "))
}

// ValidatePlan checks each set field of p. A start date after the due date is
// a warning, not an error.
func ValidatePlan(p PlanAttributes) ValidationResult {
	var r ValidationResult
	for _, pr := range p.problems {
		r.Errors = append(r.Errors, pr.msg)
	}

	if p.InvestedTimeHours != nil {
		if msg := checkNonNegative(*p.InvestedTimeHours, "Invested Time"); msg != "" {
			r.Errors = append(r.Errors, msg)
		}
	}
	if p.ElapsedTimeDays != nil && *p.ElapsedTimeDays < 0 {
		r.Errors = append(r.Errors, "Elapsed Time must be non-negative")
	}
	if p.Assignee != nil && utf8.RuneCountInString(*p.Assignee) > MaxAssigneeLen {
		r.Errors = append(r.Errors, fmt.Sprintf("Assignee name must be %d characters or less", MaxAssigneeLen))
	}
	if p.Status != nil && *p.Status != "" && !p.Status.Valid() {
		r.Errors = append(r.Errors, "Status must be one of: "+statusList())
	}
	if p.StartDate != nil && p.DueDate != nil && p.StartDate.After(*p.DueDate) {
		r.Warnings = append(r.Warnings, "Start date is after due date")
	}

	return r
}

// ValidateDateInput checks a raw form value. Empty input is valid.
func ValidateDateInput(s string) error {
	if s == "" {
		return nil
	}
	if _, err := datecalc.ParseISODate(s); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}
	return nil
}

func checkNonNegative(v float64, field string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return field + " must be a valid number"
	}
	if v < 0 {
		return field + " must be non-negative"
	}
	return ""
}

func statusList() string {
	names := make([]string, len(PlanStatusOptions))
	for i, s := range PlanStatusOptions {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
