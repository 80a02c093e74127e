package datecalc

import "fmt"

// The Derive functions compute one of {start, due, elapsed} from the other
// two. A nil input means the value is not known yet; the result is then nil
// and no error is reported. Only malformed input (a negative count, a bad
// date string) is an error. No function checks that start <= due.

// DeriveElapsedDays returns the days between start and due, counted as
// business days when excludeWeekends is set and as calendar days otherwise.
func DeriveElapsedDays(start, due *Date, excludeWeekends bool) *int {
	if start == nil || due == nil {
		return nil
	}
	var n int
	if excludeWeekends {
		n = CountBusinessDays(*start, *due)
	} else {
		n = CountCalendarDays(*start, *due)
	}
	return &n
}

// DeriveDueDate returns the date elapsed days after start.
func DeriveDueDate(start *Date, elapsed *int, excludeWeekends bool) (*Date, error) {
	if start == nil || elapsed == nil {
		return nil, nil
	}
	add := AddCalendarDays
	if excludeWeekends {
		add = AddBusinessDays
	}
	due, err := add(*start, *elapsed)
	if err != nil {
		return nil, fmt.Errorf("deriving due date: %w", err)
	}
	return &due, nil
}

// DeriveStartDate returns the date elapsed days before due.
func DeriveStartDate(due *Date, elapsed *int, excludeWeekends bool) (*Date, error) {
	if due == nil || elapsed == nil {
		return nil, nil
	}
	sub := SubtractCalendarDays
	if excludeWeekends {
		sub = SubtractBusinessDays
	}
	start, err := sub(*due, *elapsed)
	if err != nil {
		return nil, fmt.Errorf("deriving start date: %w", err)
	}
	return &start, nil
}

// DeriveElapsedDaysISO is DeriveElapsedDays over YYYY-MM-DD strings. A nil or
// empty string is treated as absent.
func DeriveElapsedDaysISO(start, due *string, excludeWeekends bool) (*int, error) {
	s, err := ParseOptional(start)
	if err != nil {
		return nil, err
	}
	d, err := ParseOptional(due)
	if err != nil {
		return nil, err
	}
	return DeriveElapsedDays(s, d, excludeWeekends), nil
}

// DeriveDueDateISO is DeriveDueDate over YYYY-MM-DD strings.
func DeriveDueDateISO(start *string, elapsed *int, excludeWeekends bool) (*string, error) {
	s, err := ParseOptional(start)
	if err != nil {
		return nil, err
	}
	due, err := DeriveDueDate(s, elapsed, excludeWeekends)
	return formatOptional(due), err
}

// DeriveStartDateISO is DeriveStartDate over YYYY-MM-DD strings.
func DeriveStartDateISO(due *string, elapsed *int, excludeWeekends bool) (*string, error) {
	d, err := ParseOptional(due)
	if err != nil {
		return nil, err
	}
	start, err := DeriveStartDate(d, elapsed, excludeWeekends)
	return formatOptional(start), err
}

// ParseOptional parses s when it is present. nil and "" yield nil.
func ParseOptional(s *string) (*Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := ParseISODate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatOptional(d *Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
