package datecalc

import "fmt"

// AddBusinessDays returns the n-th weekday after anchor. Weekend days are
// stepped over without being counted, so for n >= 1 the result is always a
// weekday. n == 0 returns anchor unchanged, even when anchor is a weekend.
func AddBusinessDays(anchor Date, n int) (Date, error) {
	if n < 0 {
		return Date{}, fmt.Errorf("adding %d business days to %s: %w", n, anchor, ErrNegativeDays)
	}
	return stepBusinessDays(anchor, n, 1), nil
}

// SubtractBusinessDays returns the n-th weekday before anchor.
func SubtractBusinessDays(anchor Date, n int) (Date, error) {
	if n < 0 {
		return Date{}, fmt.Errorf("subtracting %d business days from %s: %w", n, anchor, ErrNegativeDays)
	}
	return stepBusinessDays(anchor, n, -1), nil
}

// AddCalendarDays returns the date n days after anchor.
func AddCalendarDays(anchor Date, n int) (Date, error) {
	if n < 0 {
		return Date{}, fmt.Errorf("adding %d calendar days to %s: %w", n, anchor, ErrNegativeDays)
	}
	return anchor.AddDays(n), nil
}

// SubtractCalendarDays returns the date n days before anchor.
func SubtractCalendarDays(anchor Date, n int) (Date, error) {
	if n < 0 {
		return Date{}, fmt.Errorf("subtracting %d calendar days from %s: %w", n, anchor, ErrNegativeDays)
	}
	return anchor.AddDays(-n), nil
}

func stepBusinessDays(d Date, remaining, dir int) Date {
	for remaining > 0 {
		d = d.AddDays(dir)
		if !d.IsWeekend() {
			remaining--
		}
	}
	return d
}
