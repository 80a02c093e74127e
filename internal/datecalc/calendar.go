// Package datecalc derives start dates, due dates and elapsed day counts from
// one another, under either a business-day (Monday to Friday) or a
// calendar-day convention.
//
// Dates are civil dates with no time of day and no location. A Date parsed
// from "2026-01-05" is the fifth of January everywhere; no timezone offset is
// ever applied, so the process TZ cannot shift a date by one day.
//
// Every function in this package is pure and safe for concurrent use.
package datecalc

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const isoLayout = "%04d-%02d-%02d"

var isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Date is a calendar date. The zero value is not a valid date; construct
// dates with NewDate or ParseISODate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, rejecting values that do
// not name a real day.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, int(month))
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDate, day, year, int(month))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseISODate parses a strict YYYY-MM-DD string.
func ParseISODate(s string) (Date, error) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrMalformedDate, s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	d, err := NewDate(year, time.Month(month), day)
	if err != nil {
		return Date{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats d as YYYY-MM-DD with zero padding.
func (d Date) String() string {
	return fmt.Sprintf(isoLayout, d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseISODate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.civil().Weekday()
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns d shifted by n calendar days; n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.civil().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	a, b := d.dayNumber(), o.dayNumber()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// IsWeekend reports whether the YYYY-MM-DD date s falls on a weekend.
func IsWeekend(s string) (bool, error) {
	d, err := ParseISODate(s)
	if err != nil {
		return false, err
	}
	return d.IsWeekend(), nil
}

// civil maps d onto a UTC midnight. UTC has no DST and no offset, so
// arithmetic on the result is pure day arithmetic.
func (d Date) civil() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// dayNumber counts days since 1970-01-01.
func (d Date) dayNumber() int64 {
	return d.civil().Unix() / 86400
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
