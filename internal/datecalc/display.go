package datecalc

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// monthAbbrev is indexed by time.Month-1.
var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var displayPattern = regexp.MustCompile(`^(\d{2})-([A-Za-z]{3})-(\d{4})$`)

// MonthAbbrev returns the three-letter English abbreviation of m.
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbrev[m-1]
}

// FormatDisplay renders d as DD-MMM-YYYY, e.g. 26-Feb-2026.
func FormatDisplay(d Date) string {
	return fmt.Sprintf("%02d-%s-%04d", d.Day, MonthAbbrev(d.Month), d.Year)
}

// ParseDisplay parses a DD-MMM-YYYY string. The month name is matched
// case-insensitively.
func ParseDisplay(s string) (Date, error) {
	m := displayPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q (expected DD-MMM-YYYY)", ErrMalformedDate, s)
	}
	month, err := datetime.ParseMonth(m[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	return NewDate(year, time.Month(month), day)
}
