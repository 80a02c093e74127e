package datecalc

// CountCalendarDays returns the number of whole days between start and due.
// The result is the same whichever argument is earlier.
func CountCalendarDays(start, due Date) int {
	n := due.dayNumber() - start.dayNumber()
	if n < 0 {
		n = -n
	}
	return int(n)
}

// CountBusinessDays counts Monday to Friday days in the half-open interval
// (start, due]: the start day is never counted, the due day is. It returns 0
// when start is on or after due; the interval is not reversed.
//
// 2026-01-01 (Thu) to 2026-01-09 (Fri) counts Jan 2, 5, 6, 7, 8 and 9: 6.
func CountBusinessDays(start, due Date) int {
	if !start.Before(due) {
		return 0
	}
	total := int(due.dayNumber() - start.dayNumber())

	// Any seven consecutive days hold exactly five weekdays.
	weeks, rem := total/7, total%7
	count := weeks * 5
	cursor := start.AddDays(weeks * 7)
	for i := 0; i < rem; i++ {
		cursor = cursor.AddDays(1)
		if !cursor.IsWeekend() {
			count++
		}
	}
	return count
}
