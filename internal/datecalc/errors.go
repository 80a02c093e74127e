package datecalc

import "errors"

var (
	// ErrMalformedDate is returned when a date string does not match YYYY-MM-DD.
	ErrMalformedDate = errors.New("malformed date")
	// ErrInvalidDate is returned for well-formed strings naming a day that
	// does not exist, such as month 13 or February 30.
	ErrInvalidDate = errors.New("invalid calendar date")
	// ErrNegativeDays is returned when a day count is negative.
	ErrNegativeDays = errors.New("negative day count")
)
