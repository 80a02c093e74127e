package datecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "26-Feb-2026", FormatDisplay(mustDate(t, "2026-02-26")))
	assert.Equal(t, "01-Dec-2025", FormatDisplay(mustDate(t, "2025-12-01")))
}

func TestParseDisplay(t *testing.T) {
	for _, in := range []string{"26-Feb-2026", "26-feb-2026", "26-FEB-2026"} {
		d, err := ParseDisplay(in)
		require.NoError(t, err, in)
		assert.Equal(t, "2026-02-26", d.String(), in)
	}
}

func TestParseDisplay_RoundTripsEveryMonth(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		d, err := NewDate(2026, m, 15)
		require.NoError(t, err)
		got, err := ParseDisplay(FormatDisplay(d))
		require.NoError(t, err, FormatDisplay(d))
		assert.Equal(t, d, got)
	}
}

func TestParseDisplay_Rejects(t *testing.T) {
	_, err := ParseDisplay("2026-02-26")
	assert.ErrorIs(t, err, ErrMalformedDate)

	_, err = ParseDisplay("26-Foo-2026")
	assert.ErrorIs(t, err, ErrMalformedDate)

	_, err = ParseDisplay("30-Feb-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMonthAbbrev_OutOfRange(t *testing.T) {
	assert.Equal(t, "", MonthAbbrev(0))
	assert.Equal(t, "", MonthAbbrev(13))
	assert.Equal(t, "Sep", MonthAbbrev(time.September))
}
