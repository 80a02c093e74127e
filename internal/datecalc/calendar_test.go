package datecalc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseISODate(s)
	require.NoError(t, err)
	return d
}

func TestParseISODate_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{"2026-01-05", Date{2026, time.January, 5}},
		{"2024-02-29", Date{2024, time.February, 29}},
		{"1999-12-31", Date{1999, time.December, 31}},
		{"0001-01-01", Date{1, time.January, 1}},
	}
	for _, tc := range cases {
		got, err := ParseISODate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.in, got.String())
	}
}

func TestParseISODate_Malformed(t *testing.T) {
	for _, in := range []string{
		"", "2026-1-05", "2026-01-5", "26-01-05", "2026/01/05",
		"2026-01-05T00:00:00", " 2026-01-05", "2026-01-05 ", "abcd-ef-gh",
	} {
		_, err := ParseISODate(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", in)
	}
}

func TestParseISODate_OutOfRange(t *testing.T) {
	for _, in := range []string{
		"2026-13-01", "2026-00-10", "2026-02-30", "2025-02-29",
		"2026-04-31", "2026-01-00", "2026-01-32",
	} {
		_, err := ParseISODate(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestDate_StringZeroPads(t *testing.T) {
	d, err := NewDate(7, time.March, 4)
	require.NoError(t, err)
	assert.Equal(t, "0007-03-04", d.String())
}

func TestIsWeekend(t *testing.T) {
	cases := []struct {
		in      string
		weekend bool
	}{
		{"2026-01-03", true},  // Saturday
		{"2026-01-04", true},  // Sunday
		{"2026-01-05", false}, // Monday
		{"2026-01-09", false}, // Friday
	}
	for _, tc := range cases {
		got, err := IsWeekend(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.weekend, got, tc.in)
	}

	_, err := IsWeekend("not-a-date")
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestDate_Ordering(t *testing.T) {
	a := mustDate(t, "2025-12-31")
	b := mustDate(t, "2026-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, a, mustDate(t, "2025-12-31"), "dates compare by value")
}

func TestDate_AddDaysAcrossBoundaries(t *testing.T) {
	cases := []struct {
		from string
		n    int
		want string
	}{
		{"2026-01-31", 1, "2026-02-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2026-03-01", -1, "2026-02-28"},
		{"2026-01-01", -1, "2025-12-31"},
	}
	for _, tc := range cases {
		got := mustDate(t, tc.from).AddDays(tc.n)
		assert.Equal(t, tc.want, got.String(), "%s %+d", tc.from, tc.n)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type holder struct {
		Start *Date `json:"start"`
		Due   *Date `json:"due"`
	}
	start := mustDate(t, "2026-01-05")
	data, err := json.Marshal(holder{Start: &start})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2026-01-05","due":null}`, string(data))

	var got holder
	require.NoError(t, json.Unmarshal(data, &got))
	require.NotNil(t, got.Start)
	assert.Equal(t, start, *got.Start)
	assert.Nil(t, got.Due)

	err = json.Unmarshal([]byte(`{"start":"2026-13-01"}`), &got)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFromTime_UsesLocationOfTime(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	instant := time.Date(2026, time.January, 4, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-05", FromTime(instant.In(tokyo)).String())
	assert.Equal(t, "2026-01-04", FromTime(instant).String())
}
