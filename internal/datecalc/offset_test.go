package datecalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBusinessDays(t *testing.T) {
	cases := []struct {
		anchor string
		n      int
		want   string
	}{
		{"2026-01-05", 10, "2026-01-19"},
		{"2026-01-02", 1, "2026-01-05"},
		{"2026-01-05", 0, "2026-01-05"},
		{"2026-01-03", 0, "2026-01-03"}, // weekend anchor is left as is
		{"2026-01-03", 1, "2026-01-05"},
		{"2025-12-31", 2, "2026-01-02"},
	}
	for _, tc := range cases {
		got, err := AddBusinessDays(mustDate(t, tc.anchor), tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "%s + %d", tc.anchor, tc.n)
	}
}

func TestSubtractBusinessDays(t *testing.T) {
	cases := []struct {
		anchor string
		n      int
		want   string
	}{
		{"2026-01-31", 5, "2026-01-26"},
		{"2026-01-05", 1, "2026-01-02"},
		{"2026-01-19", 10, "2026-01-05"},
		{"2026-01-05", 0, "2026-01-05"},
		{"2026-01-02", 2, "2025-12-31"},
	}
	for _, tc := range cases {
		got, err := SubtractBusinessDays(mustDate(t, tc.anchor), tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "%s - %d", tc.anchor, tc.n)
	}
}

func TestCalendarOffsets(t *testing.T) {
	got, err := AddCalendarDays(mustDate(t, "2026-01-01"), 8)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-09", got.String())

	got, err = SubtractCalendarDays(mustDate(t, "2026-03-01"), 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", got.String())

	got, err = AddCalendarDays(mustDate(t, "2026-01-03"), 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-03", got.String())
}

func TestOffsets_RejectNegativeCounts(t *testing.T) {
	anchor := mustDate(t, "2026-01-05")
	for name, fn := range map[string]func(Date, int) (Date, error){
		"AddBusinessDays":      AddBusinessDays,
		"SubtractBusinessDays": SubtractBusinessDays,
		"AddCalendarDays":      AddCalendarDays,
		"SubtractCalendarDays": SubtractCalendarDays,
	} {
		_, err := fn(anchor, -1)
		assert.ErrorIs(t, err, ErrNegativeDays, name)
	}
}
