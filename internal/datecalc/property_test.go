package datecalc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomDate returns a date within roughly eight years of 2022-01-01.
func randomDate(t *testing.T, rng *rand.Rand) Date {
	t.Helper()
	base := mustDate(t, "2022-01-01")
	return base.AddDays(rng.Intn(8 * 366))
}

// TestRoundTrip_DueFromElapsed checks due == DeriveDueDate(start,
// DeriveElapsedDays(start, due)). Under the business convention the due date
// must be a weekday (or equal to start): a weekend due date is unreachable by
// counting weekdays forward.
func TestRoundTrip_DueFromElapsed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		start := randomDate(t, rng)
		due := start.AddDays(rng.Intn(120))

		for _, exclude := range []bool{false, true} {
			if exclude && due.IsWeekend() && due != start {
				continue
			}
			elapsed := DeriveElapsedDays(&start, &due, exclude)
			require.NotNil(t, elapsed)
			got, err := DeriveDueDate(&start, elapsed, exclude)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, due, *got, "trial %d: start=%s due=%s exclude=%v", trial, start, due, exclude)
		}
	}
}

// TestRoundTrip_StartFromElapsed is the mirror image: the start date must be
// a weekday (or equal to due) under the business convention.
func TestRoundTrip_StartFromElapsed(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 500; trial++ {
		start := randomDate(t, rng)
		due := start.AddDays(rng.Intn(120))

		for _, exclude := range []bool{false, true} {
			if exclude && start.IsWeekend() && due != start {
				continue
			}
			elapsed := DeriveElapsedDays(&start, &due, exclude)
			require.NotNil(t, elapsed)
			got, err := DeriveStartDate(&due, elapsed, exclude)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, start, *got, "trial %d: start=%s due=%s exclude=%v", trial, start, due, exclude)
		}
	}
}

func TestBusinessDays_NeverLandOnWeekend(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		anchor := randomDate(t, rng)
		n := rng.Intn(40) + 1

		fwd, err := AddBusinessDays(anchor, n)
		require.NoError(t, err)
		assert.False(t, fwd.IsWeekend(), "trial %d: %s + %d = %s", trial, anchor, n, fwd)

		back, err := SubtractBusinessDays(anchor, n)
		require.NoError(t, err)
		assert.False(t, back.IsWeekend(), "trial %d: %s - %d = %s", trial, anchor, n, back)
	}
}

func TestCountBusinessDays_ZeroWhenNotForward(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 200; trial++ {
		due := randomDate(t, rng)
		start := due.AddDays(rng.Intn(30))
		assert.Equal(t, 0, CountBusinessDays(start, due), "trial %d: %s..%s", trial, start, due)
		assert.Equal(t, 0, CountBusinessDays(due, due))
	}
}

func TestCountCalendarDays_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 200; trial++ {
		a, b := randomDate(t, rng), randomDate(t, rng)
		assert.Equal(t, CountCalendarDays(a, b), CountCalendarDays(b, a))
	}
}
