package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceStreak_FirstEver(t *testing.T) {
	got, err := AdvanceStreak(Streak{}, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, Streak{Current: 1, Longest: 1, LastActivity: "2024-01-10"}, got)
}

func TestAdvanceStreak_ConsecutiveDay(t *testing.T) {
	s := Streak{Current: 3, Longest: 5, LastActivity: "2024-01-10"}
	got, err := AdvanceStreak(s, "2024-01-11")
	require.NoError(t, err)
	assert.Equal(t, Streak{Current: 4, Longest: 5, LastActivity: "2024-01-11"}, got)
}

func TestAdvanceStreak_GapResets(t *testing.T) {
	s := Streak{Current: 4, Longest: 5, LastActivity: "2024-01-11"}
	got, err := AdvanceStreak(s, "2024-01-13")
	require.NoError(t, err)
	assert.Equal(t, Streak{Current: 1, Longest: 5, LastActivity: "2024-01-13"}, got)
}

func TestAdvanceStreak_SameDayIdempotent(t *testing.T) {
	s := Streak{Current: 3, Longest: 5, LastActivity: "2024-01-10"}
	once, err := AdvanceStreak(s, "2024-01-11")
	require.NoError(t, err)
	twice, err := AdvanceStreak(once, "2024-01-11")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestAdvanceStreak_NewLongest(t *testing.T) {
	s := Streak{Current: 5, Longest: 5, LastActivity: "2024-01-10"}
	got, err := AdvanceStreak(s, "2024-01-11")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Current)
	assert.Equal(t, 6, got.Longest)
}

// Month and year boundaries are still consecutive days.
func TestAdvanceStreak_CalendarBoundaries(t *testing.T) {
	s := Streak{Current: 1, Longest: 1, LastActivity: "2024-01-31"}
	got, err := AdvanceStreak(s, "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Current)

	s = Streak{Current: 2, Longest: 2, LastActivity: "2023-12-31"}
	got, err = AdvanceStreak(s, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Current)

	// leap day
	s = Streak{Current: 1, Longest: 4, LastActivity: "2024-02-28"}
	got, err = AdvanceStreak(s, "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Current)
}

// Logging for an earlier date than the stored one is just a gap: reset.
func TestAdvanceStreak_BackdatedEventResets(t *testing.T) {
	s := Streak{Current: 4, Longest: 6, LastActivity: "2024-01-11"}
	got, err := AdvanceStreak(s, "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, Streak{Current: 1, Longest: 6, LastActivity: "2024-01-05"}, got)
}

func TestAdvanceStreak_InvalidDates(t *testing.T) {
	_, err := AdvanceStreak(Streak{}, "13/01/2024")
	assert.Error(t, err)

	_, err = AdvanceStreak(Streak{Current: 1, Longest: 1, LastActivity: "garbage"}, "2024-01-02")
	assert.Error(t, err)
}

// Longest never decreases over any event sequence.
func TestAdvanceStreak_LongestMonotonic(t *testing.T) {
	days := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", // build 3
		"2024-01-10",               // gap, reset
		"2024-01-11", "2024-01-11", // dup same day
		"2024-01-12", "2024-01-13", "2024-01-14", "2024-01-15", // build past 3
	}
	s := Streak{}
	prevLongest := 0
	for _, d := range days {
		next, err := AdvanceStreak(s, d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.Longest, prevLongest, "day %s", d)
		assert.GreaterOrEqual(t, next.Longest, next.Current, "day %s", d)
		prevLongest = next.Longest
		s = next
	}
	assert.Equal(t, Streak{Current: 6, Longest: 6, LastActivity: "2024-01-15"}, s)
}
