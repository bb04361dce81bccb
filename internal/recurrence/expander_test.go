package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starts(candidates []Candidate) []time.Time {
	out := make([]time.Time, len(candidates))
	for i, c := range candidates {
		out[i] = c.Start
	}
	return out
}

func TestExpandWeeklyUntil(t *testing.T) {
	// Weekly Monday meeting ending with its fifth occurrence.
	rule := Rule{
		Frequency: Weekly,
		Interval:  1,
		Anchor:    WallTime{Year: 2025, Month: time.January, Day: 6, Hour: 10},
		Location:  time.UTC,
		Duration:  time.Hour,
		Termination: Termination{
			Kind:  TerminateUntil,
			Until: time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
		},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 27, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandCountIsGlobal(t *testing.T) {
	// Three occurrences total, counted from the anchor. A window that skips
	// the first occurrence must not pick up a fourth at the far end.
	rule := Rule{
		Frequency:   Daily,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 1, Hour: 10},
		Location:    time.UTC,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateAfterCount, Count: 3},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandDailyAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A daily 02:30 event does not lose its occurrence on the transition
	// date; it shifts to 03:00 EDT.
	rule := Rule{
		Frequency:   Daily,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.March, Day: 7, Hour: 2, Minute: 30},
		Location:    loc,
		Duration:    30 * time.Minute,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 3, 7, 7, 30, 0, 0, time.UTC),
		time.Date(2025, 3, 8, 7, 30, 0, 0, time.UTC),
		time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandWeeklyByWeekday(t *testing.T) {
	rule := Rule{
		Frequency:   Weekly,
		Interval:    1,
		ByWeekday:   []time.Weekday{time.Wednesday, time.Monday},
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 6, Hour: 9},
		Location:    time.UTC,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandByWeekdaySkipsDaysBeforeAnchor(t *testing.T) {
	// Anchor falls on Wednesday; the Monday of the anchor's own week is in
	// the selected set but precedes the anchor, so it is not emitted.
	rule := Rule{
		Frequency:   Weekly,
		Interval:    1,
		ByWeekday:   []time.Weekday{time.Monday, time.Wednesday},
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 8, Hour: 9},
		Location:    time.UTC,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandMonthlyClampsToMonthEnd(t *testing.T) {
	rule := Rule{
		Frequency:   Monthly,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 31, Hour: 10},
		Location:    time.UTC,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 30, 10, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandIntervalSkipsSteps(t *testing.T) {
	rule := Rule{
		Frequency:   Weekly,
		Interval:    2,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 6, Hour: 10},
		Location:    time.UTC,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandIncludesOccurrenceSpanningWindowStart(t *testing.T) {
	// An occurrence starting before the window but still running at the
	// window start overlaps it.
	rule := Rule{
		Frequency:   Daily,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 1, Hour: 23},
		Location:    time.UTC,
		Duration:    2 * time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 2, 0, 30, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 23, 0, 0, 0, time.UTC),
	}, starts(candidates))
}

func TestExpandWindowBeforeAnchor(t *testing.T) {
	rule := Rule{
		Frequency:   Daily,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.June, Day: 1, Hour: 10},
		Location:    time.UTC,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestExpandDeterministic(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	rule := Rule{
		Frequency:   Weekly,
		Interval:    1,
		ByWeekday:   []time.Weekday{time.Tuesday, time.Friday},
		Anchor:      WallTime{Year: 2025, Month: time.March, Day: 25, Hour: 2, Minute: 30},
		Location:    loc,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	first, err := Expand(rule, from, to)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	for i := 0; i < 5; i++ {
		again, err := Expand(rule, from, to)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestExpandInvalidWindow(t *testing.T) {
	rule := Rule{
		Frequency:   Daily,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 1, Hour: 10},
		Location:    time.UTC,
		Termination: Termination{Kind: TerminateNever},
	}

	_, err := Expand(rule,
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExpandInvalidRule(t *testing.T) {
	rule := Rule{
		Frequency:   Daily,
		Interval:    0,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 1},
		Location:    time.UTC,
		Termination: Termination{Kind: TerminateNever},
	}

	_, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExpandUntilIsInclusive(t *testing.T) {
	rule := Rule{
		Frequency: Daily,
		Interval:  1,
		Anchor:    WallTime{Year: 2025, Month: time.January, Day: 1, Hour: 10},
		Location:  time.UTC,
		Termination: Termination{
			Kind:  TerminateUntil,
			Until: time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.True(t, candidates[2].Start.Equal(time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)))
}

func TestExpandOriginalDateMatchesStart(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	rule := Rule{
		Frequency:   Daily,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.March, Day: 8, Hour: 2, Minute: 30},
		Location:    loc,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	candidates, err := Expand(rule,
		time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		assert.True(t, c.OriginalDate.Equal(c.Start))
		assert.True(t, c.End.Equal(c.Start.Add(time.Hour)))
	}
}
