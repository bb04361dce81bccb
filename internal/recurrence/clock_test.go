package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestToInstant(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")
	sydney := mustLoad(t, "Australia/Sydney")

	tests := []struct {
		name        string
		wall        WallTime
		loc         *time.Location
		preferLater bool
		want        time.Time
		resolution  Resolution
	}{
		{
			name:       "plain summer time",
			wall:       WallTime{Year: 2025, Month: time.June, Day: 15, Hour: 12},
			loc:        newYork,
			want:       time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC),
			resolution: ResolutionExact,
		},
		{
			name:       "plain winter time",
			wall:       WallTime{Year: 2025, Month: time.January, Day: 15, Hour: 12},
			loc:        newYork,
			want:       time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC),
			resolution: ResolutionExact,
		},
		{
			name: "spring forward gap rolls to transition",
			// 02:30 does not exist on 2025-03-09 in New York; the first
			// valid instant is 03:00 EDT.
			wall:       WallTime{Year: 2025, Month: time.March, Day: 9, Hour: 2, Minute: 30},
			loc:        newYork,
			want:       time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC),
			resolution: ResolutionRolledForward,
		},
		{
			name:       "gap start itself rolls to same instant",
			wall:       WallTime{Year: 2025, Month: time.March, Day: 9, Hour: 2},
			loc:        newYork,
			want:       time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC),
			resolution: ResolutionRolledForward,
		},
		{
			name:       "fall back picks earlier reading by default",
			wall:       WallTime{Year: 2025, Month: time.November, Day: 2, Hour: 1, Minute: 30},
			loc:        newYork,
			want:       time.Date(2025, 11, 2, 5, 30, 0, 0, time.UTC),
			resolution: ResolutionAmbiguous,
		},
		{
			name:        "fall back picks later reading when asked",
			wall:        WallTime{Year: 2025, Month: time.November, Day: 2, Hour: 1, Minute: 30},
			loc:         newYork,
			preferLater: true,
			want:        time.Date(2025, 11, 2, 6, 30, 0, 0, time.UTC),
			resolution:  ResolutionAmbiguous,
		},
		{
			name:       "southern hemisphere gap",
			wall:       WallTime{Year: 2025, Month: time.October, Day: 5, Hour: 2, Minute: 30},
			loc:        sydney,
			want:       time.Date(2025, 10, 4, 16, 0, 0, 0, time.UTC),
			resolution: ResolutionRolledForward,
		},
		{
			name:       "utc never transitions",
			wall:       WallTime{Year: 2025, Month: time.March, Day: 9, Hour: 2, Minute: 30},
			loc:        time.UTC,
			want:       time.Date(2025, 3, 9, 2, 30, 0, 0, time.UTC),
			resolution: ResolutionExact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, resolution := ToInstant(tt.wall, tt.loc, tt.preferLater)

			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, tt.resolution, resolution)
		})
	}
}

func TestToInstantNormalizesLocation(t *testing.T) {
	loc := mustLoad(t, "America/New_York")

	// Exact, rolled-forward, and ambiguous results share one representation;
	// candidate slices built from mixed resolutions stay deeply equal.
	walls := []WallTime{
		{Year: 2025, Month: time.June, Day: 15, Hour: 12},
		{Year: 2025, Month: time.March, Day: 9, Hour: 2, Minute: 30},
		{Year: 2025, Month: time.November, Day: 2, Hour: 1, Minute: 30},
	}
	for _, wall := range walls {
		got, _ := ToInstant(wall, loc, false)
		assert.Equal(t, time.UTC, got.Location(), "wall %+v", wall)
	}
}

func TestToInstantDeterministic(t *testing.T) {
	loc := mustLoad(t, "America/New_York")
	wall := WallTime{Year: 2025, Month: time.November, Day: 2, Hour: 1, Minute: 15}

	first, firstRes := ToInstant(wall, loc, false)
	for i := 0; i < 10; i++ {
		got, res := ToInstant(wall, loc, false)
		require.True(t, got.Equal(first))
		require.Equal(t, firstRes, res)
	}
}

func TestOffsetAt(t *testing.T) {
	loc := mustLoad(t, "America/New_York")

	assert.Equal(t, -5*time.Hour, OffsetAt(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), loc))
	assert.Equal(t, -4*time.Hour, OffsetAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), loc))
}

func TestAddCalendarUnits(t *testing.T) {
	tests := []struct {
		name string
		wall WallTime
		unit CalendarUnit
		n    int
		want WallTime
	}{
		{
			name: "day step",
			wall: WallTime{Year: 2025, Month: time.January, Day: 30, Hour: 9},
			unit: UnitDay,
			n:    3,
			want: WallTime{Year: 2025, Month: time.February, Day: 2, Hour: 9},
		},
		{
			name: "week step",
			wall: WallTime{Year: 2025, Month: time.December, Day: 29, Hour: 9},
			unit: UnitWeek,
			n:    1,
			want: WallTime{Year: 2026, Month: time.January, Day: 5, Hour: 9},
		},
		{
			name: "month step clamps jan 31 to feb 28",
			wall: WallTime{Year: 2025, Month: time.January, Day: 31, Hour: 10},
			unit: UnitMonth,
			n:    1,
			want: WallTime{Year: 2025, Month: time.February, Day: 28, Hour: 10},
		},
		{
			name: "month step from anchor does not drift",
			// Two months from Jan 31 is Mar 31, not Feb 28 plus a month.
			wall: WallTime{Year: 2025, Month: time.January, Day: 31, Hour: 10},
			unit: UnitMonth,
			n:    2,
			want: WallTime{Year: 2025, Month: time.March, Day: 31, Hour: 10},
		},
		{
			name: "month step clamps to leap day",
			wall: WallTime{Year: 2024, Month: time.January, Day: 31},
			unit: UnitMonth,
			n:    1,
			want: WallTime{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name: "month step across year boundary",
			wall: WallTime{Year: 2025, Month: time.November, Day: 15},
			unit: UnitMonth,
			n:    3,
			want: WallTime{Year: 2026, Month: time.February, Day: 15},
		},
		{
			name: "negative month step",
			wall: WallTime{Year: 2025, Month: time.January, Day: 15},
			unit: UnitMonth,
			n:    -2,
			want: WallTime{Year: 2024, Month: time.November, Day: 15},
		},
		{
			name: "year step clamps leap day",
			wall: WallTime{Year: 2024, Month: time.February, Day: 29},
			unit: UnitYear,
			n:    1,
			want: WallTime{Year: 2025, Month: time.February, Day: 28},
		},
		{
			name: "year step",
			wall: WallTime{Year: 2025, Month: time.July, Day: 4, Hour: 12},
			unit: UnitYear,
			n:    5,
			want: WallTime{Year: 2030, Month: time.July, Day: 4, Hour: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddCalendarUnits(tt.wall, tt.unit, tt.n))
		})
	}
}

func TestWallTimeWeekday(t *testing.T) {
	assert.Equal(t, time.Monday, WallTime{Year: 2025, Month: time.January, Day: 6}.Weekday())
	assert.Equal(t, time.Sunday, WallTime{Year: 2025, Month: time.January, Day: 5}.Weekday())
}

func TestWallTimeIn(t *testing.T) {
	loc := mustLoad(t, "America/New_York")
	instant := time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC)

	assert.Equal(t, WallTime{Year: 2025, Month: time.June, Day: 15, Hour: 12}, WallTimeIn(instant, loc))
}
