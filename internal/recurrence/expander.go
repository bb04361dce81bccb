package recurrence

import (
	"sort"
	"time"
)

// Candidate is one generated occurrence slot before exceptions are applied.
// OriginalDate is the resolved start instant the slot would have had with no
// overrides; exceptions join against it, so it must come out identical on
// every expansion of the same rule.
type Candidate struct {
	OriginalDate time.Time
	Start        time.Time
	End          time.Time
}

// maxExpandIterations caps candidate generation. A window-bounded loop over a
// valid rule never gets near it; it exists so a malformed rule that slips
// past validation fails instead of spinning.
const maxExpandIterations = 100_000

// Expand materializes the candidate occurrences of r that overlap
// [windowStart, windowEnd). The sequence is finite, ordered by start, and
// recomputed from the anchor on every call, so identical inputs always yield
// identical output.
//
// Candidates whose local start falls in a spring-forward gap are emitted at
// the rolled-forward instant rather than dropped: a daily 02:00 meeting
// shifts to 03:00 on the transition date, it does not vanish.
func Expand(r Rule, windowStart, windowEnd time.Time) ([]Candidate, error) {
	if windowStart.After(windowEnd) {
		return nil, ErrInvalidWindow
	}
	if err := Validate(r); err != nil {
		return nil, err
	}

	candidates := []Candidate{}
	generated := 0
	iterations := 0

	for step := 0; ; step++ {
		base := AddCalendarUnits(r.Anchor, r.Frequency.unit(), step*r.Interval)

		for _, wall := range stepWalls(r, base) {
			iterations++
			if iterations > maxExpandIterations {
				return nil, ErrUnboundedExpansion
			}

			if wall.Before(r.Anchor) {
				// Weekdays earlier in the anchor's own week than the
				// anchor itself; the anchor is the first occurrence.
				continue
			}

			start, _ := ToInstant(wall, r.Location, r.ResolveLater)

			if r.Termination.Kind == TerminateUntil && start.After(r.Termination.Until) {
				return candidates, nil
			}

			generated++
			if r.Termination.Kind == TerminateAfterCount && generated > r.Termination.Count {
				return candidates, nil
			}

			// Candidates are monotonic, so the first one starting at or
			// past the window end finishes the expansion.
			if !start.Before(windowEnd) {
				return candidates, nil
			}

			end := start.Add(r.Duration)
			if end.After(windowStart) {
				candidates = append(candidates, Candidate{
					OriginalDate: start,
					Start:        start,
					End:          end,
				})
			}
		}
	}
}

// stepWalls lists the local start times produced by one interval step. For
// weekly rules with an explicit weekday set, the step's week (Sunday-based,
// matching the stored day numbering) yields one wall time per selected
// weekday; every other rule yields just the stepped anchor.
func stepWalls(r Rule, base WallTime) []WallTime {
	if r.Frequency != Weekly || len(r.ByWeekday) == 0 {
		return []WallTime{base}
	}

	weekdays := make([]time.Weekday, len(r.ByWeekday))
	copy(weekdays, r.ByWeekday)
	sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })

	weekStart := AddCalendarUnits(base, UnitDay, -int(base.Weekday()))

	walls := make([]WallTime, 0, len(weekdays))
	for _, wd := range weekdays {
		walls = append(walls, AddCalendarUnits(weekStart, UnitDay, int(wd)))
	}

	return walls
}
