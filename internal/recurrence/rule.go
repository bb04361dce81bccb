package recurrence

import (
	"fmt"
	"time"
)

type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

func (f Frequency) unit() CalendarUnit {
	switch f {
	case Daily:
		return UnitDay
	case Weekly:
		return UnitWeek
	case Monthly:
		return UnitMonth
	default:
		return UnitYear
	}
}

type TerminationKind int

const (
	// TerminateNever leaves the series open-ended; expansion is bounded by
	// the query window only.
	TerminateNever TerminationKind = iota
	// TerminateAfterCount stops after Count occurrences, counted from the
	// anchor regardless of any query window.
	TerminateAfterCount
	// TerminateUntil stops after the last occurrence starting at or before
	// Until (inclusive).
	TerminateUntil
)

type Termination struct {
	Kind  TerminationKind
	Count int
	Until time.Time
}

// Rule is a fully resolved recurrence definition, the engine's only input
// besides the query window. The anchor is the first occurrence's local start
// in Location; every candidate is derived from it.
type Rule struct {
	Frequency Frequency
	Interval  int
	// ByWeekday only applies to Weekly rules. Empty means the anchor's own
	// weekday repeats.
	ByWeekday   []time.Weekday
	Anchor      WallTime
	Location    *time.Location
	Duration    time.Duration
	Termination Termination
	// ResolveLater picks the later reading of ambiguous fall-back wall
	// times instead of the default earlier one.
	ResolveLater bool
}

// Validate rejects rules the expander cannot iterate safely. The write path
// validates on creation already, but expansion re-checks and fails closed
// rather than risking an unbounded loop on a malformed rule.
func Validate(r Rule) error {
	if r.Interval < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, r.Interval)
	}

	switch r.Termination.Kind {
	case TerminateNever:
	case TerminateAfterCount:
		if r.Termination.Count < 1 {
			return fmt.Errorf("%w: count %d", ErrInvalidTermination, r.Termination.Count)
		}
	case TerminateUntil:
		if r.Termination.Until.IsZero() {
			return fmt.Errorf("%w: until not set", ErrInvalidTermination)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidTermination, r.Termination.Kind)
	}

	if len(r.ByWeekday) != 0 {
		if r.Frequency != Weekly {
			return fmt.Errorf("%w: weekdays set on %v rule", ErrInvalidWeekdaySet, r.Frequency)
		}
		seen := map[time.Weekday]struct{}{}
		for _, wd := range r.ByWeekday {
			if wd < time.Sunday || wd > time.Saturday {
				return fmt.Errorf("%w: weekday %d", ErrInvalidWeekdaySet, wd)
			}
			if _, ok := seen[wd]; ok {
				return fmt.Errorf("%w: duplicate weekday %v", ErrInvalidWeekdaySet, wd)
			}
			seen[wd] = struct{}{}
		}
	}

	if r.Location == nil {
		return fmt.Errorf("%w: no location", ErrInvalidAnchor)
	}
	if !r.Anchor.inRange() {
		return fmt.Errorf("%w: %+v", ErrInvalidAnchor, r.Anchor)
	}
	if r.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAnchor)
	}

	return nil
}

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("frequency(%d)", int(f))
	}
}
