package recurrence

import "time"

// WallTime is a local calendar time with no attached zone. Conversion to an
// absolute instant happens only through ToInstant with an explicit location;
// nothing in this package reads the ambient clock or zone.
type WallTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// WallTimeOf extracts the wall-clock fields of t in t's own location.
func WallTimeOf(t time.Time) WallTime {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return WallTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: min,
		Second: sec,
	}
}

// WallTimeIn extracts the wall-clock fields of the instant t as read in loc.
func WallTimeIn(t time.Time, loc *time.Location) WallTime {
	return WallTimeOf(t.In(loc))
}

func (w WallTime) Weekday() time.Weekday {
	return w.asUTC().Weekday()
}

func (w WallTime) Before(o WallTime) bool {
	return w.asUTC().Before(o.asUTC())
}

// asUTC pins the calendar fields to UTC so they can be compared and shifted
// with plain time arithmetic. The resulting instant is meaningless as a point
// in time; only its fields matter.
func (w WallTime) asUTC() time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, 0, time.UTC)
}

func (w WallTime) inRange() bool {
	return w.Month >= time.January && w.Month <= time.December &&
		w.Day >= 1 && w.Day <= daysIn(w.Year, w.Month) &&
		w.Hour >= 0 && w.Hour <= 23 &&
		w.Minute >= 0 && w.Minute <= 59 &&
		w.Second >= 0 && w.Second <= 59
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Resolution reports how a wall time mapped onto the UTC timeline.
type Resolution int

const (
	// ResolutionExact means the wall time exists exactly once in the zone.
	ResolutionExact Resolution = iota
	// ResolutionRolledForward means the wall time fell in a spring-forward
	// gap and was moved to the first valid instant after the transition.
	ResolutionRolledForward
	// ResolutionAmbiguous means the wall time occurs twice around a
	// fall-back transition and one of the readings was picked.
	ResolutionAmbiguous
)

// ToInstant converts a wall time in loc to an absolute instant.
//
// A wall time inside a spring-forward gap does not exist; it resolves to the
// transition instant itself, the first valid moment at or after the request.
// A wall time inside a fall-back overlap occurs twice; the earlier-offset
// reading wins unless preferLater is set. Both policies are deterministic, so
// repeated conversions of the same inputs always agree.
func ToInstant(w WallTime, loc *time.Location, preferLater bool) (time.Time, Resolution) {
	pinned := w.asUTC()

	// Candidate offsets in effect around the target. Sampling a day to
	// either side covers both sides of any single transition near it.
	sampled := make(map[int]struct{})
	var offsets []int
	for _, d := range []time.Duration{-26 * time.Hour, -13 * time.Hour, 0, 13 * time.Hour, 26 * time.Hour} {
		_, off := pinned.Add(d).In(loc).Zone()
		if _, ok := sampled[off]; !ok {
			sampled[off] = struct{}{}
			offsets = append(offsets, off)
		}
	}

	var readings []time.Time
	for _, off := range offsets {
		instant := pinned.Add(-time.Duration(off) * time.Second)
		if WallTimeIn(instant, loc) == w {
			readings = append(readings, instant)
		}
	}

	switch len(readings) {
	case 1:
		return readings[0], ResolutionExact
	case 0:
		// Gap. Any reading made with the pre-transition offset lands past
		// the transition; the start of the zone it lands in is the first
		// valid instant at or after the requested wall time.
		latest := pinned.Add(-time.Duration(offsets[0]) * time.Second)
		for _, off := range offsets[1:] {
			if t := pinned.Add(-time.Duration(off) * time.Second); t.After(latest) {
				latest = t
			}
		}
		start, _ := latest.In(loc).ZoneBounds()
		return start.UTC(), ResolutionRolledForward
	default:
		earliest, latest := readings[0], readings[0]
		for _, t := range readings[1:] {
			if t.Before(earliest) {
				earliest = t
			}
			if t.After(latest) {
				latest = t
			}
		}
		if preferLater {
			return latest, ResolutionAmbiguous
		}
		return earliest, ResolutionAmbiguous
	}
}

// OffsetAt returns the UTC offset in effect in loc at the given instant.
func OffsetAt(t time.Time, loc *time.Location) time.Duration {
	_, off := t.In(loc).Zone()
	return time.Duration(off) * time.Second
}

// CalendarUnit is a calendar step for AddCalendarUnits.
type CalendarUnit int

const (
	UnitDay CalendarUnit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

// AddCalendarUnits advances a wall time by n calendar units, operating purely
// on the calendar fields. Month and year steps that land on a nonexistent day
// clamp to the last day of the target month (Jan 31 + 1 month = Feb 28/29);
// they never overflow into the next month.
func AddCalendarUnits(w WallTime, unit CalendarUnit, n int) WallTime {
	switch unit {
	case UnitDay:
		return WallTimeOf(w.asUTC().AddDate(0, 0, n))
	case UnitWeek:
		return WallTimeOf(w.asUTC().AddDate(0, 0, 7*n))
	case UnitMonth:
		months := int(w.Month) - 1 + n
		year := w.Year + months/12
		months %= 12
		if months < 0 {
			months += 12
			year--
		}
		res := w
		res.Year = year
		res.Month = time.Month(months + 1)
		if max := daysIn(res.Year, res.Month); res.Day > max {
			res.Day = max
		}
		return res
	case UnitYear:
		res := w
		res.Year += n
		if max := daysIn(res.Year, res.Month); res.Day > max {
			res.Day = max
		}
		return res
	default:
		return w
	}
}
