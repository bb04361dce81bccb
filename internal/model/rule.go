package model

import (
	"fmt"
	"time"
)

type Frequency int

const (
	FrequencyDaily Frequency = iota
	FrequencyWeekly
	FrequencyMonthly
	FrequencyYearly
)

func (f Frequency) String() string {
	switch f {
	case FrequencyDaily:
		return "daily"
	case FrequencyWeekly:
		return "weekly"
	case FrequencyMonthly:
		return "monthly"
	case FrequencyYearly:
		return "yearly"
	default:
		return fmt.Sprintf("frequency(%d)", int(f))
	}
}

func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "daily":
		return FrequencyDaily, nil
	case "weekly":
		return FrequencyWeekly, nil
	case "monthly":
		return FrequencyMonthly, nil
	case "yearly":
		return FrequencyYearly, nil
	default:
		return 0, fmt.Errorf("unknown frequency %q", s)
	}
}

type RecurringRuleCreate struct {
	Frequency  Frequency
	Interval   int
	DaysOfWeek []time.Weekday
	Timezone   string
	// EndDate and EndOccurrences are mutually exclusive; both nil means the
	// rule never terminates on its own.
	EndDate        *time.Time
	EndOccurrences *int
}

type RecurringRule struct {
	ID int64
	RecurringRuleCreate
	CreatedAt time.Time
}
