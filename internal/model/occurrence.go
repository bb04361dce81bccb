package model

import (
	"fmt"
	"time"
)

// Occurrence is one concrete instance of an event inside a query window.
// Occurrences are built fresh on every query and never persisted.
type Occurrence struct {
	ID              string
	EventID         int64
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	AllDay          bool
	Location        string
	Priority        int
	CategoryID      *int64
	RecurringRuleID *int64
	// OriginalDate is the unmodified candidate start this occurrence had
	// before any exception was applied; nil for non-recurring events.
	OriginalDate *time.Time
}

// OccurrenceID is stable across repeated queries for the same instance.
func OccurrenceID(eventID int64, start time.Time) string {
	return fmt.Sprintf("%v_%v", eventID, start.Unix())
}
