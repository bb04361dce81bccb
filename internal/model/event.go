package model

import "time"

type EventCreate struct {
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	AllDay          bool
	Location        string
	Priority        int
	CategoryID      *int64
	RecurringRuleID *int64
}

type Event struct {
	ID int64
	EventCreate
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Event) Recurring() bool {
	return e.RecurringRuleID != nil
}

type EventsFilter struct {
	From        time.Time
	To          time.Time
	CategoryIDs []int64
}
