package model

import "time"

// EventException overrides a single occurrence of a recurring event. At most
// one exception exists per (EventID, OriginalDate). When IsCancelled is set
// the Modified fields are ignored.
type EventException struct {
	ID                  int64
	EventID             int64
	OriginalDate        time.Time
	IsCancelled         bool
	ModifiedTitle       *string
	ModifiedDescription *string
	ModifiedStartTime   *time.Time
	ModifiedEndTime     *time.Time
	ModifiedLocation    *string
	CreatedAt           time.Time
}
