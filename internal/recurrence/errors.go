package recurrence

import "errors"

var (
	ErrInvalidWindow      = errors.New("window start is after window end")
	ErrInvalidInterval    = errors.New("invalid interval")
	ErrInvalidTermination = errors.New("invalid termination")
	ErrInvalidAnchor      = errors.New("invalid anchor")
	ErrInvalidWeekdaySet  = errors.New("invalid weekday set")
	ErrUnboundedExpansion = errors.New("expansion exceeded iteration cap")
)
