package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := Rule{
		Frequency:   Weekly,
		Interval:    1,
		Anchor:      WallTime{Year: 2025, Month: time.January, Day: 6, Hour: 10},
		Location:    time.UTC,
		Duration:    time.Hour,
		Termination: Termination{Kind: TerminateNever},
	}

	tests := []struct {
		name    string
		mutate  func(r *Rule)
		wantErr error
	}{
		{
			name:   "valid rule",
			mutate: func(r *Rule) {},
		},
		{
			name:    "zero interval",
			mutate:  func(r *Rule) { r.Interval = 0 },
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "negative interval",
			mutate:  func(r *Rule) { r.Interval = -3 },
			wantErr: ErrInvalidInterval,
		},
		{
			name: "count termination without count",
			mutate: func(r *Rule) {
				r.Termination = Termination{Kind: TerminateAfterCount}
			},
			wantErr: ErrInvalidTermination,
		},
		{
			name: "until termination without until",
			mutate: func(r *Rule) {
				r.Termination = Termination{Kind: TerminateUntil}
			},
			wantErr: ErrInvalidTermination,
		},
		{
			name: "unknown termination kind",
			mutate: func(r *Rule) {
				r.Termination = Termination{Kind: TerminationKind(42)}
			},
			wantErr: ErrInvalidTermination,
		},
		{
			name: "weekdays on daily rule",
			mutate: func(r *Rule) {
				r.Frequency = Daily
				r.ByWeekday = []time.Weekday{time.Monday}
			},
			wantErr: ErrInvalidWeekdaySet,
		},
		{
			name: "duplicate weekday",
			mutate: func(r *Rule) {
				r.ByWeekday = []time.Weekday{time.Monday, time.Monday}
			},
			wantErr: ErrInvalidWeekdaySet,
		},
		{
			name: "weekday out of range",
			mutate: func(r *Rule) {
				r.ByWeekday = []time.Weekday{time.Weekday(7)}
			},
			wantErr: ErrInvalidWeekdaySet,
		},
		{
			name:    "missing location",
			mutate:  func(r *Rule) { r.Location = nil },
			wantErr: ErrInvalidAnchor,
		},
		{
			name: "nonexistent calendar day",
			mutate: func(r *Rule) {
				r.Anchor = WallTime{Year: 2025, Month: time.February, Day: 30, Hour: 10}
			},
			wantErr: ErrInvalidAnchor,
		},
		{
			name:    "negative duration",
			mutate:  func(r *Rule) { r.Duration = -time.Hour },
			wantErr: ErrInvalidAnchor,
		},
		{
			name: "anchor in a dst gap is legal",
			mutate: func(r *Rule) {
				r.Anchor = WallTime{Year: 2025, Month: time.March, Day: 9, Hour: 2, Minute: 30}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := valid
			tt.mutate(&rule)

			err := Validate(rule)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
