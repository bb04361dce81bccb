package events

import (
	"context"
	"testing"
	"time"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRuleCreate(t *testing.T) {
	count := 5
	until := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rule    model.RecurringRuleCreate
		wantErr error
	}{
		{
			name: "valid open ended",
			rule: model.RecurringRuleCreate{Frequency: model.FrequencyDaily, Interval: 1, Timezone: "UTC"},
		},
		{
			name: "valid with count",
			rule: model.RecurringRuleCreate{Frequency: model.FrequencyDaily, Interval: 1, Timezone: "UTC", EndOccurrences: &count},
		},
		{
			name: "valid with weekdays",
			rule: model.RecurringRuleCreate{
				Frequency:  model.FrequencyWeekly,
				Interval:   2,
				Timezone:   "America/New_York",
				DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
			},
		},
		{
			name:    "zero interval",
			rule:    model.RecurringRuleCreate{Frequency: model.FrequencyDaily, Interval: 0, Timezone: "UTC"},
			wantErr: recurrence.ErrInvalidInterval,
		},
		{
			name: "both terminations set",
			rule: model.RecurringRuleCreate{
				Frequency: model.FrequencyDaily, Interval: 1, Timezone: "UTC",
				EndDate: &until, EndOccurrences: &count,
			},
			wantErr: recurrence.ErrInvalidTermination,
		},
		{
			name: "weekdays on monthly rule",
			rule: model.RecurringRuleCreate{
				Frequency: model.FrequencyMonthly, Interval: 1, Timezone: "UTC",
				DaysOfWeek: []time.Weekday{time.Monday},
			},
			wantErr: recurrence.ErrInvalidWeekdaySet,
		},
		{
			name:    "unknown timezone",
			rule:    model.RecurringRuleCreate{Frequency: model.FrequencyDaily, Interval: 1, Timezone: "Mars/Olympus"},
			wantErr: recurrence.ErrInvalidAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRuleCreate(&tt.rule)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateRuleRejectsInvalid(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateRule(context.Background(), &model.RecurringRuleCreate{
		Frequency: model.FrequencyDaily,
		Interval:  0,
		Timezone:  "UTC",
	})
	assert.ErrorIs(t, err, recurrence.ErrInvalidInterval)
	assert.Empty(t, f.rules.rules)
}

func TestBuildRule(t *testing.T) {
	ruleID := int64(1)
	event := &model.Event{
		ID: 1,
		EventCreate: model.EventCreate{
			StartTime:       time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2025, 1, 6, 16, 30, 0, 0, time.UTC),
			RecurringRuleID: &ruleID,
		},
	}
	rule := &model.RecurringRule{
		ID: ruleID,
		RecurringRuleCreate: model.RecurringRuleCreate{
			Frequency: model.FrequencyWeekly,
			Interval:  1,
			Timezone:  "America/New_York",
		},
	}

	built, err := buildRule(event, rule)
	require.NoError(t, err)

	// 15:00 UTC reads as 10:00 in New York; the anchor is the local wall time.
	assert.Equal(t, recurrence.WallTime{Year: 2025, Month: time.January, Day: 6, Hour: 10}, built.Anchor)
	assert.Equal(t, recurrence.Weekly, built.Frequency)
	assert.Equal(t, 90*time.Minute, built.Duration)
	assert.Equal(t, recurrence.TerminateNever, built.Termination.Kind)
}
