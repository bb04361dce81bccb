package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/calendar-todo/backend/internal/business/events"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEventsService struct {
	result *events.RangeResult
}

func (f *fakeEventsService) QueryRange(_ context.Context, _ model.EventsFilter) (*events.RangeResult, error) {
	return f.result, nil
}

type recordedReminder struct {
	occurrenceID string
	lead         time.Duration
}

type recordingNotifier struct {
	sent []recordedReminder
}

func (n *recordingNotifier) Notify(_ context.Context, occurrence *model.Occurrence, lead time.Duration) error {
	n.sent = append(n.sent, recordedReminder{occurrenceID: occurrence.ID, lead: lead})
	return nil
}

func TestSenderFiresDueRemindersOnly(t *testing.T) {
	from := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	service := &fakeEventsService{result: &events.RangeResult{
		Occurrences: []*model.Occurrence{
			// Starts in 15 minutes: the 15m reminder is due this minute.
			{ID: "1_x", Title: "Standup", StartTime: from.Add(15 * time.Minute)},
			// Starts in 5 minutes and 30 seconds: the 5m reminder fires
			// within this minute too.
			{ID: "2_x", Title: "Review", StartTime: from.Add(5*time.Minute + 30*time.Second)},
			// Starts in 10 minutes: no configured lead lands in this minute.
			{ID: "3_x", Title: "Lunch", StartTime: from.Add(10 * time.Minute)},
		},
	}}
	notifier := &recordingNotifier{}
	sender := NewSender(zap.NewNop().Sugar(), service, notifier, []time.Duration{5 * time.Minute, 15 * time.Minute})

	sender.scanWindow(context.Background(), from)

	assert.Equal(t, []recordedReminder{
		{occurrenceID: "1_x", lead: 15 * time.Minute},
		{occurrenceID: "2_x", lead: 5 * time.Minute},
	}, notifier.sent)
}

func TestSenderFiresEachReminderOnce(t *testing.T) {
	start := time.Date(2025, 1, 6, 9, 20, 0, 0, time.UTC)
	service := &fakeEventsService{result: &events.RangeResult{
		Occurrences: []*model.Occurrence{
			{ID: "1_x", Title: "Standup", StartTime: start},
		},
	}}
	notifier := &recordingNotifier{}
	sender := NewSender(zap.NewNop().Sugar(), service, notifier, []time.Duration{15 * time.Minute})

	// Sweep the half hour leading up to the event minute by minute.
	for from := start.Add(-30 * time.Minute); from.Before(start); from = from.Add(time.Minute) {
		sender.scanWindow(context.Background(), from)
	}

	assert.Len(t, notifier.sent, 1)
}
