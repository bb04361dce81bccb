package reminders

import (
	"context"
	"time"

	"github.com/calendar-todo/backend/internal/business/events"
	"github.com/calendar-todo/backend/internal/model"
	"go.uber.org/zap"
)

// DefaultLeadTimes are the offsets before an occurrence's start at which a
// reminder fires when the caller does not configure its own.
var DefaultLeadTimes = []time.Duration{5 * time.Minute, 15 * time.Minute, time.Hour}

// Sender scans upcoming occurrences and dispatches reminders whose fire time
// falls inside the scanned minute. Scan is meant to run on a schedule; each
// run covers exactly one minute, so a reminder fires once.
type Sender struct {
	logger    *zap.SugaredLogger
	events    eventsService
	notifier  Notifier
	leadTimes []time.Duration
}

type eventsService interface {
	QueryRange(ctx context.Context, filter model.EventsFilter) (*events.RangeResult, error)
}

func NewSender(logger *zap.SugaredLogger, eventsService eventsService, notifier Notifier, leadTimes []time.Duration) *Sender {
	if len(leadTimes) == 0 {
		leadTimes = DefaultLeadTimes
	}

	return &Sender{
		logger:    logger,
		events:    eventsService,
		notifier:  notifier,
		leadTimes: leadTimes,
	}
}

// Scan fires the reminders due in the current minute.
func (s *Sender) Scan(ctx context.Context) {
	s.scanWindow(ctx, time.Now().Truncate(time.Minute))
}

func (s *Sender) scanWindow(ctx context.Context, from time.Time) {
	to := from.Add(time.Minute)

	maxLead := s.leadTimes[0]
	for _, lead := range s.leadTimes[1:] {
		if lead > maxLead {
			maxLead = lead
		}
	}

	result, err := s.events.QueryRange(ctx, model.EventsFilter{
		From: from,
		To:   to.Add(maxLead),
	})
	if err != nil {
		s.logger.Errorw("reminder scan failed", "from", from, "error", err)
		return
	}
	for _, failed := range result.Failed {
		s.logger.Warnw("reminder scan skipped broken series", "event_id", failed.EventID, "error", failed.Err)
	}

	for _, occurrence := range result.Occurrences {
		for _, lead := range s.leadTimes {
			fireAt := occurrence.StartTime.Add(-lead)
			if fireAt.Before(from) || !fireAt.Before(to) {
				continue
			}

			if err := s.notifier.Notify(ctx, occurrence, lead); err != nil {
				s.logger.Errorw("failed to send reminder",
					"occurrence_id", occurrence.ID,
					"lead", lead,
					"error", err,
				)
			}
		}
	}
}
