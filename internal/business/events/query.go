package events

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/recurrence"
)

// SeriesError records a recurring series whose expansion failed during a
// range query. The query still returns occurrences for every other series.
type SeriesError struct {
	EventID int64
	Err     error
}

type RangeResult struct {
	Occurrences []*model.Occurrence
	Failed      []SeriesError
}

// QueryRange returns every occurrence overlapping [from, to): non-recurring
// events verbatim, recurring series expanded and resolved against their
// exceptions. A broken series is reported in Failed instead of aborting the
// whole query.
func (s *Service) QueryRange(ctx context.Context, filter model.EventsFilter) (*RangeResult, error) {
	if filter.From.After(filter.To) {
		return nil, fmt.Errorf("%w: from %v after to %v", recurrence.ErrInvalidWindow, filter.From, filter.To)
	}

	plain, err := s.eventsRepository.GetEventsInRange(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventsInRange: %w", err)
	}

	templates, err := s.eventsRepository.GetRecurringEvents(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetRecurringEvents: %w", err)
	}

	result := &RangeResult{
		Occurrences: make([]*model.Occurrence, 0, len(plain)),
	}
	for _, event := range plain {
		result.Occurrences = append(result.Occurrences, occurrenceFromEvent(event))
	}

	for _, template := range templates {
		if !matchesCategories(template, filter.CategoryIDs) {
			continue
		}

		occurrences, err := s.expandTemplate(ctx, template, filter.From, filter.To)
		if err != nil {
			s.logger.Warnw("failed to expand recurring event",
				"event_id", template.ID,
				"error", err,
			)
			result.Failed = append(result.Failed, SeriesError{EventID: template.ID, Err: err})
			continue
		}

		result.Occurrences = append(result.Occurrences, occurrences...)
	}

	sortOccurrences(result.Occurrences)

	return result, nil
}

// ExpandRecurringEvents returns the resolved occurrences of a single series
// inside [from, to).
func (s *Service) ExpandRecurringEvents(ctx context.Context, eventID int64, from, to time.Time) ([]*model.Occurrence, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %v after to %v", recurrence.ErrInvalidWindow, from, to)
	}

	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}
	if !event.Recurring() {
		return nil, ErrNotRecurring
	}

	occurrences, err := s.expandTemplate(ctx, event, from, to)
	if err != nil {
		return nil, err
	}

	sortOccurrences(occurrences)

	return occurrences, nil
}

func (s *Service) expandTemplate(ctx context.Context, event *model.Event, from, to time.Time) ([]*model.Occurrence, error) {
	rule, err := s.rulesRepository.GetRuleByID(ctx, s.db, *event.RecurringRuleID)
	if err != nil {
		return nil, fmt.Errorf("rulesRepository.GetRuleByID: %w", err)
	}

	expansionRule, err := buildRule(event, rule)
	if err != nil {
		return nil, err
	}

	candidates, err := recurrence.Expand(expansionRule, from, to)
	if err != nil {
		return nil, fmt.Errorf("expanding rule %d: %w", rule.ID, err)
	}

	exceptions, err := s.exceptionsRepository.GetExceptionsByEventID(ctx, s.db, event.ID)
	if err != nil {
		return nil, fmt.Errorf("exceptionsRepository.GetExceptionsByEventID: %w", err)
	}

	return resolveOccurrences(event, candidates, exceptions), nil
}

func sortOccurrences(occurrences []*model.Occurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		if a.EventID != b.EventID {
			return a.EventID < b.EventID
		}
		return a.ID < b.ID
	})
}

func matchesCategories(event *model.Event, categoryIDs []int64) bool {
	if len(categoryIDs) == 0 {
		return true
	}
	if event.CategoryID == nil {
		return false
	}
	for _, id := range categoryIDs {
		if *event.CategoryID == id {
			return true
		}
	}
	return false
}
