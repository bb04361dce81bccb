package events

import (
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/recurrence"
)

// resolveOccurrences applies the event's exceptions to a batch of expanded
// candidates. Exceptions are matched on the candidate's original start, so a
// modified occurrence keeps its identity even after being moved.
func resolveOccurrences(event *model.Event, candidates []recurrence.Candidate, exceptions []*model.EventException) []*model.Occurrence {
	overrides := make(map[int64]*model.EventException, len(exceptions))
	for _, e := range exceptions {
		overrides[e.OriginalDate.Unix()] = e
	}

	occurrences := make([]*model.Occurrence, 0, len(candidates))
	for _, c := range candidates {
		exception := overrides[c.OriginalDate.Unix()]
		if exception != nil && exception.IsCancelled {
			continue
		}

		occurrences = append(occurrences, buildOccurrence(event, c, exception))
	}

	return occurrences
}

func buildOccurrence(event *model.Event, c recurrence.Candidate, exception *model.EventException) *model.Occurrence {
	originalDate := c.OriginalDate
	occurrence := &model.Occurrence{
		ID:              model.OccurrenceID(event.ID, originalDate),
		EventID:         event.ID,
		Title:           event.Title,
		Description:     event.Description,
		StartTime:       c.Start,
		EndTime:         c.End,
		AllDay:          event.AllDay,
		Location:        event.Location,
		Priority:        event.Priority,
		CategoryID:      event.CategoryID,
		RecurringRuleID: event.RecurringRuleID,
		OriginalDate:    &originalDate,
	}

	if exception == nil {
		return occurrence
	}

	if exception.ModifiedTitle != nil {
		occurrence.Title = *exception.ModifiedTitle
	}
	if exception.ModifiedDescription != nil {
		occurrence.Description = *exception.ModifiedDescription
	}
	if exception.ModifiedLocation != nil {
		occurrence.Location = *exception.ModifiedLocation
	}
	if exception.ModifiedStartTime != nil {
		duration := occurrence.EndTime.Sub(occurrence.StartTime)
		occurrence.StartTime = *exception.ModifiedStartTime
		occurrence.EndTime = occurrence.StartTime.Add(duration)
	}
	if exception.ModifiedEndTime != nil {
		occurrence.EndTime = *exception.ModifiedEndTime
	}

	return occurrence
}

// occurrenceFromEvent wraps a non-recurring event as a single occurrence.
func occurrenceFromEvent(event *model.Event) *model.Occurrence {
	return &model.Occurrence{
		ID:          model.OccurrenceID(event.ID, event.StartTime),
		EventID:     event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		AllDay:      event.AllDay,
		Location:    event.Location,
		Priority:    event.Priority,
		CategoryID:  event.CategoryID,
	}
}
