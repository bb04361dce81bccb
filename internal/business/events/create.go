package events

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/model"
)

// EventCreateInput bundles the event fields with an optional inline rule; a
// non-nil rule makes the event recurring in the same transaction.
type EventCreateInput struct {
	Event model.EventCreate
	Rule  *model.RecurringRuleCreate
}

func (s *Service) CreateEvent(ctx context.Context, info *EventCreateInput) (*model.Event, error) {
	if info.Rule == nil {
		id, err := s.eventsRepository.CreateEvent(ctx, s.db, &info.Event)
		if err != nil {
			return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
		}

		return &model.Event{ID: id, EventCreate: info.Event}, nil
	}

	if err := validateRuleCreate(info.Rule); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	ruleID, err := s.rulesRepository.CreateRule(ctx, tx, info.Rule)
	if err != nil {
		return nil, fmt.Errorf("rulesRepository.CreateRule: %w", err)
	}

	event := info.Event
	event.RecurringRuleID = &ruleID
	id, err := s.eventsRepository.CreateEvent(ctx, tx, &event)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &model.Event{ID: id, EventCreate: event}, nil
}
