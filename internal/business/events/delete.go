package events

import (
	"context"
	"fmt"
)

// DeleteEvent removes the event together with its rule and exceptions.
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if !event.Recurring() {
		if err := s.eventsRepository.DeleteEvent(ctx, s.db, id); err != nil {
			return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
		}

		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	if err := s.exceptionsRepository.DeleteExceptionsByEventID(ctx, tx, id); err != nil {
		return fmt.Errorf("exceptionsRepository.DeleteExceptionsByEventID: %w", err)
	}
	if err := s.eventsRepository.DeleteEvent(ctx, tx, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}
	if err := s.rulesRepository.DeleteRule(ctx, tx, *event.RecurringRuleID); err != nil {
		return fmt.Errorf("rulesRepository.DeleteRule: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
