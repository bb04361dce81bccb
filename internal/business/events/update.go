package events

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/model"
)

func (s *Service) UpdateEvent(ctx context.Context, event *model.Event) error {
	old, err := s.eventsRepository.GetEventByID(ctx, s.db, event.ID)
	if err != nil {
		return fmt.Errorf("get old event: %w", err)
	}

	// Changing the series template shifts every occurrence, so stale
	// per-occurrence overrides are dropped along with it.
	templateChanged := old.Recurring() &&
		(!old.StartTime.Equal(event.StartTime) || !old.EndTime.Equal(event.EndTime))
	if !templateChanged {
		if err := s.eventsRepository.UpdateEvent(ctx, s.db, event); err != nil {
			return fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
		}

		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.UpdateEvent(ctx, tx, event); err != nil {
		return fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}
	if err := s.exceptionsRepository.DeleteExceptionsByEventID(ctx, tx, event.ID); err != nil {
		return fmt.Errorf("exceptionsRepository.DeleteExceptionsByEventID: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
