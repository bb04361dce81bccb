package events

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/model"
)

func (s *Service) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	return event, nil
}

func (s *Service) GetEventExceptions(ctx context.Context, eventID int64) ([]*model.EventException, error) {
	if err := s.checkRecurring(ctx, eventID); err != nil {
		return nil, err
	}

	exceptions, err := s.exceptionsRepository.GetExceptionsByEventID(ctx, s.db, eventID)
	if err != nil {
		return nil, fmt.Errorf("exceptionsRepository.GetExceptionsByEventID: %w", err)
	}

	return exceptions, nil
}
