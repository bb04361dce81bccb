package events

import (
	"context"
	"fmt"
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

// OccurrenceUpdate carries the per-occurrence overrides; nil fields keep the
// template's value.
type OccurrenceUpdate struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
}

// CancelOccurrence removes a single occurrence from a series by writing a
// cancellation exception at its original date.
func (s *Service) CancelOccurrence(ctx context.Context, eventID int64, originalDate time.Time) error {
	if err := s.checkRecurring(ctx, eventID); err != nil {
		return err
	}

	exception := &model.EventException{
		EventID:      eventID,
		OriginalDate: originalDate,
		IsCancelled:  true,
	}
	if _, err := s.exceptionsRepository.UpsertException(ctx, s.db, exception); err != nil {
		return fmt.Errorf("exceptionsRepository.UpsertException: %w", err)
	}

	return nil
}

// UpdateOccurrence overrides fields of a single occurrence. Writing an update
// over an existing cancellation revives the occurrence with the new fields.
func (s *Service) UpdateOccurrence(ctx context.Context, eventID int64, originalDate time.Time, update *OccurrenceUpdate) error {
	if err := s.checkRecurring(ctx, eventID); err != nil {
		return err
	}

	exception := &model.EventException{
		EventID:             eventID,
		OriginalDate:        originalDate,
		ModifiedTitle:       update.Title,
		ModifiedDescription: update.Description,
		ModifiedStartTime:   update.StartTime,
		ModifiedEndTime:     update.EndTime,
		ModifiedLocation:    update.Location,
	}
	if _, err := s.exceptionsRepository.UpsertException(ctx, s.db, exception); err != nil {
		return fmt.Errorf("exceptionsRepository.UpsertException: %w", err)
	}

	return nil
}

// RestoreOccurrence deletes the exception at the given original date, letting
// the occurrence fall back to the template.
func (s *Service) RestoreOccurrence(ctx context.Context, eventID int64, originalDate time.Time) error {
	if err := s.exceptionsRepository.DeleteException(ctx, s.db, eventID, originalDate); err != nil {
		return fmt.Errorf("exceptionsRepository.DeleteException: %w", err)
	}

	return nil
}

func (s *Service) checkRecurring(ctx context.Context, eventID int64) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}
	if !event.Recurring() {
		return ErrNotRecurring
	}

	return nil
}
