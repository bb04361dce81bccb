package holidays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calendar-todo/backend/internal/config"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/teambition/rrule-go"
)

// maxFeedOccurrences caps how many events a single feed may import.
const maxFeedOccurrences = 2000

// SyncFeed refreshes one feed: download, parse, expand recurring holidays
// over the configured horizon, and replace the feed category's events. The
// outcome is recorded on the feed either way.
func (s *Service) SyncFeed(ctx context.Context, id int64) error {
	feed, err := s.feedsRepository.GetFeedByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("feedsRepository.GetFeedByID: %w", err)
	}

	syncErr := s.syncFeed(ctx, feed)

	var errText *string
	if syncErr != nil {
		text := syncErr.Error()
		errText = &text
	}
	if err := s.feedsRepository.SetSyncStatus(ctx, s.db, id, time.Now(), errText); err != nil {
		s.logger.Errorw("failed to record feed sync status", "feed_id", id, "error", err)
	}

	return syncErr
}

// SyncAll refreshes every feed, continuing past individual failures.
func (s *Service) SyncAll(ctx context.Context) error {
	feeds, err := s.feedsRepository.GetFeeds(ctx, s.db)
	if err != nil {
		return fmt.Errorf("feedsRepository.GetFeeds: %w", err)
	}

	for _, feed := range feeds {
		if err := s.SyncFeed(ctx, feed.ID); err != nil {
			s.logger.Warnw("feed sync failed", "feed_id", feed.ID, "name", feed.Name, "error", err)
		}
	}

	return nil
}

func (s *Service) syncFeed(ctx context.Context, feed *model.HolidayFeed) error {
	body, err := s.fetchFeed(ctx, feed.URL)
	if err != nil {
		return err
	}

	parsed, err := s.parseFeed(feed.URL, body)
	if err != nil {
		return err
	}

	now := time.Now()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := now.Add(config.FeedSyncHorizon())

	occurrences, err := expandHolidays(parsed, from, to)
	if err != nil {
		return err
	}

	categoryID, err := s.feedCategory(ctx, feed)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.DeleteEventsByCategory(ctx, tx, categoryID); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEventsByCategory: %w", err)
	}

	for _, o := range occurrences {
		event := &model.EventCreate{
			Title:       o.Summary,
			Description: o.Description,
			StartTime:   o.Start,
			EndTime:     o.End,
			AllDay:      o.AllDay,
			CategoryID:  &categoryID,
		}
		if _, err := s.eventsRepository.CreateEvent(ctx, tx, event); err != nil {
			return fmt.Errorf("eventsRepository.CreateEvent: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.logger.Infow("feed synced", "feed_id", feed.ID, "name", feed.Name, "events", len(occurrences))

	return nil
}

// expandHolidays materializes feed events inside [from, to), expanding RRULE
// entries and passing plain ones through.
func expandHolidays(events []holidayEvent, from, to time.Time) ([]holidayEvent, error) {
	var out []holidayEvent

	for _, event := range events {
		if event.RRule == "" {
			if event.Start.Before(to) && event.End.After(from) {
				out = append(out, normalizeAllDay(event))

				if len(out) > maxFeedOccurrences {
					return nil, fmt.Errorf("feed expands to more than %d events", maxFeedOccurrences)
				}
			}
			continue
		}

		rule, err := rrule.StrToRRule(event.RRule)
		if err != nil {
			return nil, fmt.Errorf("parse rrule %q: %w", event.RRule, err)
		}
		rule.DTStart(event.Start)

		duration := event.End.Sub(event.Start)
		for _, start := range rule.Between(from.In(event.Start.Location()), to.In(event.Start.Location()), true) {
			occurrence := event
			occurrence.Start = start
			occurrence.End = start.Add(duration)
			out = append(out, normalizeAllDay(occurrence))

			if len(out) > maxFeedOccurrences {
				return nil, fmt.Errorf("feed expands to more than %d events", maxFeedOccurrences)
			}
		}
	}

	return out, nil
}

func normalizeAllDay(event holidayEvent) holidayEvent {
	if !event.AllDay {
		return event
	}

	day := time.Date(event.Start.Year(), event.Start.Month(), event.Start.Day(), 0, 0, 0, 0, event.Start.Location())
	event.Start = day
	event.End = day.Add(24 * time.Hour)
	return event
}

// feedCategory finds or creates the category a feed imports into.
func (s *Service) feedCategory(ctx context.Context, feed *model.HolidayFeed) (int64, error) {
	category, err := s.categoriesRepository.GetCategoryByName(ctx, s.db, feed.Name)
	if err == nil {
		return category.ID, nil
	}
	if !errors.Is(err, model.ErrNoRecord) {
		return 0, fmt.Errorf("categoriesRepository.GetCategoryByName: %w", err)
	}

	id, err := s.categoriesRepository.CreateCategory(ctx, s.db, &model.CategoryCreate{
		Name:   feed.Name,
		Color:  "#d93025",
		Symbol: "🎉",
	})
	if err != nil {
		return 0, fmt.Errorf("categoriesRepository.CreateCategory: %w", err)
	}

	return id, nil
}
