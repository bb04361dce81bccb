package holidays

import (
	"context"
	"errors"
	"fmt"

	"github.com/calendar-todo/backend/internal/model"
)

func (s *Service) CreateFeed(ctx context.Context, info *model.HolidayFeedCreate) (*model.HolidayFeed, error) {
	id, err := s.feedsRepository.CreateFeed(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("feedsRepository.CreateFeed: %w", err)
	}

	return &model.HolidayFeed{ID: id, HolidayFeedCreate: *info}, nil
}

func (s *Service) GetFeed(ctx context.Context, id int64) (*model.HolidayFeed, error) {
	feed, err := s.feedsRepository.GetFeedByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("feedsRepository.GetFeedByID: %w", err)
	}

	return feed, nil
}

func (s *Service) GetFeeds(ctx context.Context) ([]*model.HolidayFeed, error) {
	feeds, err := s.feedsRepository.GetFeeds(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("feedsRepository.GetFeeds: %w", err)
	}

	return feeds, nil
}

func (s *Service) UpdateFeed(ctx context.Context, feed *model.HolidayFeed) error {
	old, err := s.feedsRepository.GetFeedByID(ctx, s.db, feed.ID)
	if err != nil {
		return fmt.Errorf("get old feed: %w", err)
	}

	if err := s.feedsRepository.UpdateFeed(ctx, s.db, feed); err != nil {
		return fmt.Errorf("feedsRepository.UpdateFeed: %w", err)
	}

	// A changed URL makes the cached document worthless.
	if old.URL != feed.URL {
		if err := s.cache.DeleteFeed(ctx, old.URL); err != nil {
			s.logger.Warnw("feed cache invalidation failed", "url", old.URL, "error", err)
		}
	}

	return nil
}

// DeleteFeed removes the feed, its imported events, and its cached download.
func (s *Service) DeleteFeed(ctx context.Context, id int64) error {
	feed, err := s.feedsRepository.GetFeedByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("feedsRepository.GetFeedByID: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	category, err := s.categoriesRepository.GetCategoryByName(ctx, tx, feed.Name)
	switch {
	case err == nil:
		if err := s.eventsRepository.DeleteEventsByCategory(ctx, tx, category.ID); err != nil {
			return fmt.Errorf("eventsRepository.DeleteEventsByCategory: %w", err)
		}
	case !errors.Is(err, model.ErrNoRecord):
		return fmt.Errorf("categoriesRepository.GetCategoryByName: %w", err)
	}

	if err := s.feedsRepository.DeleteFeed(ctx, tx, id); err != nil {
		return fmt.Errorf("feedsRepository.DeleteFeed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	if err := s.cache.DeleteFeed(ctx, feed.URL); err != nil {
		s.logger.Warnw("feed cache invalidation failed", "url", feed.URL, "error", err)
	}

	return nil
}
