package holidays

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/calendar-todo/backend/internal/config"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/redis"
)

// fetchFeed downloads an ICS document, revalidating against the cached copy
// with If-None-Match / If-Modified-Since. On a network error or a non-OK
// status the stale cached body is served if one exists.
func (s *Service) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	cached, err := s.cache.GetFeed(ctx, url)
	if err != nil && !errors.Is(err, model.ErrNoRecord) {
		s.logger.Warnw("feed cache read failed", "url", url, "error", err)
		cached = nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if cached != nil {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if cached != nil {
			s.logger.Warnw("feed fetch failed, serving cached body", "url", url, "error", err)
			return cached.Body, nil
		}
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}

		fresh := &redis.CachedFeed{
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
			Body:         body,
		}
		if err := s.cache.SetFeed(ctx, url, fresh, config.FeedCacheTTL()); err != nil {
			s.logger.Warnw("feed cache write failed", "url", url, "error", err)
		}

		return body, nil

	case http.StatusNotModified:
		if cached == nil {
			return nil, errors.New("304 response without cached body")
		}
		return cached.Body, nil

	default:
		if cached != nil {
			s.logger.Warnw("feed fetch returned non-OK status, serving cached body",
				"url", url, "status", resp.StatusCode)
			return cached.Body, nil
		}
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}
}
