package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const feedCachePrefix = "feed_cache:"

// CachedFeed is a downloaded ICS document together with the validators the
// next conditional request should send.
type CachedFeed struct {
	ETag         string `json:"etag"`
	LastModified string `json:"last_modified"`
	Body         []byte `json:"body"`
}

// FeedCacheRepository keeps downloaded holiday feeds in redis so repeated
// syncs can revalidate instead of refetching.
type FeedCacheRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewFeedCacheRepository(pool *redis.Pool, logger *zap.SugaredLogger) *FeedCacheRepository {
	return &FeedCacheRepository{pool: pool, logger: logger}
}

func (r *FeedCacheRepository) GetFeed(ctx context.Context, url string) (*CachedFeed, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", feedCachePrefix+url))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET: %w", err)
	}

	cached := &CachedFeed{}
	if err := json.Unmarshal(data, cached); err != nil {
		return nil, fmt.Errorf("unmarshal cached feed: %w", err)
	}

	return cached, nil
}

func (r *FeedCacheRepository) SetFeed(ctx context.Context, url string, feed *CachedFeed, ttl time.Duration) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("marshal cached feed: %w", err)
	}

	if _, err := conn.Do("SET", feedCachePrefix+url, data, "EX", int(ttl.Seconds())); err != nil {
		return fmt.Errorf("SET: %w", err)
	}

	return nil
}

func (r *FeedCacheRepository) DeleteFeed(ctx context.Context, url string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", feedCachePrefix+url); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}
