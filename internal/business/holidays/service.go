package holidays

import (
	"context"
	"net/http"
	"time"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/redis"
	"go.uber.org/zap"
)

// Service imports national holiday ICS feeds as regular events. Every feed
// owns a category named after it; a sync replaces the category's events
// wholesale.
type Service struct {
	db                   database.PGX
	logger               *zap.SugaredLogger
	client               *http.Client
	feedsRepository      feedsRepository
	eventsRepository     eventsRepository
	categoriesRepository categoriesRepository
	cache                feedCache
}

type feedsRepository interface {
	CreateFeed(ctx context.Context, q database.Queryable, feed *model.HolidayFeedCreate) (int64, error)
	GetFeedByID(ctx context.Context, q database.Queryable, id int64) (*model.HolidayFeed, error)
	GetFeeds(ctx context.Context, q database.Queryable) ([]*model.HolidayFeed, error)
	UpdateFeed(ctx context.Context, q database.Queryable, feed *model.HolidayFeed) error
	SetSyncStatus(ctx context.Context, q database.Queryable, id int64, syncTime time.Time, syncErr *string) error
	DeleteFeed(ctx context.Context, q database.Queryable, id int64) error
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	DeleteEventsByCategory(ctx context.Context, q database.Queryable, categoryID int64) error
}

type categoriesRepository interface {
	GetCategoryByName(ctx context.Context, q database.Queryable, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, q database.Queryable, category *model.CategoryCreate) (int64, error)
}

type feedCache interface {
	GetFeed(ctx context.Context, url string) (*redis.CachedFeed, error)
	SetFeed(ctx context.Context, url string, feed *redis.CachedFeed, ttl time.Duration) error
	DeleteFeed(ctx context.Context, url string) error
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	feedsRepo feedsRepository,
	eventsRepo eventsRepository,
	categoriesRepo categoriesRepository,
	cache feedCache,
) *Service {
	return &Service{
		db:                   db,
		logger:               logger,
		client:               &http.Client{Timeout: 15 * time.Second},
		feedsRepository:      feedsRepo,
		eventsRepository:     eventsRepo,
		categoriesRepository: categoriesRepo,
		cache:                cache,
	}
}
