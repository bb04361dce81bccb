package events

import (
	"context"
	"errors"
	"time"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"go.uber.org/zap"
)

// ErrNotRecurring is returned when a series operation targets an event that
// has no recurring rule attached.
var ErrNotRecurring = errors.New("event is not recurring")

type Service struct {
	db                   database.PGX
	logger               *zap.SugaredLogger
	eventsRepository     eventsRepository
	rulesRepository      rulesRepository
	exceptionsRepository exceptionsRepository
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEventsInRange(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	GetRecurringEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
}

type rulesRepository interface {
	CreateRule(ctx context.Context, q database.Queryable, rule *model.RecurringRuleCreate) (int64, error)
	GetRuleByID(ctx context.Context, q database.Queryable, id int64) (*model.RecurringRule, error)
	UpdateRule(ctx context.Context, q database.Queryable, rule *model.RecurringRule) error
	DeleteRule(ctx context.Context, q database.Queryable, id int64) error
}

type exceptionsRepository interface {
	GetExceptionsByEventID(ctx context.Context, q database.Queryable, eventID int64) ([]*model.EventException, error)
	UpsertException(ctx context.Context, q database.Queryable, exception *model.EventException) (int64, error)
	DeleteException(ctx context.Context, q database.Queryable, eventID int64, originalDate time.Time) error
	DeleteExceptionsByEventID(ctx context.Context, q database.Queryable, eventID int64) error
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	eventsRepo eventsRepository,
	rulesRepo rulesRepository,
	exceptionsRepo exceptionsRepository,
) *Service {
	return &Service{
		db:                   db,
		logger:               logger,
		eventsRepository:     eventsRepo,
		rulesRepository:      rulesRepo,
		exceptionsRepository: exceptionsRepo,
	}
}
