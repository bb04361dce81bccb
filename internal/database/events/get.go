package events

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto), nil
}

// GetEventsInRange returns non-recurring events overlapping [from, to).
func (*Repository) GetEventsInRange(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"recurring_rule_id": nil}).
		Where(sq.Lt{"start_time": filter.To}).
		Where(sq.Gt{"end_time": filter.From})

	if len(filter.CategoryIDs) != 0 {
		qb = qb.Where(sq.Eq{"category_id": filter.CategoryIDs})
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos), nil
}

// GetRecurringEvents returns every series template. Window filtering happens
// during expansion; a series whose template start predates the window can
// still produce occurrences inside it.
func (*Repository) GetRecurringEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.NotEq{"recurring_rule_id": nil})

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos), nil
}

func (*Repository) SearchEvents(ctx context.Context, q database.Queryable, query string) ([]*model.Event, error) {
	pattern := "%" + query + "%"
	qb := baseQuery.
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"description": pattern}}).
		OrderBy("start_time")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos), nil
}
