package events

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"title",
			"description",
			"start_time",
			"end_time",
			"all_day",
			"location",
			"priority",
			"category_id",
			"recurring_rule_id",
		).
		Values(
			event.Title,
			event.Description,
			event.StartTime,
			event.EndTime,
			event.AllDay,
			event.Location,
			event.Priority,
			event.CategoryID,
			event.RecurringRuleID,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
