package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"title":             event.Title,
			"description":       event.Description,
			"start_time":        event.StartTime,
			"end_time":          event.EndTime,
			"all_day":           event.AllDay,
			"location":          event.Location,
			"priority":          event.Priority,
			"category_id":       event.CategoryID,
			"recurring_rule_id": event.RecurringRuleID,
			"updated_at":        sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": event.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
