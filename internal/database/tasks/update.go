package tasks

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) UpdateTask(ctx context.Context, q database.Queryable, task *model.Task) error {
	qb := database.PSQL.
		Update(database.TasksTable).
		SetMap(map[string]interface{}{
			"title":             task.Title,
			"description":       task.Description,
			"due_date":          task.DueDate,
			"priority":          task.Priority,
			"status":            string(task.Status),
			"category_id":       task.CategoryID,
			"recurring_rule_id": task.RecurringRuleID,
			"kanban_column_id":  task.KanbanColumnID,
			"kanban_order":      task.KanbanOrder,
			"completed_at":      task.CompletedAt,
			"updated_at":        sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": task.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// ShiftKanbanOrders opens a slot at the given order in a column by pushing
// every task at or past it one step down.
func (*Repository) ShiftKanbanOrders(ctx context.Context, q database.Queryable, columnID int64, fromOrder int) error {
	qb := database.PSQL.
		Update(database.TasksTable).
		Set("kanban_order", sq.Expr("kanban_order + 1")).
		Where(sq.Eq{"kanban_column_id": columnID}).
		Where(sq.GtOrEq{"kanban_order": fromOrder})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
