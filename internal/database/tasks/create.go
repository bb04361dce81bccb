package tasks

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) CreateTask(ctx context.Context, q database.Queryable, task *model.TaskCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.TasksTable).
		Columns(
			"title",
			"description",
			"due_date",
			"priority",
			"status",
			"category_id",
			"recurring_rule_id",
			"kanban_column_id",
			"kanban_order",
		).
		Values(
			task.Title,
			task.Description,
			task.DueDate,
			task.Priority,
			string(task.Status),
			task.CategoryID,
			task.RecurringRuleID,
			task.KanbanColumnID,
			task.KanbanOrder,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
