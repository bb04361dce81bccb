package tasks

import "github.com/calendar-todo/backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"title",
		"description",
		"due_date",
		"priority",
		"status",
		"category_id",
		"recurring_rule_id",
		"kanban_column_id",
		"kanban_order",
		"completed_at",
		"created_at",
		"updated_at",
	).
	From(database.TasksTable)
