package events

import "github.com/calendar-todo/backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"title",
		"description",
		"start_time",
		"end_time",
		"all_day",
		"location",
		"priority",
		"category_id",
		"recurring_rule_id",
		"created_at",
		"updated_at",
	).
	From(database.EventsTable)
