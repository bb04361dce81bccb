package exceptions

import "github.com/calendar-todo/backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"event_id",
		"original_date",
		"is_cancelled",
		"modified_title",
		"modified_description",
		"modified_start_time",
		"modified_end_time",
		"modified_location",
		"created_at",
	).
	From(database.EventExceptionsTable)
