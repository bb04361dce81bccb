package feeds

import "github.com/calendar-todo/backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"url",
		"name",
		"is_visible",
		"last_sync_time",
		"sync_error",
		"created_at",
		"updated_at",
	).
	From(database.HolidayFeedsTable)
