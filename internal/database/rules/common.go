package rules

import "github.com/calendar-todo/backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// "interval" is reserved in SQL, hence the quoting.
var baseQuery = database.PSQL.
	Select("id",
		"frequency",
		`"interval"`,
		"days_of_week",
		"timezone",
		"end_date",
		"end_occurrences",
		"created_at",
	).
	From(database.RecurringRulesTable)
