package database

import sq "github.com/Masterminds/squirrel"

// PSQL is the shared statement builder; Postgres wants $1-style placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	EventsTable          = "events"
	RecurringRulesTable  = "recurring_rules"
	EventExceptionsTable = "event_exceptions"
	CategoriesTable      = "categories"
	TasksTable           = "tasks"
	NotesTable           = "notes"
	HolidayFeedsTable    = "holiday_feeds"
)
