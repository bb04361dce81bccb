package exceptions

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

// UpsertException writes an exception, replacing any existing one for the
// same (event_id, original_date); the pair carries a unique constraint.
func (*Repository) UpsertException(ctx context.Context, q database.Queryable, exception *model.EventException) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventExceptionsTable).
		Columns(
			"event_id",
			"original_date",
			"is_cancelled",
			"modified_title",
			"modified_description",
			"modified_start_time",
			"modified_end_time",
			"modified_location",
		).
		Values(
			exception.EventID,
			exception.OriginalDate,
			exception.IsCancelled,
			exception.ModifiedTitle,
			exception.ModifiedDescription,
			exception.ModifiedStartTime,
			exception.ModifiedEndTime,
			exception.ModifiedLocation,
		).
		Suffix(`on conflict (event_id, original_date) do update set
			is_cancelled = excluded.is_cancelled,
			modified_title = excluded.modified_title,
			modified_description = excluded.modified_description,
			modified_start_time = excluded.modified_start_time,
			modified_end_time = excluded.modified_end_time,
			modified_location = excluded.modified_location
			returning id`)

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
