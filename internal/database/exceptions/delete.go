package exceptions

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
)

func (*Repository) DeleteException(ctx context.Context, q database.Queryable, eventID int64, originalDate time.Time) error {
	qb := database.PSQL.
		Delete(database.EventExceptionsTable).
		Where(sq.Eq{"event_id": eventID, "original_date": originalDate})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteExceptionsByEventID(ctx context.Context, q database.Queryable, eventID int64) error {
	qb := database.PSQL.
		Delete(database.EventExceptionsTable).
		Where(sq.Eq{"event_id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
