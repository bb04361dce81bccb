package feeds

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) UpdateFeed(ctx context.Context, q database.Queryable, feed *model.HolidayFeed) error {
	qb := database.PSQL.
		Update(database.HolidayFeedsTable).
		SetMap(map[string]interface{}{
			"url":        feed.URL,
			"name":       feed.Name,
			"is_visible": feed.IsVisible,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": feed.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// SetSyncStatus records the outcome of a sync attempt; syncErr nil clears a
// previous error.
func (*Repository) SetSyncStatus(ctx context.Context, q database.Queryable, id int64, syncTime time.Time, syncErr *string) error {
	qb := database.PSQL.
		Update(database.HolidayFeedsTable).
		SetMap(map[string]interface{}{
			"last_sync_time": syncTime,
			"sync_error":     syncErr,
			"updated_at":     sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
