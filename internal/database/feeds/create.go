package feeds

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) CreateFeed(ctx context.Context, q database.Queryable, feed *model.HolidayFeedCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.HolidayFeedsTable).
		Columns("url", "name", "is_visible").
		Values(feed.URL, feed.Name, feed.IsVisible).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
