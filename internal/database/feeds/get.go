package feeds

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetFeedByID(ctx context.Context, q database.Queryable, id int64) (*model.HolidayFeed, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &feedDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToFeed(dto), nil
}

func (*Repository) GetFeeds(ctx context.Context, q database.Queryable) ([]*model.HolidayFeed, error) {
	qb := baseQuery.OrderBy("name")

	var dtos []*feedDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.HolidayFeed, len(dtos))
	for i, d := range dtos {
		res[i] = mapToFeed(d)
	}

	return res, nil
}
