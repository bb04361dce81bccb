package exceptions

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) GetExceptionsByEventID(ctx context.Context, q database.Queryable, eventID int64) ([]*model.EventException, error) {
	qb := baseQuery.
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("original_date")

	var dtos []*exceptionDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.EventException, len(dtos))
	for i, d := range dtos {
		res[i] = mapToException(d)
	}

	return res, nil
}
