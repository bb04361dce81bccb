package categories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetCategoryByID(ctx context.Context, q database.Queryable, id int64) (*model.Category, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &categoryDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToCategory(dto), nil
}

func (*Repository) GetCategoryByName(ctx context.Context, q database.Queryable, name string) (*model.Category, error) {
	qb := baseQuery.
		Where(sq.Eq{"name": name})

	dto := &categoryDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToCategory(dto), nil
}

func (*Repository) GetCategories(ctx context.Context, q database.Queryable) ([]*model.Category, error) {
	qb := baseQuery.OrderBy("name")

	var dtos []*categoryDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Category, len(dtos))
	for i, d := range dtos {
		res[i] = mapToCategory(d)
	}

	return res, nil
}
