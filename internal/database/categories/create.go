package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgconn"
)

const uniqueViolationCode = "23505"

func (*Repository) CreateCategory(ctx context.Context, q database.Queryable, category *model.CategoryCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.CategoriesTable).
		Columns("name", "color", "symbol").
		Values(category.Name, category.Color, category.Symbol).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
