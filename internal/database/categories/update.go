package categories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) UpdateCategory(ctx context.Context, q database.Queryable, category *model.Category) error {
	qb := database.PSQL.
		Update(database.CategoriesTable).
		SetMap(map[string]interface{}{
			"name":       category.Name,
			"color":      category.Color,
			"symbol":     category.Symbol,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": category.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
