package notes

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) UpdateNote(ctx context.Context, q database.Queryable, note *model.Note) error {
	qb := database.PSQL.
		Update(database.NotesTable).
		SetMap(map[string]interface{}{
			"title":      note.Title,
			"content":    note.Content,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": note.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
