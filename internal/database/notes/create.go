package notes

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) CreateNote(ctx context.Context, q database.Queryable, note *model.NoteCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.NotesTable).
		Columns("title", "content").
		Values(note.Title, note.Content).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
