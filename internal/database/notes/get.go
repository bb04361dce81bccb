package notes

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetNoteByID(ctx context.Context, q database.Queryable, id int64) (*model.Note, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &noteDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToNote(dto), nil
}

func (*Repository) GetNotes(ctx context.Context, q database.Queryable) ([]*model.Note, error) {
	qb := baseQuery.OrderBy("updated_at desc")

	var dtos []*noteDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToNotes(dtos), nil
}

func (*Repository) SearchNotes(ctx context.Context, q database.Queryable, query string) ([]*model.Note, error) {
	pattern := "%" + query + "%"
	qb := baseQuery.
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"content": pattern}}).
		OrderBy("updated_at desc")

	var dtos []*noteDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToNotes(dtos), nil
}
