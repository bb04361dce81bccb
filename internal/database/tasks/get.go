package tasks

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetTaskByID(ctx context.Context, q database.Queryable, id int64) (*model.Task, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &taskDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToTask(dto), nil
}

func (*Repository) GetTasks(ctx context.Context, q database.Queryable, filter model.TasksFilter) ([]*model.Task, error) {
	qb := baseQuery.
		OrderBy("kanban_column_id nulls last", "kanban_order nulls last", "id")

	if filter.Status != nil {
		qb = qb.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if len(filter.CategoryIDs) != 0 {
		qb = qb.Where(sq.Eq{"category_id": filter.CategoryIDs})
	}
	if filter.KanbanColumnID != nil {
		qb = qb.Where(sq.Eq{"kanban_column_id": *filter.KanbanColumnID})
	}
	if filter.DueBefore != nil {
		qb = qb.Where(sq.Lt{"due_date": *filter.DueBefore})
	}

	var dtos []*taskDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToTasks(dtos), nil
}

func (*Repository) SearchTasks(ctx context.Context, q database.Queryable, query string) ([]*model.Task, error) {
	pattern := "%" + query + "%"
	qb := baseQuery.
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"description": pattern}}).
		OrderBy("id")

	var dtos []*taskDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToTasks(dtos), nil
}
