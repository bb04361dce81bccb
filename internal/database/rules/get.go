package rules

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetRuleByID(ctx context.Context, q database.Queryable, id int64) (*model.RecurringRule, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &ruleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRule(dto)
}

func (*Repository) GetRules(ctx context.Context, q database.Queryable) ([]*model.RecurringRule, error) {
	qb := baseQuery.OrderBy("id")

	var dtos []*ruleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.RecurringRule, len(dtos))
	for i, d := range dtos {
		var err error
		if res[i], err = mapToRule(d); err != nil {
			return nil, fmt.Errorf("map rule %v: %w", d.ID, err)
		}
	}

	return res, nil
}
