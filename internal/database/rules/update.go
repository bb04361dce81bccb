package rules

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) UpdateRule(ctx context.Context, q database.Queryable, rule *model.RecurringRule) error {
	qb := database.PSQL.
		Update(database.RecurringRulesTable).
		SetMap(map[string]interface{}{
			"frequency":       rule.Frequency.String(),
			`"interval"`:      rule.Interval,
			"days_of_week":    formatDays(rule.DaysOfWeek),
			"timezone":        rule.Timezone,
			"end_date":        rule.EndDate,
			"end_occurrences": rule.EndOccurrences,
		}).
		Where(sq.Eq{"id": rule.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
