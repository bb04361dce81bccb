package rules

import (
	"context"
	"fmt"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
)

func (*Repository) CreateRule(ctx context.Context, q database.Queryable, rule *model.RecurringRuleCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.RecurringRulesTable).
		Columns(
			"frequency",
			`"interval"`,
			"days_of_week",
			"timezone",
			"end_date",
			"end_occurrences",
		).
		Values(
			rule.Frequency.String(),
			rule.Interval,
			formatDays(rule.DaysOfWeek),
			rule.Timezone,
			rule.EndDate,
			rule.EndOccurrences,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
