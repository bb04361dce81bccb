package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type ruleDTO struct {
	ID             int64
	Frequency      string
	Interval       int
	DaysOfWeek     *string
	Timezone       string
	EndDate        *time.Time
	EndOccurrences *int
	CreatedAt      time.Time
}

func mapToRule(dto *ruleDTO) (*model.RecurringRule, error) {
	frequency, err := model.ParseFrequency(dto.Frequency)
	if err != nil {
		return nil, err
	}

	days, err := parseDays(dto.DaysOfWeek)
	if err != nil {
		return nil, err
	}

	return &model.RecurringRule{
		ID: dto.ID,
		RecurringRuleCreate: model.RecurringRuleCreate{
			Frequency:      frequency,
			Interval:       dto.Interval,
			DaysOfWeek:     days,
			Timezone:       dto.Timezone,
			EndDate:        dto.EndDate,
			EndOccurrences: dto.EndOccurrences,
		},
		CreatedAt: dto.CreatedAt,
	}, nil
}

// Weekdays are stored as a comma-separated list of 0-6, Sunday first.
func parseDays(s *string) ([]time.Weekday, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	parts := strings.Split(*s, ",")
	days := make([]time.Weekday, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse weekday %q: %w", p, err)
		}
		days[i] = time.Weekday(n)
	}

	return days, nil
}

func formatDays(days []time.Weekday) *string {
	if len(days) == 0 {
		return nil
	}

	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	s := strings.Join(parts, ",")

	return &s
}
