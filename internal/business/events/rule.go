package events

import (
	"context"
	"fmt"
	"time"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/recurrence"
)

// buildRule assembles the engine's view of a series: the template's start in
// the rule's declared zone is the anchor, the template's span is the fixed
// per-occurrence duration.
func buildRule(event *model.Event, rule *model.RecurringRule) (recurrence.Rule, error) {
	loc, err := time.LoadLocation(rule.Timezone)
	if err != nil {
		return recurrence.Rule{}, fmt.Errorf("%w: timezone %q", recurrence.ErrInvalidAnchor, rule.Timezone)
	}

	termination, err := buildTermination(&rule.RecurringRuleCreate)
	if err != nil {
		return recurrence.Rule{}, err
	}

	return recurrence.Rule{
		Frequency:   mapFrequency(rule.Frequency),
		Interval:    rule.Interval,
		ByWeekday:   rule.DaysOfWeek,
		Anchor:      recurrence.WallTimeIn(event.StartTime, loc),
		Location:    loc,
		Duration:    event.EndTime.Sub(event.StartTime),
		Termination: termination,
	}, nil
}

func buildTermination(rule *model.RecurringRuleCreate) (recurrence.Termination, error) {
	switch {
	case rule.EndDate != nil && rule.EndOccurrences != nil:
		return recurrence.Termination{}, fmt.Errorf("%w: both end date and occurrence count set", recurrence.ErrInvalidTermination)
	case rule.EndDate != nil:
		return recurrence.Termination{Kind: recurrence.TerminateUntil, Until: *rule.EndDate}, nil
	case rule.EndOccurrences != nil:
		return recurrence.Termination{Kind: recurrence.TerminateAfterCount, Count: *rule.EndOccurrences}, nil
	default:
		return recurrence.Termination{Kind: recurrence.TerminateNever}, nil
	}
}

func mapFrequency(f model.Frequency) recurrence.Frequency {
	switch f {
	case model.FrequencyDaily:
		return recurrence.Daily
	case model.FrequencyWeekly:
		return recurrence.Weekly
	case model.FrequencyMonthly:
		return recurrence.Monthly
	default:
		return recurrence.Yearly
	}
}

// validateRuleCreate re-checks the rule-level invariants the engine enforces
// during expansion, so bad rules are rejected on the write path already.
func validateRuleCreate(rule *model.RecurringRuleCreate) error {
	if rule.Interval < 1 {
		return fmt.Errorf("%w: %d", recurrence.ErrInvalidInterval, rule.Interval)
	}

	termination, err := buildTermination(rule)
	if err != nil {
		return err
	}
	if termination.Kind == recurrence.TerminateAfterCount && termination.Count < 1 {
		return fmt.Errorf("%w: count %d", recurrence.ErrInvalidTermination, termination.Count)
	}

	if len(rule.DaysOfWeek) != 0 && rule.Frequency != model.FrequencyWeekly {
		return fmt.Errorf("%w: weekdays set on %v rule", recurrence.ErrInvalidWeekdaySet, rule.Frequency)
	}
	for _, wd := range rule.DaysOfWeek {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("%w: weekday %d", recurrence.ErrInvalidWeekdaySet, wd)
		}
	}

	if _, err := time.LoadLocation(rule.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q", recurrence.ErrInvalidAnchor, rule.Timezone)
	}

	return nil
}

func (s *Service) CreateRule(ctx context.Context, info *model.RecurringRuleCreate) (*model.RecurringRule, error) {
	if err := validateRuleCreate(info); err != nil {
		return nil, err
	}

	id, err := s.rulesRepository.CreateRule(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("rulesRepository.CreateRule: %w", err)
	}

	return &model.RecurringRule{ID: id, RecurringRuleCreate: *info}, nil
}

func (s *Service) GetRule(ctx context.Context, id int64) (*model.RecurringRule, error) {
	rule, err := s.rulesRepository.GetRuleByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("rulesRepository.GetRuleByID: %w", err)
	}

	return rule, nil
}

func (s *Service) UpdateRule(ctx context.Context, rule *model.RecurringRule) error {
	if err := validateRuleCreate(&rule.RecurringRuleCreate); err != nil {
		return err
	}

	if err := s.rulesRepository.UpdateRule(ctx, s.db, rule); err != nil {
		return fmt.Errorf("rulesRepository.UpdateRule: %w", err)
	}

	return nil
}

func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	if err := s.rulesRepository.DeleteRule(ctx, s.db, id); err != nil {
		return fmt.Errorf("rulesRepository.DeleteRule: %w", err)
	}

	return nil
}
