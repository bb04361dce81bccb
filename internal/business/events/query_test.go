package events

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEventsRepo struct {
	events map[int64]*model.Event
}

func (f *fakeEventsRepo) CreateEvent(_ context.Context, _ database.Queryable, event *model.EventCreate) (int64, error) {
	id := int64(len(f.events) + 1)
	f.events[id] = &model.Event{ID: id, EventCreate: *event}
	return id, nil
}

func (f *fakeEventsRepo) GetEventByID(_ context.Context, _ database.Queryable, id int64) (*model.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return event, nil
}

func (f *fakeEventsRepo) GetEventsInRange(_ context.Context, _ database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	var out []*model.Event
	for _, e := range f.events {
		if e.Recurring() {
			continue
		}
		if e.StartTime.Before(filter.To) && e.EndTime.After(filter.From) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventsRepo) GetRecurringEvents(_ context.Context, _ database.Queryable) ([]*model.Event, error) {
	var out []*model.Event
	for _, e := range f.events {
		if e.Recurring() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventsRepo) UpdateEvent(_ context.Context, _ database.Queryable, event *model.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventsRepo) DeleteEvent(_ context.Context, _ database.Queryable, id int64) error {
	delete(f.events, id)
	return nil
}

type fakeRulesRepo struct {
	rules map[int64]*model.RecurringRule
	err   error
}

func (f *fakeRulesRepo) CreateRule(_ context.Context, _ database.Queryable, rule *model.RecurringRuleCreate) (int64, error) {
	id := int64(len(f.rules) + 1)
	f.rules[id] = &model.RecurringRule{ID: id, RecurringRuleCreate: *rule}
	return id, nil
}

func (f *fakeRulesRepo) GetRuleByID(_ context.Context, _ database.Queryable, id int64) (*model.RecurringRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	rule, ok := f.rules[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return rule, nil
}

func (f *fakeRulesRepo) UpdateRule(_ context.Context, _ database.Queryable, rule *model.RecurringRule) error {
	f.rules[rule.ID] = rule
	return nil
}

func (f *fakeRulesRepo) DeleteRule(_ context.Context, _ database.Queryable, id int64) error {
	delete(f.rules, id)
	return nil
}

type fakeExceptionsRepo struct {
	exceptions map[int64][]*model.EventException
}

func (f *fakeExceptionsRepo) GetExceptionsByEventID(_ context.Context, _ database.Queryable, eventID int64) ([]*model.EventException, error) {
	return f.exceptions[eventID], nil
}

func (f *fakeExceptionsRepo) UpsertException(_ context.Context, _ database.Queryable, exception *model.EventException) (int64, error) {
	existing := f.exceptions[exception.EventID]
	for i, e := range existing {
		if e.OriginalDate.Equal(exception.OriginalDate) {
			existing[i] = exception
			return e.ID, nil
		}
	}
	exception.ID = int64(len(existing) + 1)
	f.exceptions[exception.EventID] = append(existing, exception)
	return exception.ID, nil
}

func (f *fakeExceptionsRepo) DeleteException(_ context.Context, _ database.Queryable, eventID int64, originalDate time.Time) error {
	existing := f.exceptions[eventID]
	for i, e := range existing {
		if e.OriginalDate.Equal(originalDate) {
			f.exceptions[eventID] = append(existing[:i], existing[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeExceptionsRepo) DeleteExceptionsByEventID(_ context.Context, _ database.Queryable, eventID int64) error {
	delete(f.exceptions, eventID)
	return nil
}

type serviceFixture struct {
	service    *Service
	events     *fakeEventsRepo
	rules      *fakeRulesRepo
	exceptions *fakeExceptionsRepo
}

func newFixture() *serviceFixture {
	events := &fakeEventsRepo{events: map[int64]*model.Event{}}
	rules := &fakeRulesRepo{rules: map[int64]*model.RecurringRule{}}
	exceptions := &fakeExceptionsRepo{exceptions: map[int64][]*model.EventException{}}

	return &serviceFixture{
		service:    NewService(nil, zap.NewNop().Sugar(), events, rules, exceptions),
		events:     events,
		rules:      rules,
		exceptions: exceptions,
	}
}

func (f *serviceFixture) addEvent(event *model.Event) {
	f.events.events[event.ID] = event
}

func (f *serviceFixture) addRule(rule *model.RecurringRule) {
	f.rules.rules[rule.ID] = rule
}

func weeklyFixture() *serviceFixture {
	f := newFixture()

	ruleID := int64(1)
	f.addRule(&model.RecurringRule{
		ID: ruleID,
		RecurringRuleCreate: model.RecurringRuleCreate{
			Frequency: model.FrequencyWeekly,
			Interval:  1,
			Timezone:  "UTC",
		},
	})
	f.addEvent(&model.Event{
		ID: 1,
		EventCreate: model.EventCreate{
			Title:           "Standup",
			StartTime:       time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2025, 1, 6, 11, 0, 0, 0, time.UTC),
			RecurringRuleID: &ruleID,
		},
	})

	return f
}

func TestQueryRange(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("merges plain and recurring ordered by start", func(t *testing.T) {
		f := weeklyFixture()
		f.addEvent(&model.Event{
			ID: 2,
			EventCreate: model.EventCreate{
				Title:     "Dentist",
				StartTime: time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC),
			},
		})

		result, err := f.service.QueryRange(context.Background(), model.EventsFilter{From: from, To: to})
		require.NoError(t, err)
		require.Empty(t, result.Failed)

		var titles []string
		for _, o := range result.Occurrences {
			titles = append(titles, o.Title)
		}
		assert.Equal(t, []string{"Standup", "Dentist", "Standup", "Standup", "Standup"}, titles)

		for i := 1; i < len(result.Occurrences); i++ {
			assert.False(t, result.Occurrences[i].StartTime.Before(result.Occurrences[i-1].StartTime))
		}
	})

	t.Run("applies exceptions", func(t *testing.T) {
		f := weeklyFixture()
		title := "Rescheduled"
		f.exceptions.exceptions[1] = []*model.EventException{
			{
				EventID:      1,
				OriginalDate: time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC),
				IsCancelled:  true,
			},
			{
				EventID:       1,
				OriginalDate:  time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
				ModifiedTitle: &title,
			},
		}

		result, err := f.service.QueryRange(context.Background(), model.EventsFilter{From: from, To: to})
		require.NoError(t, err)

		var titles []string
		for _, o := range result.Occurrences {
			titles = append(titles, o.Title)
		}
		assert.Equal(t, []string{"Standup", "Rescheduled", "Standup"}, titles)
	})

	t.Run("broken series is reported not fatal", func(t *testing.T) {
		f := weeklyFixture()
		f.rules.err = errors.New("connection refused")
		f.addEvent(&model.Event{
			ID: 2,
			EventCreate: model.EventCreate{
				Title:     "Dentist",
				StartTime: time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC),
			},
		})

		result, err := f.service.QueryRange(context.Background(), model.EventsFilter{From: from, To: to})
		require.NoError(t, err)

		require.Len(t, result.Failed, 1)
		assert.Equal(t, int64(1), result.Failed[0].EventID)
		require.Len(t, result.Occurrences, 1)
		assert.Equal(t, "Dentist", result.Occurrences[0].Title)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		f := weeklyFixture()

		_, err := f.service.QueryRange(context.Background(), model.EventsFilter{From: to, To: from})
		assert.ErrorIs(t, err, recurrence.ErrInvalidWindow)
	})

	t.Run("identical queries resolve identically", func(t *testing.T) {
		f := weeklyFixture()
		f.exceptions.exceptions[1] = []*model.EventException{
			{
				EventID:      1,
				OriginalDate: time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC),
				IsCancelled:  true,
			},
		}
		filter := model.EventsFilter{From: from, To: to}

		first, err := f.service.QueryRange(context.Background(), filter)
		require.NoError(t, err)
		second, err := f.service.QueryRange(context.Background(), filter)
		require.NoError(t, err)

		require.Equal(t, len(first.Occurrences), len(second.Occurrences))
		for i := range first.Occurrences {
			assert.Equal(t, first.Occurrences[i].ID, second.Occurrences[i].ID)
		}
	})
}

func TestExpandRecurringEvents(t *testing.T) {
	t.Run("expands one series", func(t *testing.T) {
		f := weeklyFixture()

		occurrences, err := f.service.ExpandRecurringEvents(context.Background(), 1,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		require.Len(t, occurrences, 2)
		assert.True(t, occurrences[0].StartTime.Equal(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)))
		assert.True(t, occurrences[1].StartTime.Equal(time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects non recurring event", func(t *testing.T) {
		f := newFixture()
		f.addEvent(&model.Event{
			ID: 1,
			EventCreate: model.EventCreate{
				Title:     "Dentist",
				StartTime: time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC),
			},
		})

		_, err := f.service.ExpandRecurringEvents(context.Background(), 1,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, ErrNotRecurring)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.ExpandRecurringEvents(context.Background(), 99,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, model.ErrNoRecord)
	})
}

func TestOccurrenceExceptionWrites(t *testing.T) {
	originalDate := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)

	t.Run("cancel writes cancellation", func(t *testing.T) {
		f := weeklyFixture()

		require.NoError(t, f.service.CancelOccurrence(context.Background(), 1, originalDate))

		require.Len(t, f.exceptions.exceptions[1], 1)
		assert.True(t, f.exceptions.exceptions[1][0].IsCancelled)
	})

	t.Run("update writes overrides", func(t *testing.T) {
		f := weeklyFixture()
		title := "Moved"

		require.NoError(t, f.service.UpdateOccurrence(context.Background(), 1, originalDate, &OccurrenceUpdate{Title: &title}))

		require.Len(t, f.exceptions.exceptions[1], 1)
		exception := f.exceptions.exceptions[1][0]
		assert.False(t, exception.IsCancelled)
		require.NotNil(t, exception.ModifiedTitle)
		assert.Equal(t, "Moved", *exception.ModifiedTitle)
	})

	t.Run("update after cancel revives the occurrence", func(t *testing.T) {
		f := weeklyFixture()
		title := "Back on"

		require.NoError(t, f.service.CancelOccurrence(context.Background(), 1, originalDate))
		require.NoError(t, f.service.UpdateOccurrence(context.Background(), 1, originalDate, &OccurrenceUpdate{Title: &title}))

		require.Len(t, f.exceptions.exceptions[1], 1)
		assert.False(t, f.exceptions.exceptions[1][0].IsCancelled)
	})

	t.Run("restore deletes the exception", func(t *testing.T) {
		f := weeklyFixture()

		require.NoError(t, f.service.CancelOccurrence(context.Background(), 1, originalDate))
		require.NoError(t, f.service.RestoreOccurrence(context.Background(), 1, originalDate))

		assert.Empty(t, f.exceptions.exceptions[1])
	})

	t.Run("rejects non recurring target", func(t *testing.T) {
		f := newFixture()
		f.addEvent(&model.Event{ID: 1, EventCreate: model.EventCreate{Title: "Dentist"}})

		err := f.service.CancelOccurrence(context.Background(), 1, originalDate)
		assert.ErrorIs(t, err, ErrNotRecurring)
	})
}
