package api

import (
	"encoding/json"
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

const dateTimeFormat = time.RFC3339

// dateTime renders timestamps in RFC 3339 on the wire.
type dateTime time.Time

func (d dateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateTimeFormat))
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return err
	}

	*d = dateTime(t)
	return nil
}

func optDateTime(t *time.Time) *dateTime {
	if t == nil {
		return nil
	}
	d := dateTime(*t)
	return &d
}

func optTime(d *dateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

type eventResp struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	StartTime       dateTime  `json:"start_time"`
	EndTime         dateTime  `json:"end_time"`
	AllDay          bool      `json:"all_day"`
	Location        string    `json:"location,omitempty"`
	Priority        int       `json:"priority"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	RecurringRuleID *int64    `json:"recurring_rule_id,omitempty"`
	CreatedAt       dateTime  `json:"created_at"`
	UpdatedAt       dateTime  `json:"updated_at"`
}

func mapToEventResp(event *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:              event.ID,
		Title:           event.Title,
		Description:     event.Description,
		StartTime:       dateTime(event.StartTime),
		EndTime:         dateTime(event.EndTime),
		AllDay:          event.AllDay,
		Location:        event.Location,
		Priority:        event.Priority,
		CategoryID:      event.CategoryID,
		RecurringRuleID: event.RecurringRuleID,
		CreatedAt:       dateTime(event.CreatedAt),
		UpdatedAt:       dateTime(event.UpdatedAt),
	}, nil
}

type occurrenceResp struct {
	ID              string    `json:"id"`
	EventID         int64     `json:"event_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	StartTime       dateTime  `json:"start_time"`
	EndTime         dateTime  `json:"end_time"`
	AllDay          bool      `json:"all_day"`
	Location        string    `json:"location,omitempty"`
	Priority        int       `json:"priority"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	RecurringRuleID *int64    `json:"recurring_rule_id,omitempty"`
	OriginalDate    *dateTime `json:"original_date,omitempty"`
}

func mapToOccurrenceResp(occurrence *model.Occurrence) (*occurrenceResp, error) {
	return &occurrenceResp{
		ID:              occurrence.ID,
		EventID:         occurrence.EventID,
		Title:           occurrence.Title,
		Description:     occurrence.Description,
		StartTime:       dateTime(occurrence.StartTime),
		EndTime:         dateTime(occurrence.EndTime),
		AllDay:          occurrence.AllDay,
		Location:        occurrence.Location,
		Priority:        occurrence.Priority,
		CategoryID:      occurrence.CategoryID,
		RecurringRuleID: occurrence.RecurringRuleID,
		OriginalDate:    optDateTime(occurrence.OriginalDate),
	}, nil
}

type ruleResp struct {
	ID             int64     `json:"id"`
	Frequency      string    `json:"frequency"`
	Interval       int       `json:"interval"`
	DaysOfWeek     []int     `json:"days_of_week,omitempty"`
	Timezone       string    `json:"timezone"`
	EndDate        *dateTime `json:"end_date,omitempty"`
	EndOccurrences *int      `json:"end_occurrences,omitempty"`
}

func mapToRuleResp(rule *model.RecurringRule) (*ruleResp, error) {
	days := make([]int, len(rule.DaysOfWeek))
	for i, d := range rule.DaysOfWeek {
		days[i] = int(d)
	}

	return &ruleResp{
		ID:             rule.ID,
		Frequency:      rule.Frequency.String(),
		Interval:       rule.Interval,
		DaysOfWeek:     days,
		Timezone:       rule.Timezone,
		EndDate:        optDateTime(rule.EndDate),
		EndOccurrences: rule.EndOccurrences,
	}, nil
}

type exceptionResp struct {
	EventID             int64     `json:"event_id"`
	OriginalDate        dateTime  `json:"original_date"`
	IsCancelled         bool      `json:"is_cancelled"`
	ModifiedTitle       *string   `json:"modified_title,omitempty"`
	ModifiedDescription *string   `json:"modified_description,omitempty"`
	ModifiedStartTime   *dateTime `json:"modified_start_time,omitempty"`
	ModifiedEndTime     *dateTime `json:"modified_end_time,omitempty"`
	ModifiedLocation    *string   `json:"modified_location,omitempty"`
}

func mapToExceptionResp(exception *model.EventException) (*exceptionResp, error) {
	return &exceptionResp{
		EventID:             exception.EventID,
		OriginalDate:        dateTime(exception.OriginalDate),
		IsCancelled:         exception.IsCancelled,
		ModifiedTitle:       exception.ModifiedTitle,
		ModifiedDescription: exception.ModifiedDescription,
		ModifiedStartTime:   optDateTime(exception.ModifiedStartTime),
		ModifiedEndTime:     optDateTime(exception.ModifiedEndTime),
		ModifiedLocation:    exception.ModifiedLocation,
	}, nil
}

type taskResp struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	DueDate        *dateTime  `json:"due_date,omitempty"`
	Priority       int        `json:"priority"`
	Status         string     `json:"status"`
	CategoryID     *int64     `json:"category_id,omitempty"`
	KanbanColumnID *int64     `json:"kanban_column_id,omitempty"`
	KanbanOrder    *int       `json:"kanban_order,omitempty"`
	CompletedAt    *dateTime  `json:"completed_at,omitempty"`
}

func mapToTaskResp(task *model.Task) (*taskResp, error) {
	return &taskResp{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		DueDate:        optDateTime(task.DueDate),
		Priority:       task.Priority,
		Status:         string(task.Status),
		CategoryID:     task.CategoryID,
		KanbanColumnID: task.KanbanColumnID,
		KanbanOrder:    task.KanbanOrder,
		CompletedAt:    optDateTime(task.CompletedAt),
	}, nil
}

type categoryResp struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

func mapToCategoryResp(category *model.Category) (*categoryResp, error) {
	return &categoryResp{
		ID:     category.ID,
		Name:   category.Name,
		Color:  category.Color,
		Symbol: category.Symbol,
	}, nil
}

type noteResp struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content,omitempty"`
	CreatedAt dateTime `json:"created_at"`
	UpdatedAt dateTime `json:"updated_at"`
}

func mapToNoteResp(note *model.Note) (*noteResp, error) {
	return &noteResp{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: dateTime(note.CreatedAt),
		UpdatedAt: dateTime(note.UpdatedAt),
	}, nil
}

type feedResp struct {
	ID           int64     `json:"id"`
	URL          string    `json:"url"`
	Name         string    `json:"name"`
	IsVisible    bool      `json:"is_visible"`
	LastSyncTime *dateTime `json:"last_sync_time,omitempty"`
	SyncError    *string   `json:"sync_error,omitempty"`
}

func mapToFeedResp(feed *model.HolidayFeed) (*feedResp, error) {
	return &feedResp{
		ID:           feed.ID,
		URL:          feed.URL,
		Name:         feed.Name,
		IsVisible:    feed.IsVisible,
		LastSyncTime: optDateTime(feed.LastSyncTime),
		SyncError:    feed.SyncError,
	}, nil
}
