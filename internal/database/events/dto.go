package events

import (
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type eventDTO struct {
	ID              int64
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	AllDay          bool
	Location        string
	Priority        int
	CategoryID      *int64
	RecurringRuleID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			Title:           dto.Title,
			Description:     dto.Description,
			StartTime:       dto.StartTime,
			EndTime:         dto.EndTime,
			AllDay:          dto.AllDay,
			Location:        dto.Location,
			Priority:        dto.Priority,
			CategoryID:      dto.CategoryID,
			RecurringRuleID: dto.RecurringRuleID,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

func mapToEvents(dtos []*eventDTO) []*model.Event {
	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res
}
