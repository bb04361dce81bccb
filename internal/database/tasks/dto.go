package tasks

import (
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type taskDTO struct {
	ID              int64
	Title           string
	Description     string
	DueDate         *time.Time
	Priority        int
	Status          string
	CategoryID      *int64
	RecurringRuleID *int64
	KanbanColumnID  *int64
	KanbanOrder     *int
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func mapToTask(dto *taskDTO) *model.Task {
	return &model.Task{
		ID: dto.ID,
		TaskCreate: model.TaskCreate{
			Title:           dto.Title,
			Description:     dto.Description,
			DueDate:         dto.DueDate,
			Priority:        dto.Priority,
			Status:          model.TaskStatus(dto.Status),
			CategoryID:      dto.CategoryID,
			RecurringRuleID: dto.RecurringRuleID,
			KanbanColumnID:  dto.KanbanColumnID,
			KanbanOrder:     dto.KanbanOrder,
		},
		CompletedAt: dto.CompletedAt,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

func mapToTasks(dtos []*taskDTO) []*model.Task {
	res := make([]*model.Task, len(dtos))
	for i, d := range dtos {
		res[i] = mapToTask(d)
	}

	return res
}
