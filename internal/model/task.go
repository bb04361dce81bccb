package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskCreate struct {
	Title           string
	Description     string
	DueDate         *time.Time
	Priority        int
	Status          TaskStatus
	CategoryID      *int64
	RecurringRuleID *int64
	KanbanColumnID  *int64
	KanbanOrder     *int
}

type Task struct {
	ID int64
	TaskCreate
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TasksFilter struct {
	Status         *TaskStatus
	CategoryIDs    []int64
	KanbanColumnID *int64
	DueBefore      *time.Time
}
