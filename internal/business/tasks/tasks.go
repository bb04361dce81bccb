package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

func (s *Service) CreateTask(ctx context.Context, info *model.TaskCreate) (*model.Task, error) {
	if info.Status == "" {
		info.Status = model.TaskStatusTodo
	}

	id, err := s.tasksRepository.CreateTask(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.CreateTask: %w", err)
	}

	return &model.Task{ID: id, TaskCreate: *info}, nil
}

func (s *Service) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.tasksRepository.GetTaskByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.GetTaskByID: %w", err)
	}

	return task, nil
}

func (s *Service) GetTasks(ctx context.Context, filter model.TasksFilter) ([]*model.Task, error) {
	tasks, err := s.tasksRepository.GetTasks(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.GetTasks: %w", err)
	}

	return tasks, nil
}

func (s *Service) UpdateTask(ctx context.Context, task *model.Task) error {
	old, err := s.tasksRepository.GetTaskByID(ctx, s.db, task.ID)
	if err != nil {
		return fmt.Errorf("get old task: %w", err)
	}

	// Completion timestamp follows the status transition, not the caller.
	switch {
	case task.Status == model.TaskStatusDone && old.Status != model.TaskStatusDone:
		now := time.Now()
		task.CompletedAt = &now
	case task.Status != model.TaskStatusDone:
		task.CompletedAt = nil
	default:
		task.CompletedAt = old.CompletedAt
	}

	if err := s.tasksRepository.UpdateTask(ctx, s.db, task); err != nil {
		return fmt.Errorf("tasksRepository.UpdateTask: %w", err)
	}

	return nil
}

// MoveTask places a task at a slot in a kanban column, shifting the tasks
// below it down by one.
func (s *Service) MoveTask(ctx context.Context, id, columnID int64, order int) error {
	if order < 0 {
		return fmt.Errorf("%w: order %d", ErrInvalidMove, order)
	}

	task, err := s.tasksRepository.GetTaskByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("tasksRepository.GetTaskByID: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	if err := s.tasksRepository.ShiftKanbanOrders(ctx, tx, columnID, order); err != nil {
		return fmt.Errorf("tasksRepository.ShiftKanbanOrders: %w", err)
	}

	task.KanbanColumnID = &columnID
	task.KanbanOrder = &order
	if err := s.tasksRepository.UpdateTask(ctx, tx, task); err != nil {
		return fmt.Errorf("tasksRepository.UpdateTask: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasksRepository.DeleteTask(ctx, s.db, id); err != nil {
		return fmt.Errorf("tasksRepository.DeleteTask: %w", err)
	}

	return nil
}

func (s *Service) SearchTasks(ctx context.Context, query string) ([]*model.Task, error) {
	tasks, err := s.tasksRepository.SearchTasks(ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("tasksRepository.SearchTasks: %w", err)
	}

	return tasks, nil
}
