package tasks

import (
	"context"
	"errors"

	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"go.uber.org/zap"
)

// ErrInvalidMove is returned when a kanban move names no column or a
// negative slot.
var ErrInvalidMove = errors.New("invalid kanban move")

type Service struct {
	db              database.PGX
	logger          *zap.SugaredLogger
	tasksRepository tasksRepository
}

type tasksRepository interface {
	CreateTask(ctx context.Context, q database.Queryable, task *model.TaskCreate) (int64, error)
	GetTaskByID(ctx context.Context, q database.Queryable, id int64) (*model.Task, error)
	GetTasks(ctx context.Context, q database.Queryable, filter model.TasksFilter) ([]*model.Task, error)
	SearchTasks(ctx context.Context, q database.Queryable, query string) ([]*model.Task, error)
	UpdateTask(ctx context.Context, q database.Queryable, task *model.Task) error
	ShiftKanbanOrders(ctx context.Context, q database.Queryable, columnID int64, fromOrder int) error
	DeleteTask(ctx context.Context, q database.Queryable, id int64) error
}

func NewService(db database.PGX, logger *zap.SugaredLogger, tasksRepo tasksRepository) *Service {
	return &Service{
		db:              db,
		logger:          logger,
		tasksRepository: tasksRepo,
	}
}
