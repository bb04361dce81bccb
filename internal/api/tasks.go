package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/calendar-todo/backend/internal/business/tasks"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/pkg/validator"
)

type taskReq struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DueDate        *dateTime `json:"due_date"`
	Priority       int       `json:"priority"`
	Status         string    `json:"status"`
	CategoryID     *int64    `json:"category_id"`
	KanbanColumnID *int64    `json:"kanban_column_id"`
	KanbanOrder    *int      `json:"kanban_order"`
}

func validateTaskReq(v *validator.Validator, req *taskReq) {
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	if req.Status != "" {
		switch model.TaskStatus(req.Status) {
		case model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusDone:
		default:
			v.AddError("status", fmt.Sprintf("unknown status %q", req.Status))
		}
	}
}

func (a *Api) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	req := &taskReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateTaskReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	task, err := a.tasksService.CreateTask(r.Context(), &model.TaskCreate{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        optTime(req.DueDate),
		Priority:       req.Priority,
		Status:         model.TaskStatus(req.Status),
		CategoryID:     req.CategoryID,
		KanbanColumnID: req.KanbanColumnID,
		KanbanOrder:    req.KanbanOrder,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create task: %w", err))
		return
	}

	resp, _ := mapToTaskResp(task)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTasksQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	result, err := a.tasksService.GetTasks(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get tasks: %w", err))
		return
	}

	resp, _ := mapSlice(result, mapToTaskResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	task, err := a.tasksService.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get task: %w", err))
		return
	}

	resp, _ := mapToTaskResp(task)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &taskReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateTaskReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	status := model.TaskStatus(req.Status)
	if req.Status == "" {
		status = model.TaskStatusTodo
	}

	if err := a.tasksService.UpdateTask(r.Context(), &model.Task{
		ID: id,
		TaskCreate: model.TaskCreate{
			Title:          req.Title,
			Description:    req.Description,
			DueDate:        optTime(req.DueDate),
			Priority:       req.Priority,
			Status:         status,
			CategoryID:     req.CategoryID,
			KanbanColumnID: req.KanbanColumnID,
			KanbanOrder:    req.KanbanOrder,
		},
	}); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("update task: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) moveTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &struct {
		ColumnID int64 `json:"column_id"`
		Order    int   `json:"order"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.tasksService.MoveTask(r.Context(), id, req.ColumnID, req.Order); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.Is(err, tasks.ErrInvalidMove):
			a.badRequestResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("move task: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.tasksService.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("delete task: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func parseTasksQuery(r *http.Request) (*model.TasksFilter, error) {
	res := &model.TasksFilter{}

	if v := r.URL.Query().Get("status"); v != "" {
		status := model.TaskStatus(v)
		switch status {
		case model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusDone:
			res.Status = &status
		default:
			return nil, fmt.Errorf("unknown status %q", v)
		}
	}

	vals := r.URL.Query()["category_ids"]
	res.CategoryIDs = make([]int64, len(vals))
	for i, v := range vals {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %v", v)
		}
		res.CategoryIDs[i] = id
	}

	if v := r.URL.Query().Get("kanban_column_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid kanban column id %v", v)
		}
		res.KanbanColumnID = &id
	}

	if v := r.URL.Query().Get("due_before"); v != "" {
		t, err := time.Parse(dateTimeFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid time format for due_before: %w", err)
		}
		res.DueBefore = &t
	}

	return res, nil
}
