package api

import (
	"fmt"
	"net/http"
	"strings"
)

type searchResp struct {
	Events []*eventResp `json:"events"`
	Tasks  []*taskResp  `json:"tasks"`
	Notes  []*noteResp  `json:"notes"`
}

func (a *Api) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		a.badRequestResponse(w, r, fmt.Errorf("query parameter q must be provided"))
		return
	}

	events, err := a.search.SearchEvents(r.Context(), a.db, query)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("search events: %w", err))
		return
	}

	tasks, err := a.tasksService.SearchTasks(r.Context(), query)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("search tasks: %w", err))
		return
	}

	notes, err := a.notes.SearchNotes(r.Context(), a.db, query)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("search notes: %w", err))
		return
	}

	eventResps, _ := mapSlice(events, mapToEventResp)
	taskResps, _ := mapSlice(tasks, mapToTaskResp)
	noteResps, _ := mapSlice(notes, mapToNoteResp)

	resp := &searchResp{
		Events: eventResps,
		Tasks:  taskResps,
		Notes:  noteResps,
	}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
