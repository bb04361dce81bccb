package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/pkg/validator"
)

type noteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (a *Api) createNoteHandler(w http.ResponseWriter, r *http.Request) {
	req := &noteReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := a.notes.CreateNote(r.Context(), a.db, &model.NoteCreate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create note: %w", err))
		return
	}

	note, err := a.notes.GetNoteByID(r.Context(), a.db, id)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create note: %w", err))
		return
	}

	resp, _ := mapToNoteResp(note)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getNotesHandler(w http.ResponseWriter, r *http.Request) {
	notes, err := a.notes.GetNotes(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get notes: %w", err))
		return
	}

	resp, _ := mapSlice(notes, mapToNoteResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	note, err := a.notes.GetNoteByID(r.Context(), a.db, id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get note: %w", err))
		return
	}

	resp, _ := mapToNoteResp(note)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &noteReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := a.notes.UpdateNote(r.Context(), a.db, &model.Note{
		ID: id,
		NoteCreate: model.NoteCreate{
			Title:   req.Title,
			Content: req.Content,
		},
	}); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update note: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.notes.DeleteNote(r.Context(), a.db, id); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete note: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
