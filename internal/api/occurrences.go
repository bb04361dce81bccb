package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/calendar-todo/backend/internal/business/events"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/recurrence"
)

func (a *Api) getOccurrencesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	from, err := parseTimeQuery(r, "from")
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	to, err := parseTimeQuery(r, "to")
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	occurrences, err := a.eventsService.ExpandRecurringEvents(r.Context(), id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.Is(err, events.ErrNotRecurring), errors.Is(err, recurrence.ErrInvalidWindow):
			a.badRequestResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("expand occurrences: %w", err))
		}
		return
	}

	resp, _ := mapSlice(occurrences, mapToOccurrenceResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateOccurrenceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	originalDate, err := tsParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		StartTime   *dateTime `json:"start_time"`
		EndTime     *dateTime `json:"end_time"`
		Location    *string   `json:"location"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	update := &events.OccurrenceUpdate{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   optTime(req.StartTime),
		EndTime:     optTime(req.EndTime),
		Location:    req.Location,
	}

	if err := a.eventsService.UpdateOccurrence(r.Context(), id, originalDate, update); err != nil {
		a.occurrenceErrorResponse(w, r, err, "update occurrence")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) cancelOccurrenceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	originalDate, err := tsParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.CancelOccurrence(r.Context(), id, originalDate); err != nil {
		a.occurrenceErrorResponse(w, r, err, "cancel occurrence")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) restoreOccurrenceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	originalDate, err := tsParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.RestoreOccurrence(r.Context(), id, originalDate); err != nil {
		a.occurrenceErrorResponse(w, r, err, "restore occurrence")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) occurrenceErrorResponse(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	case errors.Is(err, events.ErrNotRecurring):
		a.badRequestResponse(w, r, err)
	default:
		a.serverErrorResponse(w, r, fmt.Errorf("%s: %w", op, err))
	}
}
