package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/calendar-todo/backend/internal/business/events"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/pkg/validator"
	"github.com/calendar-todo/backend/internal/recurrence"
)

type eventReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   dateTime  `json:"start_time"`
	EndTime     dateTime  `json:"end_time"`
	AllDay      bool      `json:"all_day"`
	Location    string    `json:"location"`
	Priority    int       `json:"priority"`
	CategoryID  *int64    `json:"category_id"`
	Rule        *ruleReq  `json:"rule"`
}

type ruleReq struct {
	Frequency      string    `json:"frequency"`
	Interval       int       `json:"interval"`
	DaysOfWeek     []int     `json:"days_of_week"`
	Timezone       string    `json:"timezone"`
	EndDate        *dateTime `json:"end_date"`
	EndOccurrences *int      `json:"end_occurrences"`
}

func (req *ruleReq) toModel() (*model.RecurringRuleCreate, error) {
	frequency, err := model.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}

	days := make([]time.Weekday, len(req.DaysOfWeek))
	for i, d := range req.DaysOfWeek {
		days[i] = time.Weekday(d)
	}

	return &model.RecurringRuleCreate{
		Frequency:      frequency,
		Interval:       req.Interval,
		DaysOfWeek:     days,
		Timezone:       req.Timezone,
		EndDate:        optTime(req.EndDate),
		EndOccurrences: req.EndOccurrences,
	}, nil
}

func validateEventReq(v *validator.Validator, req *eventReq) {
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.StartTime).IsZero(), "start_time", "start_time must be provided")
	v.Check(!time.Time(req.EndTime).IsZero(), "end_time", "end_time must be provided")
	v.Check(!time.Time(req.EndTime).Before(time.Time(req.StartTime)), "end_time", "end_time must not precede start_time")
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateEventReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	input := &events.EventCreateInput{
		Event: model.EventCreate{
			Title:       req.Title,
			Description: req.Description,
			StartTime:   time.Time(req.StartTime),
			EndTime:     time.Time(req.EndTime),
			AllDay:      req.AllDay,
			Location:    req.Location,
			Priority:    req.Priority,
			CategoryID:  req.CategoryID,
		},
	}
	if req.Rule != nil {
		rule, err := req.Rule.toModel()
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
		input.Rule = rule
	}

	event, err := a.eventsService.CreateEvent(r.Context(), input)
	if err != nil {
		if isRuleValidationError(err) {
			a.badRequestResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventsQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	result, err := a.eventsService.QueryRange(r.Context(), *filter)
	if err != nil {
		if errors.Is(err, recurrence.ErrInvalidWindow) {
			a.badRequestResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("query range: %w", err))
		return
	}

	occurrences, _ := mapSlice(result.Occurrences, mapToOccurrenceResp)

	resp := &struct {
		Occurrences []*occurrenceResp `json:"occurrences"`
		Failed      []failedSeries    `json:"failed,omitempty"`
	}{
		Occurrences: occurrences,
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, failedSeries{EventID: f.EventID, Error: f.Err.Error()})
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

type failedSeries struct {
	EventID int64  `json:"event_id"`
	Error   string `json:"error"`
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateEventReq(v, req)
	v.Check(req.Rule == nil, "rule", "rule cannot be changed through the event; use the rules endpoints")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	old, err := a.eventsService.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		return
	}

	if err := a.eventsService.UpdateEvent(r.Context(), &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			Title:           req.Title,
			Description:     req.Description,
			StartTime:       time.Time(req.StartTime),
			EndTime:         time.Time(req.EndTime),
			AllDay:          req.AllDay,
			Location:        req.Location,
			Priority:        req.Priority,
			CategoryID:      req.CategoryID,
			RecurringRuleID: old.RecurringRuleID,
		},
	}); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) getEventExceptionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	exceptions, err := a.eventsService.GetEventExceptions(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.Is(err, events.ErrNotRecurring):
			a.badRequestResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get exceptions: %w", err))
		}
		return
	}

	resp, _ := mapSlice(exceptions, mapToExceptionResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func parseEventsQuery(r *http.Request) (*model.EventsFilter, error) {
	var err error

	res := &model.EventsFilter{}

	res.From, err = parseTimeQuery(r, "from")
	if err != nil {
		return nil, err
	}

	res.To, err = parseTimeQuery(r, "to")
	if err != nil {
		return nil, err
	}

	vals := r.URL.Query()["category_ids"]
	res.CategoryIDs = make([]int64, len(vals))
	for i, v := range vals {
		res.CategoryIDs[i], err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %v", v)
		}
	}

	return res, nil
}

func isRuleValidationError(err error) bool {
	return errors.Is(err, recurrence.ErrInvalidInterval) ||
		errors.Is(err, recurrence.ErrInvalidTermination) ||
		errors.Is(err, recurrence.ErrInvalidWeekdaySet) ||
		errors.Is(err, recurrence.ErrInvalidAnchor)
}
