package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/calendar-todo/backend/internal/model"
)

func (a *Api) createRuleHandler(w http.ResponseWriter, r *http.Request) {
	req := &ruleReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info, err := req.toModel()
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	rule, err := a.eventsService.CreateRule(r.Context(), info)
	if err != nil {
		if isRuleValidationError(err) {
			a.badRequestResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("create rule: %w", err))
		return
	}

	resp, _ := mapToRuleResp(rule)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getRuleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	rule, err := a.eventsService.GetRule(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get rule: %w", err))
		return
	}

	resp, _ := mapToRuleResp(rule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateRuleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &ruleReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info, err := req.toModel()
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.UpdateRule(r.Context(), &model.RecurringRule{
		ID:                  id,
		RecurringRuleCreate: *info,
	}); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case isRuleValidationError(err):
			a.badRequestResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update rule: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteRuleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.DeleteRule(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("delete rule: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
