package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/pkg/validator"
)

type feedReq struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	IsVisible bool   `json:"is_visible"`
}

func validateFeedReq(v *validator.Validator, req *feedReq) {
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(len(req.URL) != 0, "url", "url must be provided")
	if req.URL != "" {
		u, err := url.Parse(req.URL)
		v.Check(err == nil && u.Scheme != "" && u.Host != "", "url", "url must be absolute")
	}
}

func (a *Api) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	req := &feedReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateFeedReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	feed, err := a.holidaysService.CreateFeed(r.Context(), &model.HolidayFeedCreate{
		URL:       req.URL,
		Name:      req.Name,
		IsVisible: req.IsVisible,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create feed: %w", err))
		return
	}

	resp, _ := mapToFeedResp(feed)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := a.holidaysService.GetFeeds(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get feeds: %w", err))
		return
	}

	resp, _ := mapSlice(feeds, mapToFeedResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	feed, err := a.holidaysService.GetFeed(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get feed: %w", err))
		return
	}

	resp, _ := mapToFeedResp(feed)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &feedReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	validateFeedReq(v, req)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := a.holidaysService.UpdateFeed(r.Context(), &model.HolidayFeed{
		ID: id,
		HolidayFeedCreate: model.HolidayFeedCreate{
			URL:       req.URL,
			Name:      req.Name,
			IsVisible: req.IsVisible,
		},
	}); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("update feed: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.holidaysService.DeleteFeed(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("delete feed: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) syncFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.holidaysService.SyncFeed(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("sync feed: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
