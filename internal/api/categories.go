package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/calendar-todo/backend/internal/model"
	"github.com/calendar-todo/backend/internal/pkg/validator"
)

type categoryReq struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

func (a *Api) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	req := &categoryReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := a.categories.CreateCategory(r.Context(), a.db, &model.CategoryCreate{
		Name:   req.Name,
		Color:  req.Color,
		Symbol: req.Symbol,
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			v.AddError("name", "a category with this name already exists")
			a.failedValidationResponse(w, r, v.Errors)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("create category: %w", err))
		return
	}

	resp, _ := mapToCategoryResp(&model.Category{
		ID: id,
		CategoryCreate: model.CategoryCreate{
			Name:   req.Name,
			Color:  req.Color,
			Symbol: req.Symbol,
		},
	})
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.GetCategories(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get categories: %w", err))
		return
	}

	resp, _ := mapSlice(categories, mapToCategoryResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	category, err := a.categories.GetCategoryByID(r.Context(), a.db, id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get category: %w", err))
		return
	}

	resp, _ := mapToCategoryResp(category)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	req := &categoryReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := a.categories.UpdateCategory(r.Context(), a.db, &model.Category{
		ID: id,
		CategoryCreate: model.CategoryCreate{
			Name:   req.Name,
			Color:  req.Color,
			Symbol: req.Symbol,
		},
	}); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update category: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.categories.DeleteCategory(r.Context(), a.db, id); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete category: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
