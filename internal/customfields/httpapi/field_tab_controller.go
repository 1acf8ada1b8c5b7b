package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/httpapi/internal"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/cache"
	"memberhub-server/internal/infra/httpserver"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

const (
	createTabErrMessage = "failed to create field tab"
	updateTabErrMessage = "failed to update field tab"
	deleteTabErrMessage = "failed to delete field tab"
	listTabsErrMessage  = "failed to list field tabs"
	getTabErrMessage    = "failed to get field tab"
)

func NewFieldTabController(service usecases.FieldTabService, responseCache cache.Cache) *FieldTabController {
	return &FieldTabController{
		service: service,
		cache:   responseCache,
	}
}

var _ httpserver.Controller = &FieldTabController{}

type FieldTabController struct {
	service usecases.FieldTabService
	cache   cache.Cache
}

func (c *FieldTabController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields/tabs", c.listFieldTabs())
	router.Handle("POST /v1/custom-fields/tabs", c.createFieldTab())
	router.Handle("GET /v1/custom-fields/tabs/{id}", c.getFieldTab())
	router.Handle("PUT /v1/custom-fields/tabs/{id}", c.updateFieldTab())
	router.Handle("DELETE /v1/custom-fields/tabs/{id}", c.deleteFieldTab())
}

func (c *FieldTabController) invalidateStructure(r *http.Request, entityType domain.EntityType, entityID string) {
	c.cache.Delete(r.Context(), FormStructureCacheKey(entityType, entityID))
}

func (c *FieldTabController) listFieldTabs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := scopeFromQuery(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		tabs, err := c.service.FindByScope(r.Context(), entityType, entityID)
		if err != nil {
			slog.Error("listing field tabs", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listTabsErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		page := paginate(tabs, params)

		responses := make([]internal.FieldTabResponse, len(page))
		for i, tab := range page {
			responses[i] = internal.ToFieldTabResponse(tab)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, len(tabs), params)
	}
}

func (c *FieldTabController) createFieldTab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldTabCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create tab request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entityType, err := domain.ParseEntityType(body.EntityType)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		tab, err := domain.NewFieldTabBuilder().
			WithEntityType(entityType).
			WithEntityID(body.EntityID).
			WithTabName(body.TabName).
			WithDisplayOrder(body.DisplayOrder).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.service.Create(r.Context(), tab); err != nil {
			slog.Error("creating field tab", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createTabErrMessage)
			return
		}

		c.invalidateStructure(r, tab.EntityType, tab.EntityID)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldTabResponse(tab))
	}
}

func (c *FieldTabController) getFieldTab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		if id == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "tab id is required")
			return
		}

		tab, err := c.service.Get(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFieldTabNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, tabNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field tab", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getTabErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldTabResponse(tab))
	}
}

func (c *FieldTabController) updateFieldTab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		if id == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "tab id is required")
			return
		}

		var body internal.FieldTabUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update tab request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tab, err := c.service.Get(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFieldTabNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, tabNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field tab", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateTabErrMessage)
			return
		}

		tab.TabName = body.TabName
		tab.DisplayOrder = body.DisplayOrder

		if err := c.service.Update(r.Context(), tab); err != nil {
			slog.Error("updating field tab", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateTabErrMessage)
			return
		}

		c.invalidateStructure(r, tab.EntityType, tab.EntityID)
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldTabResponse(tab))
	}
}

func (c *FieldTabController) deleteFieldTab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		if id == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "tab id is required")
			return
		}

		tab, err := c.service.Get(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFieldTabNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, tabNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field tab", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteTabErrMessage)
			return
		}

		if err := c.service.Delete(r.Context(), shareddomain.ID(id)); err != nil {
			slog.Error("deleting field tab", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteTabErrMessage)
			return
		}

		c.invalidateStructure(r, tab.EntityType, tab.EntityID)
		w.WriteHeader(http.StatusNoContent)
	}
}
