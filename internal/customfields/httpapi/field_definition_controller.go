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
	createFieldErrMessage   = "failed to create field definition"
	updateFieldErrMessage   = "failed to update field definition"
	deleteFieldErrMessage   = "failed to delete field definition"
	listFieldsErrMessage    = "failed to list field definitions"
	getFieldErrMessage      = "failed to get field definition"
	fieldNotFoundErrMessage = "field definition not found"
	tabNotFoundErrMessage   = "field tab not found"
)

func NewFieldDefinitionController(service usecases.FieldDefinitionService, responseCache cache.Cache) *FieldDefinitionController {
	return &FieldDefinitionController{
		service: service,
		cache:   responseCache,
	}
}

var _ httpserver.Controller = &FieldDefinitionController{}

// FieldDefinitionController is the administrator CRUD surface for field
// definitions. Every mutation drops the cached form structure of the
// affected scope.
type FieldDefinitionController struct {
	service usecases.FieldDefinitionService
	cache   cache.Cache
}

func (c *FieldDefinitionController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields/definitions", c.listFieldDefinitions())
	router.Handle("POST /v1/custom-fields/definitions", c.createFieldDefinition())
	router.Handle("GET /v1/custom-fields/definitions/{id}", c.getFieldDefinition())
	router.Handle("PUT /v1/custom-fields/definitions/{id}", c.updateFieldDefinition())
	router.Handle("DELETE /v1/custom-fields/definitions/{id}", c.deleteFieldDefinition())
}

func (c *FieldDefinitionController) invalidateStructure(r *http.Request, entityType domain.EntityType, entityID string) {
	c.cache.Delete(r.Context(), FormStructureCacheKey(entityType, entityID))
}

func (c *FieldDefinitionController) listFieldDefinitions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := scopeFromQuery(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		fields, err := c.service.FindByScope(r.Context(), entityType, entityID)
		if err != nil {
			slog.Error("listing field definitions", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listFieldsErrMessage)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		page := paginate(fields, params)

		responses := make([]internal.FieldDefinitionResponse, len(page))
		for i, field := range page {
			responses[i] = internal.ToFieldDefinitionResponse(field)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, len(fields), params)
	}
}

func (c *FieldDefinitionController) createFieldDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldDefinitionCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create field request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entityType, err := domain.ParseEntityType(body.EntityType)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		fieldType, err := domain.ParseFieldType(body.FieldType)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		field, err := domain.NewFieldDefinitionBuilder().
			WithEntityType(entityType).
			WithEntityID(body.EntityID).
			WithFieldName(body.FieldName).
			WithFieldType(fieldType).
			WithFieldOptions(body.FieldOptions).
			WithIsRequired(body.IsRequired).
			WithTabID(internal.TabIDValue(body.TabID)).
			WithDisplayOrder(body.DisplayOrder).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.Create(r.Context(), field)
		if errors.Is(err, usecases.ErrInvalidFieldDefinition) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, usecases.ErrFieldTabNotFound) {
			httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, tabNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("creating field definition", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createFieldErrMessage)
			return
		}

		c.invalidateStructure(r, field.EntityType, field.EntityID)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldDefinitionResponse(field))
	}
}

func (c *FieldDefinitionController) getFieldDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		if id == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "field id is required")
			return
		}

		field, err := c.service.Get(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFieldDefinitionNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, fieldNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field definition", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldDefinitionResponse(field))
	}
}

func (c *FieldDefinitionController) updateFieldDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		if id == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "field id is required")
			return
		}

		var body internal.FieldDefinitionUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update field request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		field, err := c.service.Get(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFieldDefinitionNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, fieldNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field definition", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateFieldErrMessage)
			return
		}

		fieldType, err := domain.ParseFieldType(body.FieldType)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		field.FieldName = body.FieldName
		field.FieldType = fieldType
		field.FieldOptions = body.FieldOptions
		field.IsRequired = body.IsRequired
		field.TabID = internal.TabIDValue(body.TabID)
		field.DisplayOrder = body.DisplayOrder

		err = c.service.Update(r.Context(), field)
		if errors.Is(err, usecases.ErrInvalidFieldDefinition) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, usecases.ErrFieldTabNotFound) {
			httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, tabNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("updating field definition", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, updateFieldErrMessage)
			return
		}

		c.invalidateStructure(r, field.EntityType, field.EntityID)
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldDefinitionResponse(field))
	}
}

func (c *FieldDefinitionController) deleteFieldDefinition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		if id == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "field id is required")
			return
		}

		field, err := c.service.Get(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFieldDefinitionNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, fieldNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field definition", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteFieldErrMessage)
			return
		}

		if err := c.service.Delete(r.Context(), shareddomain.ID(id)); err != nil {
			slog.Error("deleting field definition", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteFieldErrMessage)
			return
		}

		c.invalidateStructure(r, field.EntityType, field.EntityID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// paginate slices an already ordered result set according to the request's
// pagination params.
func paginate[T any](items []T, params httpserver.PaginationParams) []T {
	start := params.Offset()
	if start >= len(items) {
		return nil
	}

	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
