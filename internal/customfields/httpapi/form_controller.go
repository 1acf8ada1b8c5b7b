package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/httpapi/internal"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/cache"
	"memberhub-server/internal/infra/httpserver"
)

const (
	getStructureErrMessage     = "failed to get form structure"
	validateErrMessage         = "failed to validate values"
	submitErrMessage           = "failed to submit values"
	getValuesErrMessage        = "failed to get submitted values"
	scopeNotFoundErrMessage    = "no entity found for the given scope"
	instanceNotFoundErrMessage = "entity instance not found"
)

func NewFormController(
	formViewService usecases.FormViewService,
	validationService usecases.ValidationService,
	submissionService usecases.SubmissionService,
	responseCache cache.Cache,
	cacheTTL time.Duration,
) *FormController {
	return &FormController{
		formViewService:   formViewService,
		validationService: validationService,
		submissionService: submissionService,
		cache:             responseCache,
		cacheTTL:          cacheTTL,
	}
}

var _ httpserver.Controller = &FormController{}

// FormController serves the member-facing form endpoints: structure lookup,
// dry-run validation, submission and the submitted-values view. Structure
// responses are cached per scope; the admin controllers invalidate the same
// keys on every catalog mutation.
type FormController struct {
	formViewService   usecases.FormViewService
	validationService usecases.ValidationService
	submissionService usecases.SubmissionService
	cache             cache.Cache
	cacheTTL          time.Duration
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields/structure", c.getFormStructure())
	router.Handle("POST /v1/custom-fields/validate", c.validateValues())
	router.Handle("POST /v1/custom-fields/instances/{instanceID}/values", c.submitValues())
	router.Handle("GET /v1/custom-fields/instances/{instanceID}/values", c.getSubmittedValues())
}

// FormStructureCacheKey is shared with the admin controllers so cached
// structures can be dropped when the catalog changes.
func FormStructureCacheKey(entityType domain.EntityType, entityID string) string {
	return fmt.Sprintf("form_structure:%s:%s", entityType, entityID)
}

func scopeFromQuery(r *http.Request) (domain.EntityType, string, error) {
	entityType, err := domain.ParseEntityType(httpserver.GetQueryParam(r, "entity_type"))
	if err != nil {
		return "", "", err
	}

	entityID := httpserver.GetQueryParam(r, "entity_id")
	if entityID == "" {
		return "", "", errors.New("entity_id is required")
	}

	return entityType, entityID, nil
}

func (c *FormController) getFormStructure() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, entityID, err := scopeFromQuery(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		key := FormStructureCacheKey(entityType, entityID)
		response, err := c.cache.GetOrSet(r.Context(), key, c.cacheTTL, func() (any, error) {
			structure, err := c.formViewService.GetFormStructure(r.Context(), entityType, entityID)
			if err != nil {
				return nil, err
			}
			return internal.ToFormStructureResponse(structure), nil
		})
		if errors.Is(err, usecases.ErrScopeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, scopeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting form structure", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getStructureErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FormController) validateValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ValidateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding validate request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entityType, err := domain.ParseEntityType(body.EntityType)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if body.EntityID == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "entity_id is required")
			return
		}

		result, err := c.validationService.Validate(r.Context(), entityType, body.EntityID, body.Values)
		if err != nil {
			slog.Error("validating values", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, validateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ValidationResponse{
			IsValid: result.IsValid,
			Errors:  result.Errors,
		})
	}
}

func (c *FormController) submitValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instanceID := httpserver.GetPathParam(r, "instanceID")
		if instanceID == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "instance id is required")
			return
		}

		var body internal.SubmitRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding submit request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entityType, err := domain.ParseEntityType(body.EntityType)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if body.EntityID == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "entity_id is required")
			return
		}

		result, err := c.submissionService.Submit(r.Context(), entityType, body.EntityID, instanceID, body.Values)
		if errors.Is(err, usecases.ErrScopeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, scopeNotFoundErrMessage)
			return
		}
		if errors.Is(err, usecases.ErrEntityInstanceNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, instanceNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("submitting values",
				slog.String("entity_instance_id", instanceID),
				slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, submitErrMessage)
			return
		}

		status := http.StatusOK
		if !result.Success {
			status = http.StatusUnprocessableEntity
		}

		httpserver.ReplyJSONResponse(w, status, internal.ToSubmissionResponse(result))
	}
}

func (c *FormController) getSubmittedValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instanceID := httpserver.GetPathParam(r, "instanceID")
		if instanceID == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "instance id is required")
			return
		}

		entityType, entityID, err := scopeFromQuery(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		form, err := c.formViewService.GetSubmittedValues(r.Context(), entityType, entityID, instanceID)
		if errors.Is(err, usecases.ErrScopeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, scopeNotFoundErrMessage)
			return
		}
		if errors.Is(err, usecases.ErrEntityInstanceNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, instanceNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting submitted values",
				slog.String("entity_instance_id", instanceID),
				slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getValuesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSubmittedFormResponse(form))
	}
}
