package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"memberhub-server/internal/customfields/domain"
)

func NewSubmissionService(
	catalog CatalogService,
	validation ValidationService,
	valueRepository FieldValueRepository,
	scopeRepository ScopeRepository,
) *SimpleSubmissionService {
	return &SimpleSubmissionService{
		catalog:         catalog,
		validation:      validation,
		valueRepository: valueRepository,
		scopeRepository: scopeRepository,
	}
}

var _ SubmissionService = &SimpleSubmissionService{}

type SimpleSubmissionService struct {
	catalog         CatalogService
	validation      ValidationService
	valueRepository FieldValueRepository
	scopeRepository ScopeRepository
}

// Submit validates the submission and, when it passes, upserts the whole
// write set in one transaction. A failed validation performs no writes at
// all. Re-submitting the same values is idempotent.
func (s *SimpleSubmissionService) Submit(ctx context.Context, entityType domain.EntityType, entityID string, entityInstanceID string, submittedValues map[string]string) (SubmissionResult, error) {
	scopeExists, err := s.scopeRepository.ScopeExists(ctx, entityType, entityID)
	if err != nil {
		slog.Error("checking scope existence",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return SubmissionResult{}, errUnknown
	}
	if !scopeExists {
		return SubmissionResult{}, ErrScopeNotFound
	}

	instanceExists, err := s.scopeRepository.InstanceExists(ctx, entityType, entityInstanceID)
	if err != nil {
		slog.Error("checking instance existence",
			slog.String("entity_instance_id", entityInstanceID),
			slog.String("error", err.Error()))
		return SubmissionResult{}, errUnknown
	}
	if !instanceExists {
		return SubmissionResult{}, ErrEntityInstanceNotFound
	}

	validationResult, err := s.validation.Validate(ctx, entityType, entityID, submittedValues)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("validating submission: %w", err)
	}
	if !validationResult.IsValid {
		return SubmissionResult{
			Success: false,
			Errors:  validationResult.Errors,
		}, nil
	}

	fields, err := s.catalog.GetFields(ctx, entityType, entityID)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("fetching field catalog: %w", err)
	}

	writeSet := make([]domain.FieldValue, 0, len(fields))
	for _, field := range fields {
		submitted, hasValue := submittedValues[field.ID.String()]
		if !hasValue {
			continue
		}

		value, err := domain.NewFieldValueBuilder().
			WithCustomFieldID(field.ID).
			WithEntityInstanceID(entityInstanceID).
			WithFieldValue(submitted).
			Build()
		if err != nil {
			return SubmissionResult{}, fmt.Errorf("building field value: %w", err)
		}
		writeSet = append(writeSet, value)
	}

	stored, err := s.valueRepository.UpsertAll(ctx, writeSet)
	if err != nil {
		slog.Error("upserting field values",
			slog.String("entity_instance_id", entityInstanceID),
			slog.Int("count", len(writeSet)),
			slog.String("error", err.Error()))
		return SubmissionResult{}, errUnknown
	}

	return SubmissionResult{
		Success: true,
		Values:  stored,
	}, nil
}
