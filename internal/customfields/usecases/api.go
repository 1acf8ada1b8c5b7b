package usecases

import (
	"context"

	"memberhub-server/internal/customfields/domain"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/customfields/usecases/api.go

// CatalogService is the read-only lookup of field and tab definitions for one
// scope. Both lists come back ordered by display order with creation order as
// tie-break.
type CatalogService interface {
	GetFields(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldDefinition, error)
	GetTabs(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldTab, error)
}

// ValidationService checks a submission against the field catalog without
// side effects.
type ValidationService interface {
	Validate(ctx context.Context, entityType domain.EntityType, entityID string, submittedValues map[string]string) (domain.ValidationResult, error)
}

// SubmissionResult is the outcome of a submit call. Values is populated only
// on success; Errors only on validation failure.
type SubmissionResult struct {
	Success bool
	Errors  map[string]string
	Values  []domain.FieldValue
}

// SubmissionService validates and persists one form submission atomically.
type SubmissionService interface {
	Submit(ctx context.Context, entityType domain.EntityType, entityID string, entityInstanceID string, submittedValues map[string]string) (SubmissionResult, error)
}

// FormViewService composes catalog and stored values into read-side views.
type FormViewService interface {
	GetFormStructure(ctx context.Context, entityType domain.EntityType, entityID string) (domain.FormStructure, error)
	GetSubmittedValues(ctx context.Context, entityType domain.EntityType, entityID string, entityInstanceID string) (domain.SubmittedForm, error)
}

// FieldDefinitionService is the administrator-facing catalog management API.
type FieldDefinitionService interface {
	Create(ctx context.Context, field domain.FieldDefinition) error
	Get(ctx context.Context, id shareddomain.ID) (domain.FieldDefinition, error)
	FindByScope(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldDefinition, error)
	Update(ctx context.Context, field domain.FieldDefinition) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

// FieldTabService manages tab definitions. Deleting a tab detaches its fields
// instead of deleting them.
type FieldTabService interface {
	Create(ctx context.Context, tab domain.FieldTab) error
	Get(ctx context.Context, id shareddomain.ID) (domain.FieldTab, error)
	FindByScope(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldTab, error)
	Update(ctx context.Context, tab domain.FieldTab) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
