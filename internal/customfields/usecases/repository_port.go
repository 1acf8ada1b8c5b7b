package usecases

import (
	"context"
	"errors"

	"memberhub-server/internal/customfields/domain"
)

var (
	ErrInvalidFieldDefinition  = errors.New("invalid field definition")
	ErrFieldDefinitionNotFound = errors.New("field definition not found")
	ErrFieldTabNotFound        = errors.New("field tab not found")
	ErrScopeNotFound           = errors.New("scope entity not found")
	ErrEntityInstanceNotFound  = errors.New("entity instance not found")
)

//go:generate mockgen -source=./repository_port.go -destination=../../../test/unit/doubles/customfields/usecases/repository_port.go

// FieldDefinitionRepository persists field definitions. FindByScope returns
// definitions ordered by display order, then creation time.
type FieldDefinitionRepository interface {
	Create(context.Context, domain.FieldDefinition) error
	Update(context.Context, domain.FieldDefinition) error
	Delete(context.Context, string) error
	Get(context.Context, string) (domain.FieldDefinition, error)
	FindByScope(context.Context, domain.EntityType, string) ([]domain.FieldDefinition, error)
}

// FieldTabRepository persists field tabs. FindByScope returns tabs ordered by
// display order, then creation time.
type FieldTabRepository interface {
	Create(context.Context, domain.FieldTab) error
	Update(context.Context, domain.FieldTab) error
	// Delete removes the tab and clears the tab reference of every field
	// pointing at it, atomically.
	Delete(context.Context, string) error
	Get(context.Context, string) (domain.FieldTab, error)
	FindByScope(context.Context, domain.EntityType, string) ([]domain.FieldTab, error)
}

// FieldValueRepository persists submitted values keyed by
// (custom field id, entity instance id).
type FieldValueRepository interface {
	// UpsertAll applies the whole write set of one submission in a single
	// transaction: rows that exist for the natural key are updated, the rest
	// are inserted. Either all rows commit or none do.
	UpsertAll(context.Context, []domain.FieldValue) ([]domain.FieldValue, error)
	FindByInstance(context.Context, string) ([]domain.FieldValue, error)
}

// ScopeRepository answers existence checks against the upstream group and
// event tables so the engine can tell "nothing to fill out" apart from
// validation failures.
type ScopeRepository interface {
	ScopeExists(context.Context, domain.EntityType, string) (bool, error)
	InstanceExists(context.Context, domain.EntityType, string) (bool, error)
}
