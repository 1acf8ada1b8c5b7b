package persistence

import (
	"context"
	"fmt"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/persistence/internal"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/sql"
)

func NewScopeRepository(orm sql.ORM) (*SimpleScopeRepository, error) {
	err := orm.AutoMigrate(
		&internal.Group{},
		&internal.Event{},
		&internal.GroupApplication{},
		&internal.EventRegistration{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleScopeRepository{
		orm: orm,
	}, nil
}

var _ usecases.ScopeRepository = (*SimpleScopeRepository)(nil)

type SimpleScopeRepository struct {
	orm sql.ORM
}

// ScopeExists checks the upstream table matching the entity type: groups for
// membership forms, events for registration forms.
func (r *SimpleScopeRepository) ScopeExists(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
	var model any
	switch entityType {
	case domain.EntityTypeGroupMembership:
		model = &internal.Group{}
	case domain.EntityTypeEventRegistration:
		model = &internal.Event{}
	default:
		return false, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	return r.exists(ctx, model, entityID)
}

// InstanceExists checks the table holding submission targets: group
// applications or event registrations.
func (r *SimpleScopeRepository) InstanceExists(ctx context.Context, entityType domain.EntityType, entityInstanceID string) (bool, error) {
	var model any
	switch entityType {
	case domain.EntityTypeGroupMembership:
		model = &internal.GroupApplication{}
	case domain.EntityTypeEventRegistration:
		model = &internal.EventRegistration{}
	default:
		return false, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	return r.exists(ctx, model, entityInstanceID)
}

func (r *SimpleScopeRepository) exists(ctx context.Context, model any, id string) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}
