package persistence

import (
	"context"
	"errors"
	"fmt"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/persistence/internal"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/pubsub"
	"memberhub-server/internal/infra/sql"
	"memberhub-server/internal/shared_kernel/avro"
)

func NewFieldDefinitionRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleFieldDefinitionRepository, error) {
	publisher, err := publisherFactory.New("custom_field_definitions", &avro.AvroFieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.FieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldDefinitionRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FieldDefinitionRepository = (*SimpleFieldDefinitionRepository)(nil)

type SimpleFieldDefinitionRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleFieldDefinitionRepository) Create(ctx context.Context, field domain.FieldDefinition) error {
	data := internal.FromFieldDefinition(field)
	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(field.ID), avro.ToAvroFieldDefinition(field))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleFieldDefinitionRepository) Update(ctx context.Context, field domain.FieldDefinition) error {
	data := internal.FromFieldDefinition(field)
	err := r.orm.
		WithContext(ctx).
		Save(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(field.ID), avro.ToAvroFieldDefinition(field))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleFieldDefinitionRepository) Delete(ctx context.Context, id string) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldDefinition{}, "id = ?", id).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (r *SimpleFieldDefinitionRepository) Get(ctx context.Context, id string) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrFieldDefinitionNotFound
	}

	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldDefinitionRepository) FindByScope(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType.String(), entityID).
		Order("display_order, created_at").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldDefinition, 0, len(entities))
	for _, entity := range entities {
		result = append(result, entity.ToDomain())
	}

	return result, nil
}
