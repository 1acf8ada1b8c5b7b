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

func NewFieldTabRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleFieldTabRepository, error) {
	publisher, err := publisherFactory.New("custom_field_tabs", &avro.AvroFieldTab{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.FieldTab{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldTabRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FieldTabRepository = (*SimpleFieldTabRepository)(nil)

type SimpleFieldTabRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleFieldTabRepository) Create(ctx context.Context, tab domain.FieldTab) error {
	data := internal.FromFieldTab(tab)
	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(tab.ID), avro.ToAvroFieldTab(tab))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleFieldTabRepository) Update(ctx context.Context, tab domain.FieldTab) error {
	data := internal.FromFieldTab(tab)
	err := r.orm.
		WithContext(ctx).
		Save(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(tab.ID), avro.ToAvroFieldTab(tab))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

// Delete removes the tab and detaches its fields in one transaction, so a
// failure can never leave fields detached with the tab still present.
func (r *SimpleFieldTabRepository) Delete(ctx context.Context, id string) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			Model(&internal.FieldDefinition{}).
			Where("tab_id = ?", id).
			Update("tab_id", nil).
			Error()
		if err != nil {
			return fmt.Errorf("detaching fields: %w", err)
		}

		err = tx.
			Delete(&internal.FieldTab{}, "id = ?", id).
			Error()
		if err != nil {
			return fmt.Errorf("database delete: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting tab: %w", err)
	}

	return nil
}

func (r *SimpleFieldTabRepository) Get(ctx context.Context, id string) (domain.FieldTab, error) {
	var entity internal.FieldTab
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldTab{}, usecases.ErrFieldTabNotFound
	}

	if err != nil {
		return domain.FieldTab{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldTabRepository) FindByScope(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldTab, error) {
	var entities []internal.FieldTab
	err := r.orm.
		WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType.String(), entityID).
		Order("display_order, created_at").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldTab, 0, len(entities))
	for _, entity := range entities {
		result = append(result, entity.ToDomain())
	}

	return result, nil
}
