package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/persistence/internal"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/pubsub"
	"memberhub-server/internal/infra/sql"
	"memberhub-server/internal/shared_kernel/avro"
)

func NewFieldValueRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleFieldValueRepository, error) {
	publisher, err := publisherFactory.New("custom_field_values", &avro.AvroFieldValue{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.FieldValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldValueRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FieldValueRepository = (*SimpleFieldValueRepository)(nil)

type SimpleFieldValueRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

// UpsertAll applies one submission's write set inside a single transaction.
// Rows are matched by the (custom_field_id, entity_instance_id) natural key:
// an existing row keeps its id and gets a bumped version, a missing row is
// inserted as given. The transaction aborts on the first failure so no
// partial form state is ever visible.
func (r *SimpleFieldValueRepository) UpsertAll(ctx context.Context, values []domain.FieldValue) ([]domain.FieldValue, error) {
	stored := make([]internal.FieldValue, 0, len(values))

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, value := range values {
			var existing internal.FieldValue
			err := tx.
				First(&existing, "custom_field_id = ? AND entity_instance_id = ?", value.CustomFieldID.String(), value.EntityInstanceID).
				Error()

			if errors.Is(err, sql.ErrRecordNotFound) {
				data := internal.FromFieldValue(value)
				if err := tx.Create(&data).Error(); err != nil {
					return fmt.Errorf("inserting value for field %s: %w", value.CustomFieldID, err)
				}
				stored = append(stored, data)
				continue
			}
			if err != nil {
				return fmt.Errorf("querying value for field %s: %w", value.CustomFieldID, err)
			}

			existing.FieldValue = value.FieldValue
			existing.Version++
			existing.UpdatedAt = time.Now()
			if err := tx.Save(&existing).Error(); err != nil {
				return fmt.Errorf("updating value for field %s: %w", value.CustomFieldID, err)
			}
			stored = append(stored, existing)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upserting field values: %w", err)
	}

	result := make([]domain.FieldValue, 0, len(stored))
	for _, data := range stored {
		value := data.ToDomain()
		result = append(result, value)

		if err := r.publisher.Publish(ctx, pubsub.Key(value.ID), avro.ToAvroFieldValue(value)); err != nil {
			slog.Warn("publishing field value event",
				slog.String("id", value.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	return result, nil
}

func (r *SimpleFieldValueRepository) FindByInstance(ctx context.Context, entityInstanceID string) ([]domain.FieldValue, error) {
	var entities []internal.FieldValue
	err := r.orm.
		WithContext(ctx).
		Where("entity_instance_id = ?", entityInstanceID).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldValue, 0, len(entities))
	for _, entity := range entities {
		result = append(result, entity.ToDomain())
	}

	return result, nil
}
