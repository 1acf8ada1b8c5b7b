package domain

import (
	"fmt"
	"time"

	"memberhub-server/internal/infra/utils"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

// FieldValue is one submitted answer to one field definition, keyed by the
// record it belongs to. Multi-select answers are stored as the raw delimited
// string exactly as submitted.
type FieldValue struct {
	ID               shareddomain.ID
	Version          int
	CustomFieldID    shareddomain.ID
	EntityInstanceID string
	FieldValue       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewFieldValueBuilder() *fieldValueBuilder {
	return &fieldValueBuilder{}
}

type fieldValueBuilder struct {
	actions []fieldValueHandler
}

type fieldValueHandler func(v *FieldValue) error

func (b *fieldValueBuilder) WithCustomFieldID(value shareddomain.ID) *fieldValueBuilder {
	b.actions = append(b.actions, func(v *FieldValue) error {
		v.CustomFieldID = value
		return nil
	})
	return b
}

func (b *fieldValueBuilder) WithEntityInstanceID(value string) *fieldValueBuilder {
	b.actions = append(b.actions, func(v *FieldValue) error {
		v.EntityInstanceID = value
		return nil
	})
	return b
}

func (b *fieldValueBuilder) WithFieldValue(value string) *fieldValueBuilder {
	b.actions = append(b.actions, func(v *FieldValue) error {
		v.FieldValue = value
		return nil
	})
	return b
}

func (b *fieldValueBuilder) Build() (FieldValue, error) {
	now := time.Now()
	result := FieldValue{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldValue{}, err
		}
	}

	if result.CustomFieldID == "" {
		return FieldValue{}, fmt.Errorf("custom field id is required")
	}
	if result.EntityInstanceID == "" {
		return FieldValue{}, fmt.Errorf("entity instance id is required")
	}

	return result, nil
}
