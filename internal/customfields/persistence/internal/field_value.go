package internal

import (
	"time"

	"memberhub-server/internal/customfields/domain"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

type FieldValue struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Version          int       `json:"version"`
	CustomFieldID    string    `json:"custom_field_id" gorm:"uniqueIndex:idx_field_values_natural_key"`
	EntityInstanceID string    `json:"entity_instance_id" gorm:"uniqueIndex:idx_field_values_natural_key"`
	FieldValue       string    `json:"field_value"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (FieldValue) TableName() string {
	return "custom_field_values"
}

func (v FieldValue) ToDomain() domain.FieldValue {
	return domain.FieldValue{
		ID:               shareddomain.ID(v.ID),
		Version:          v.Version,
		CustomFieldID:    shareddomain.ID(v.CustomFieldID),
		EntityInstanceID: v.EntityInstanceID,
		FieldValue:       v.FieldValue,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromFieldValue(value domain.FieldValue) FieldValue {
	return FieldValue{
		ID:               value.ID.String(),
		Version:          value.Version,
		CustomFieldID:    value.CustomFieldID.String(),
		EntityInstanceID: value.EntityInstanceID,
		FieldValue:       value.FieldValue,
		CreatedAt:        value.CreatedAt,
		UpdatedAt:        value.UpdatedAt,
	}
}
