package internal

import (
	"time"

	"memberhub-server/internal/customfields/domain"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

type FieldDefinition struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Version      int       `json:"version"`
	EntityType   string    `json:"entity_type" gorm:"index:idx_field_definitions_scope"`
	EntityID     string    `json:"entity_id" gorm:"index:idx_field_definitions_scope"`
	FieldName    string    `json:"field_name"`
	FieldType    string    `json:"field_type"`
	FieldOptions string    `json:"field_options"`
	IsRequired   bool      `json:"is_required"`
	TabID        *string   `json:"tab_id,omitempty" gorm:"index"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FieldDefinition) TableName() string {
	return "custom_field_definitions"
}

func (f FieldDefinition) ToDomain() domain.FieldDefinition {
	field := domain.FieldDefinition{
		ID:           shareddomain.ID(f.ID),
		Version:      f.Version,
		EntityType:   domain.EntityType(f.EntityType),
		EntityID:     f.EntityID,
		FieldName:    f.FieldName,
		FieldType:    domain.FieldType(f.FieldType),
		FieldOptions: f.FieldOptions,
		IsRequired:   f.IsRequired,
		DisplayOrder: f.DisplayOrder,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}

	if f.TabID != nil {
		tabID := shareddomain.ID(*f.TabID)
		field.TabID = &tabID
	}

	return field
}

func FromFieldDefinition(value domain.FieldDefinition) FieldDefinition {
	field := FieldDefinition{
		ID:           value.ID.String(),
		Version:      value.Version,
		EntityType:   value.EntityType.String(),
		EntityID:     value.EntityID,
		FieldName:    value.FieldName,
		FieldType:    value.FieldType.String(),
		FieldOptions: value.FieldOptions,
		IsRequired:   value.IsRequired,
		DisplayOrder: value.DisplayOrder,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}

	if value.TabID != nil {
		tabID := value.TabID.String()
		field.TabID = &tabID
	}

	return field
}
