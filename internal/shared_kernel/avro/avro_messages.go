package avro

import (
	"time"

	"memberhub-server/internal/customfields/domain"
)

// Avro-compatible message structs that match the Avro schemas

// AvroFieldDefinition represents the Avro-compatible FieldDefinition message
type AvroFieldDefinition struct {
	ID           string    `avro:"id"`
	Version      int       `avro:"version"`
	EntityType   string    `avro:"entity_type"`
	EntityID     string    `avro:"entity_id"`
	FieldName    string    `avro:"field_name"`
	FieldType    string    `avro:"field_type"`
	FieldOptions string    `avro:"field_options"`
	IsRequired   bool      `avro:"is_required"`
	TabID        *string   `avro:"tab_id"`
	DisplayOrder int       `avro:"display_order"`
	CreatedAt    time.Time `avro:"created_at"`
	UpdatedAt    time.Time `avro:"updated_at"`
}

// AvroFieldTab represents the Avro-compatible FieldTab message
type AvroFieldTab struct {
	ID           string    `avro:"id"`
	Version      int       `avro:"version"`
	EntityType   string    `avro:"entity_type"`
	EntityID     string    `avro:"entity_id"`
	TabName      string    `avro:"tab_name"`
	DisplayOrder int       `avro:"display_order"`
	CreatedAt    time.Time `avro:"created_at"`
	UpdatedAt    time.Time `avro:"updated_at"`
}

// AvroFieldValue represents the Avro-compatible FieldValue message
type AvroFieldValue struct {
	ID               string    `avro:"id"`
	Version          int       `avro:"version"`
	CustomFieldID    string    `avro:"custom_field_id"`
	EntityInstanceID string    `avro:"entity_instance_id"`
	FieldValue       string    `avro:"field_value"`
	CreatedAt        time.Time `avro:"created_at"`
	UpdatedAt        time.Time `avro:"updated_at"`
}

// ToAvroFieldDefinition converts a domain FieldDefinition to its Avro message
func ToAvroFieldDefinition(field domain.FieldDefinition) *AvroFieldDefinition {
	var tabID *string
	if field.TabID != nil {
		value := field.TabID.String()
		tabID = &value
	}

	return &AvroFieldDefinition{
		ID:           field.ID.String(),
		Version:      field.Version,
		EntityType:   string(field.EntityType),
		EntityID:     field.EntityID,
		FieldName:    field.FieldName,
		FieldType:    string(field.FieldType),
		FieldOptions: field.FieldOptions,
		IsRequired:   field.IsRequired,
		TabID:        tabID,
		DisplayOrder: field.DisplayOrder,
		CreatedAt:    field.CreatedAt,
		UpdatedAt:    field.UpdatedAt,
	}
}

// ToAvroFieldTab converts a domain FieldTab to its Avro message
func ToAvroFieldTab(tab domain.FieldTab) *AvroFieldTab {
	return &AvroFieldTab{
		ID:           tab.ID.String(),
		Version:      tab.Version,
		EntityType:   string(tab.EntityType),
		EntityID:     tab.EntityID,
		TabName:      tab.TabName,
		DisplayOrder: tab.DisplayOrder,
		CreatedAt:    tab.CreatedAt,
		UpdatedAt:    tab.UpdatedAt,
	}
}

// ToAvroFieldValue converts a domain FieldValue to its Avro message
func ToAvroFieldValue(value domain.FieldValue) *AvroFieldValue {
	return &AvroFieldValue{
		ID:               value.ID.String(),
		Version:          value.Version,
		CustomFieldID:    value.CustomFieldID.String(),
		EntityInstanceID: value.EntityInstanceID,
		FieldValue:       value.FieldValue,
		CreatedAt:        value.CreatedAt,
		UpdatedAt:        value.UpdatedAt,
	}
}
