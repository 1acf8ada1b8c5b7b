package internal

import (
	"time"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/infra/utils"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

type FieldDefinitionCreateRequest struct {
	EntityType   string  `json:"entity_type"`
	EntityID     string  `json:"entity_id"`
	FieldName    string  `json:"field_name"`
	FieldType    string  `json:"field_type"`
	FieldOptions string  `json:"field_options"`
	IsRequired   bool    `json:"is_required"`
	TabID        *string `json:"tab_id"`
	DisplayOrder int     `json:"display_order"`
}

type FieldDefinitionUpdateRequest struct {
	FieldName    string  `json:"field_name"`
	FieldType    string  `json:"field_type"`
	FieldOptions string  `json:"field_options"`
	IsRequired   bool    `json:"is_required"`
	TabID        *string `json:"tab_id"`
	DisplayOrder int     `json:"display_order"`
}

type FieldDefinitionResponse struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	FieldName    string    `json:"field_name"`
	FieldType    string    `json:"field_type"`
	FieldOptions string    `json:"field_options"`
	IsRequired   bool      `json:"is_required"`
	TabID        *string   `json:"tab_id"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToFieldDefinitionResponse(field domain.FieldDefinition) FieldDefinitionResponse {
	var tabID *string
	if field.TabID != nil {
		tabID = utils.StringPtr(field.TabID.String())
	}

	return FieldDefinitionResponse{
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

// TabIDValue converts an optional request tab id into the domain
// representation.
func TabIDValue(raw *string) *shareddomain.ID {
	if raw == nil || *raw == "" {
		return nil
	}
	id := shareddomain.ID(*raw)
	return &id
}

type FieldTabCreateRequest struct {
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	TabName      string `json:"tab_name"`
	DisplayOrder int    `json:"display_order"`
}

type FieldTabUpdateRequest struct {
	TabName      string `json:"tab_name"`
	DisplayOrder int    `json:"display_order"`
}

type FieldTabResponse struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	TabName      string    `json:"tab_name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToFieldTabResponse(tab domain.FieldTab) FieldTabResponse {
	return FieldTabResponse{
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
