package internal

import (
	"time"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/usecases"
)

type FormTabResponse struct {
	Tab    FieldTabResponse          `json:"tab"`
	Fields []FieldDefinitionResponse `json:"fields"`
}

type FormStructureResponse struct {
	EntityType string                    `json:"entity_type"`
	EntityID   string                    `json:"entity_id"`
	Tabs       []FormTabResponse         `json:"tabs"`
	FlatFields []FieldDefinitionResponse `json:"flat_fields"`
}

func ToFormStructureResponse(structure domain.FormStructure) FormStructureResponse {
	tabs := make([]FormTabResponse, len(structure.Tabs))
	for i, tab := range structure.Tabs {
		fields := make([]FieldDefinitionResponse, len(tab.Fields))
		for j, field := range tab.Fields {
			fields[j] = ToFieldDefinitionResponse(field)
		}
		tabs[i] = FormTabResponse{
			Tab:    ToFieldTabResponse(tab.Tab),
			Fields: fields,
		}
	}

	flat := make([]FieldDefinitionResponse, len(structure.FlatFields))
	for i, field := range structure.FlatFields {
		flat[i] = ToFieldDefinitionResponse(field)
	}

	return FormStructureResponse{
		EntityType: string(structure.EntityType),
		EntityID:   structure.EntityID,
		Tabs:       tabs,
		FlatFields: flat,
	}
}

type ValidateRequest struct {
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Values     map[string]string `json:"values"`
}

type ValidationResponse struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type SubmitRequest struct {
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Values     map[string]string `json:"values"`
}

type FieldValueResponse struct {
	ID               string    `json:"id"`
	Version          int       `json:"version"`
	CustomFieldID    string    `json:"custom_field_id"`
	EntityInstanceID string    `json:"entity_instance_id"`
	FieldValue       string    `json:"field_value"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToFieldValueResponse(value domain.FieldValue) FieldValueResponse {
	return FieldValueResponse{
		ID:               value.ID.String(),
		Version:          value.Version,
		CustomFieldID:    value.CustomFieldID.String(),
		EntityInstanceID: value.EntityInstanceID,
		FieldValue:       value.FieldValue,
		CreatedAt:        value.CreatedAt,
		UpdatedAt:        value.UpdatedAt,
	}
}

type SubmissionResponse struct {
	Success bool                 `json:"success"`
	Errors  map[string]string    `json:"errors,omitempty"`
	Values  []FieldValueResponse `json:"values,omitempty"`
}

func ToSubmissionResponse(result usecases.SubmissionResult) SubmissionResponse {
	values := make([]FieldValueResponse, len(result.Values))
	for i, value := range result.Values {
		values[i] = ToFieldValueResponse(value)
	}

	return SubmissionResponse{
		Success: result.Success,
		Errors:  result.Errors,
		Values:  values,
	}
}

type SubmittedValueResponse struct {
	Field    FieldDefinitionResponse `json:"field"`
	Value    string                  `json:"value"`
	HasValue bool                    `json:"has_value"`
}

type SubmittedTabResponse struct {
	Tab    FieldTabResponse         `json:"tab"`
	Values []SubmittedValueResponse `json:"values"`
}

type SubmittedFormResponse struct {
	EntityType       string                   `json:"entity_type"`
	EntityID         string                   `json:"entity_id"`
	EntityInstanceID string                   `json:"entity_instance_id"`
	Tabs             []SubmittedTabResponse   `json:"tabs"`
	FlatValues       []SubmittedValueResponse `json:"flat_values"`
}

func ToSubmittedFormResponse(form domain.SubmittedForm) SubmittedFormResponse {
	toValues := func(values []domain.SubmittedValue) []SubmittedValueResponse {
		result := make([]SubmittedValueResponse, len(values))
		for i, value := range values {
			result[i] = SubmittedValueResponse{
				Field:    ToFieldDefinitionResponse(value.Field),
				Value:    value.Value,
				HasValue: value.HasValue,
			}
		}
		return result
	}

	tabs := make([]SubmittedTabResponse, len(form.Tabs))
	for i, tab := range form.Tabs {
		tabs[i] = SubmittedTabResponse{
			Tab:    ToFieldTabResponse(tab.Tab),
			Values: toValues(tab.Values),
		}
	}

	return SubmittedFormResponse{
		EntityType:       string(form.EntityType),
		EntityID:         form.EntityID,
		EntityInstanceID: form.EntityInstanceID,
		Tabs:             tabs,
		FlatValues:       toValues(form.FlatValues),
	}
}
