package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"memberhub-server/internal/customfields/domain"
)

func NewFormViewService(
	catalog CatalogService,
	valueRepository FieldValueRepository,
	scopeRepository ScopeRepository,
) *SimpleFormViewService {
	return &SimpleFormViewService{
		catalog:         catalog,
		valueRepository: valueRepository,
		scopeRepository: scopeRepository,
	}
}

var _ FormViewService = &SimpleFormViewService{}

type SimpleFormViewService struct {
	catalog         CatalogService
	valueRepository FieldValueRepository
	scopeRepository ScopeRepository
}

// GetFormStructure joins tabs with their fields for rendering a blank form.
// A scope with no configured fields yields an empty structure, not an error.
func (s *SimpleFormViewService) GetFormStructure(ctx context.Context, entityType domain.EntityType, entityID string) (domain.FormStructure, error) {
	scopeExists, err := s.scopeRepository.ScopeExists(ctx, entityType, entityID)
	if err != nil {
		slog.Error("checking scope existence",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return domain.FormStructure{}, errUnknown
	}
	if !scopeExists {
		return domain.FormStructure{}, ErrScopeNotFound
	}

	fields, tabs, err := s.fetchCatalog(ctx, entityType, entityID)
	if err != nil {
		return domain.FormStructure{}, err
	}

	structure := domain.FormStructure{
		EntityType: entityType,
		EntityID:   entityID,
		Tabs:       make([]domain.FormTab, 0, len(tabs)),
	}

	fieldsByTab := make(map[string][]domain.FieldDefinition)
	for _, field := range fields {
		if field.TabID == nil {
			structure.FlatFields = append(structure.FlatFields, field)
			continue
		}
		key := field.TabID.String()
		fieldsByTab[key] = append(fieldsByTab[key], field)
	}

	for _, tab := range tabs {
		structure.Tabs = append(structure.Tabs, domain.FormTab{
			Tab:    tab,
			Fields: fieldsByTab[tab.ID.String()],
		})
	}

	return structure, nil
}

// GetSubmittedValues composes the form structure with the values stored for
// one entity instance. Configured fields the instance never answered come
// back with HasValue false.
func (s *SimpleFormViewService) GetSubmittedValues(ctx context.Context, entityType domain.EntityType, entityID string, entityInstanceID string) (domain.SubmittedForm, error) {
	structure, err := s.GetFormStructure(ctx, entityType, entityID)
	if err != nil {
		return domain.SubmittedForm{}, err
	}

	instanceExists, err := s.scopeRepository.InstanceExists(ctx, entityType, entityInstanceID)
	if err != nil {
		slog.Error("checking instance existence",
			slog.String("entity_instance_id", entityInstanceID),
			slog.String("error", err.Error()))
		return domain.SubmittedForm{}, errUnknown
	}
	if !instanceExists {
		return domain.SubmittedForm{}, ErrEntityInstanceNotFound
	}

	values, err := s.valueRepository.FindByInstance(ctx, entityInstanceID)
	if err != nil {
		slog.Error("getting values by instance",
			slog.String("entity_instance_id", entityInstanceID),
			slog.String("error", err.Error()))
		return domain.SubmittedForm{}, errUnknown
	}

	valuesByField := make(map[string]domain.FieldValue, len(values))
	for _, value := range values {
		valuesByField[value.CustomFieldID.String()] = value
	}

	compose := func(fields []domain.FieldDefinition) []domain.SubmittedValue {
		result := make([]domain.SubmittedValue, 0, len(fields))
		for _, field := range fields {
			stored, hasValue := valuesByField[field.ID.String()]
			result = append(result, domain.SubmittedValue{
				Field:    field,
				Value:    stored.FieldValue,
				HasValue: hasValue,
			})
		}
		return result
	}

	form := domain.SubmittedForm{
		EntityType:       entityType,
		EntityID:         entityID,
		EntityInstanceID: entityInstanceID,
		Tabs:             make([]domain.SubmittedTab, 0, len(structure.Tabs)),
		FlatValues:       compose(structure.FlatFields),
	}

	for _, formTab := range structure.Tabs {
		form.Tabs = append(form.Tabs, domain.SubmittedTab{
			Tab:    formTab.Tab,
			Values: compose(formTab.Fields),
		})
	}

	return form, nil
}

func (s *SimpleFormViewService) fetchCatalog(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldDefinition, []domain.FieldTab, error) {
	fields, err := s.catalog.GetFields(ctx, entityType, entityID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching fields: %w", err)
	}

	tabs, err := s.catalog.GetTabs(ctx, entityType, entityID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching tabs: %w", err)
	}

	return fields, tabs, nil
}
