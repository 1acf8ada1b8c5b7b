package usecases

import (
	"context"
	"fmt"

	"memberhub-server/internal/customfields/domain"
)

func NewValidationService(catalog CatalogService) *SimpleValidationService {
	return &SimpleValidationService{
		catalog: catalog,
	}
}

var _ ValidationService = &SimpleValidationService{}

type SimpleValidationService struct {
	catalog CatalogService
}

// Validate runs every configured field of the scope against the submitted
// values. Submitted keys that match no configured field are ignored so stale
// client payloads stay harmless.
func (s *SimpleValidationService) Validate(ctx context.Context, entityType domain.EntityType, entityID string, submittedValues map[string]string) (domain.ValidationResult, error) {
	fields, err := s.catalog.GetFields(ctx, entityType, entityID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("fetching field catalog: %w", err)
	}

	result := domain.ValidationResult{
		IsValid: true,
		Errors:  make(map[string]string),
	}

	for _, field := range fields {
		value, hasValue := submittedValues[field.ID.String()]
		if reason := domain.ValidateFieldValue(field, value, hasValue); reason != "" {
			result.IsValid = false
			result.Errors[field.ID.String()] = reason
		}
	}

	return result, nil
}
