package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"memberhub-server/internal/customfields/domain"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

func NewFieldDefinitionService(
	repository FieldDefinitionRepository,
	tabRepository FieldTabRepository,
) *SimpleFieldDefinitionService {
	return &SimpleFieldDefinitionService{
		repository,
		tabRepository,
	}
}

var _ FieldDefinitionService = &SimpleFieldDefinitionService{}

type SimpleFieldDefinitionService struct {
	repository    FieldDefinitionRepository
	tabRepository FieldTabRepository
}

func (s *SimpleFieldDefinitionService) Create(ctx context.Context, field domain.FieldDefinition) error {
	if err := field.CheckInvariants(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFieldDefinition, err)
	}

	if err := s.checkTabReference(ctx, field); err != nil {
		return err
	}

	if err := s.repository.Create(ctx, field); err != nil {
		slog.Error("creating field definition",
			slog.String("field_name", field.FieldName),
			slog.String("error", err.Error()))
		return errUnknown
	}

	return nil
}

func (s *SimpleFieldDefinitionService) Get(ctx context.Context, id shareddomain.ID) (domain.FieldDefinition, error) {
	field, err := s.repository.Get(ctx, id.String())
	if errors.Is(err, ErrFieldDefinitionNotFound) {
		return domain.FieldDefinition{}, ErrFieldDefinitionNotFound
	}
	if err != nil {
		slog.Error("getting field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, errUnknown
	}

	return field, nil
}

func (s *SimpleFieldDefinitionService) FindByScope(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldDefinition, error) {
	fields, err := s.repository.FindByScope(ctx, entityType, entityID)
	if err != nil {
		slog.Error("finding field definitions by scope",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return nil, errUnknown
	}

	return fields, nil
}

func (s *SimpleFieldDefinitionService) Update(ctx context.Context, field domain.FieldDefinition) error {
	if err := field.CheckInvariants(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFieldDefinition, err)
	}

	if _, err := s.Get(ctx, field.ID); err != nil {
		return err
	}

	if err := s.checkTabReference(ctx, field); err != nil {
		return err
	}

	if err := s.repository.Update(ctx, field); err != nil {
		slog.Error("updating field definition",
			slog.String("id", field.ID.String()),
			slog.String("error", err.Error()))
		return errUnknown
	}

	return nil
}

func (s *SimpleFieldDefinitionService) Delete(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id.String()); err != nil {
		slog.Error("deleting field definition",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		return errUnknown
	}

	return nil
}

// checkTabReference enforces that a referenced tab exists and belongs to the
// same scope as the field.
func (s *SimpleFieldDefinitionService) checkTabReference(ctx context.Context, field domain.FieldDefinition) error {
	if field.TabID == nil {
		return nil
	}

	tab, err := s.tabRepository.Get(ctx, field.TabID.String())
	if errors.Is(err, ErrFieldTabNotFound) {
		return ErrFieldTabNotFound
	}
	if err != nil {
		slog.Error("getting tab for field", slog.String("error", err.Error()))
		return errUnknown
	}

	if tab.EntityType != field.EntityType || tab.EntityID != field.EntityID {
		return ErrFieldTabNotFound
	}

	return nil
}
