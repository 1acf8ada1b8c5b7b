package usecases

import (
	"context"
	"errors"
	"log/slog"

	"memberhub-server/internal/customfields/domain"
)

var (
	errUnknown = errors.New("unknown error")
)

func NewCatalogService(
	fieldRepository FieldDefinitionRepository,
	tabRepository FieldTabRepository,
) *SimpleCatalogService {
	return &SimpleCatalogService{
		fieldRepository,
		tabRepository,
	}
}

var _ CatalogService = &SimpleCatalogService{}

type SimpleCatalogService struct {
	fieldRepository FieldDefinitionRepository
	tabRepository   FieldTabRepository
}

func (s *SimpleCatalogService) GetFields(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldDefinition, error) {
	fields, err := s.fieldRepository.FindByScope(ctx, entityType, entityID)
	if err != nil {
		slog.Error("getting fields by scope",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return nil, errUnknown
	}

	return fields, nil
}

func (s *SimpleCatalogService) GetTabs(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldTab, error) {
	tabs, err := s.tabRepository.FindByScope(ctx, entityType, entityID)
	if err != nil {
		slog.Error("getting tabs by scope",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return nil, errUnknown
	}

	return tabs, nil
}
