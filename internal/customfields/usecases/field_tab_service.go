package usecases

import (
	"context"
	"errors"
	"log/slog"

	"memberhub-server/internal/customfields/domain"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

func NewFieldTabService(repository FieldTabRepository) *SimpleFieldTabService {
	return &SimpleFieldTabService{
		repository,
	}
}

var _ FieldTabService = &SimpleFieldTabService{}

type SimpleFieldTabService struct {
	repository FieldTabRepository
}

func (s *SimpleFieldTabService) Create(ctx context.Context, tab domain.FieldTab) error {
	if err := s.repository.Create(ctx, tab); err != nil {
		slog.Error("creating field tab",
			slog.String("tab_name", tab.TabName),
			slog.String("error", err.Error()))
		return errUnknown
	}

	return nil
}

func (s *SimpleFieldTabService) Get(ctx context.Context, id shareddomain.ID) (domain.FieldTab, error) {
	tab, err := s.repository.Get(ctx, id.String())
	if errors.Is(err, ErrFieldTabNotFound) {
		return domain.FieldTab{}, ErrFieldTabNotFound
	}
	if err != nil {
		slog.Error("getting field tab", slog.String("error", err.Error()))
		return domain.FieldTab{}, errUnknown
	}

	return tab, nil
}

func (s *SimpleFieldTabService) FindByScope(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.FieldTab, error) {
	tabs, err := s.repository.FindByScope(ctx, entityType, entityID)
	if err != nil {
		slog.Error("finding field tabs by scope",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return nil, errUnknown
	}

	return tabs, nil
}

func (s *SimpleFieldTabService) Update(ctx context.Context, tab domain.FieldTab) error {
	if _, err := s.Get(ctx, tab.ID); err != nil {
		return err
	}

	if err := s.repository.Update(ctx, tab); err != nil {
		slog.Error("updating field tab",
			slog.String("id", tab.ID.String()),
			slog.String("error", err.Error()))
		return errUnknown
	}

	return nil
}

// Delete removes a tab. The repository detaches the tab's fields in the same
// transaction, so they fall back to the flat section of the form.
func (s *SimpleFieldTabService) Delete(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id.String()); err != nil {
		slog.Error("deleting field tab",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		return errUnknown
	}

	return nil
}
