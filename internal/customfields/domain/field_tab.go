package domain

import (
	"fmt"
	"time"

	"memberhub-server/internal/infra/utils"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

// FieldTab is a named grouping of field definitions for presentation.
type FieldTab struct {
	ID           shareddomain.ID
	Version      int
	EntityType   EntityType
	EntityID     string
	TabName      string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewFieldTabBuilder() *fieldTabBuilder {
	return &fieldTabBuilder{}
}

type fieldTabBuilder struct {
	actions []fieldTabHandler
}

type fieldTabHandler func(t *FieldTab) error

func (b *fieldTabBuilder) WithEntityType(value EntityType) *fieldTabBuilder {
	b.actions = append(b.actions, func(t *FieldTab) error {
		t.EntityType = value
		return nil
	})
	return b
}

func (b *fieldTabBuilder) WithEntityID(value string) *fieldTabBuilder {
	b.actions = append(b.actions, func(t *FieldTab) error {
		t.EntityID = value
		return nil
	})
	return b
}

func (b *fieldTabBuilder) WithTabName(value string) *fieldTabBuilder {
	b.actions = append(b.actions, func(t *FieldTab) error {
		t.TabName = value
		return nil
	})
	return b
}

func (b *fieldTabBuilder) WithDisplayOrder(value int) *fieldTabBuilder {
	b.actions = append(b.actions, func(t *FieldTab) error {
		t.DisplayOrder = value
		return nil
	})
	return b
}

func (b *fieldTabBuilder) Build() (FieldTab, error) {
	now := time.Now()
	result := FieldTab{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldTab{}, err
		}
	}

	if result.TabName == "" {
		return FieldTab{}, fmt.Errorf("tab name is required")
	}

	return result, nil
}
