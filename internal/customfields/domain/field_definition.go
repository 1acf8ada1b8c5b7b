package domain

import (
	"fmt"
	"strings"
	"time"

	"memberhub-server/internal/infra/utils"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

// FieldDefinition is one administrator-configured input of a custom form,
// scoped to a single (entity type, entity id) pair.
type FieldDefinition struct {
	ID           shareddomain.ID
	Version      int
	EntityType   EntityType
	EntityID     string
	FieldName    string
	FieldType    FieldType
	FieldOptions string
	IsRequired   bool
	TabID        *shareddomain.ID
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Options parses the comma-delimited option list, trimming whitespace and
// dropping empty entries.
func (f FieldDefinition) Options() []string {
	if f.FieldOptions == "" {
		return nil
	}

	parts := strings.Split(f.FieldOptions, ",")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// CheckInvariants verifies the structural rules that must hold on every
// write, not only on first build: a display name is present, and option-based
// field types carry a non-empty option list.
func (f FieldDefinition) CheckInvariants() error {
	if f.FieldName == "" {
		return fmt.Errorf("field name is required")
	}
	if f.FieldType.RequiresOptions() && len(f.Options()) == 0 {
		return fmt.Errorf("field type %s requires a non-empty option list", f.FieldType)
	}
	return nil
}

func NewFieldDefinitionBuilder() *fieldDefinitionBuilder {
	return &fieldDefinitionBuilder{}
}

type fieldDefinitionBuilder struct {
	actions []fieldDefinitionHandler
}

type fieldDefinitionHandler func(f *FieldDefinition) error

func (b *fieldDefinitionBuilder) WithEntityType(value EntityType) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.EntityType = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithEntityID(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.EntityID = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFieldName(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.FieldName = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFieldType(value FieldType) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.FieldType = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFieldOptions(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.FieldOptions = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithIsRequired(value bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.IsRequired = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithTabID(value *shareddomain.ID) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.TabID = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithDisplayOrder(value int) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.DisplayOrder = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) Build() (FieldDefinition, error) {
	now := time.Now()
	result := FieldDefinition{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldDefinition{}, err
		}
	}

	if err := result.CheckInvariants(); err != nil {
		return FieldDefinition{}, err
	}

	return result, nil
}
