package internal

import (
	"time"

	"memberhub-server/internal/customfields/domain"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

type FieldTab struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Version      int       `json:"version"`
	EntityType   string    `json:"entity_type" gorm:"index:idx_field_tabs_scope"`
	EntityID     string    `json:"entity_id" gorm:"index:idx_field_tabs_scope"`
	TabName      string    `json:"tab_name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FieldTab) TableName() string {
	return "custom_field_tabs"
}

func (t FieldTab) ToDomain() domain.FieldTab {
	return domain.FieldTab{
		ID:           shareddomain.ID(t.ID),
		Version:      t.Version,
		EntityType:   domain.EntityType(t.EntityType),
		EntityID:     t.EntityID,
		TabName:      t.TabName,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromFieldTab(value domain.FieldTab) FieldTab {
	return FieldTab{
		ID:           value.ID.String(),
		Version:      value.Version,
		EntityType:   value.EntityType.String(),
		EntityID:     value.EntityID,
		TabName:      value.TabName,
		DisplayOrder: value.DisplayOrder,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}
