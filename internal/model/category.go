package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string        `json:"name" gorm:"not null"`
	Description   string        `json:"description,omitempty"`
	Color         string        `json:"color" gorm:"not null"`
	Icon          string        `json:"icon" gorm:"not null"`
	WorkspaceType WorkspaceType `json:"workspace_type" gorm:"not null"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CategoryPatch struct {
	Name          *string        `json:"name,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Color         *string        `json:"color,omitempty"`
	Icon          *string        `json:"icon,omitempty"`
	WorkspaceType *WorkspaceType `json:"workspace_type,omitempty"`
}

func (p CategoryPatch) Apply(c *Category) {
	setText(&c.Name, p.Name)
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.WorkspaceType != nil && p.WorkspaceType.Valid() {
		c.WorkspaceType = *p.WorkspaceType
	}
}
