package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description,omitempty"`
	Type        WorkspaceType `json:"type" gorm:"not null"`
	Color       string        `json:"color" gorm:"not null"`
	Icon        string        `json:"icon" gorm:"not null"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Type        *WorkspaceType `json:"type,omitempty"`
	Color       *string        `json:"color,omitempty"`
	Icon        *string        `json:"icon,omitempty"`
}

func (p ProjectPatch) Apply(pr *Project) {
	setText(&pr.Name, p.Name)
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Type != nil && p.Type.Valid() {
		pr.Type = *p.Type
	}
	if p.Color != nil {
		pr.Color = *p.Color
	}
	if p.Icon != nil {
		pr.Icon = *p.Icon
	}
}
