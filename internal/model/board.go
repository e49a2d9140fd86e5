package model

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BoardPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Position    *int    `json:"position,omitempty"`
}

func (p BoardPatch) Apply(b *Board) {
	setText(&b.Name, p.Name)
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.Position != nil {
		b.Position = *p.Position
	}
}
