package model

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Type        WorkspaceType `json:"type"`
	Visibility  Visibility    `json:"visibility"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	SharedWith  []uuid.UUID   `json:"shared_with,omitempty"`
	TeamID      *uuid.UUID    `json:"team_id,omitempty"`
	Color       string        `json:"color"`
	Icon        string        `json:"icon"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Normalize enforces that team workspaces are always shared and that
// personal workspaces carry a visibility.
func (w *Workspace) Normalize() {
	if !w.Type.Valid() {
		w.Type = WorkspacePersonal
	}
	if w.Type == WorkspaceTeam {
		w.Visibility = VisibilityShared
		return
	}
	if !w.Visibility.Valid() {
		w.Visibility = VisibilityPrivate
	}
}

// Clone returns a copy that shares no slices or pointers with w.
func (w Workspace) Clone() Workspace {
	c := w
	if w.SharedWith != nil {
		c.SharedWith = append([]uuid.UUID(nil), w.SharedWith...)
	}
	c.TeamID = cloneID(w.TeamID)
	return c
}

type WorkspacePatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Type        *WorkspaceType `json:"type,omitempty"`
	Visibility  *Visibility    `json:"visibility,omitempty"`
	SharedWith  []uuid.UUID    `json:"shared_with,omitempty"`
	TeamID      *uuid.UUID     `json:"team_id,omitempty"`
	Color       *string        `json:"color,omitempty"`
	Icon        *string        `json:"icon,omitempty"`
}

func (p WorkspacePatch) Apply(w *Workspace) {
	setText(&w.Name, p.Name)
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Type != nil && p.Type.Valid() {
		w.Type = *p.Type
	}
	if p.Visibility != nil && p.Visibility.Valid() {
		w.Visibility = *p.Visibility
	}
	if p.SharedWith != nil {
		w.SharedWith = append([]uuid.UUID(nil), p.SharedWith...)
	}
	if p.TeamID != nil {
		w.TeamID = cloneID(p.TeamID)
	}
	if p.Color != nil {
		w.Color = *p.Color
	}
	if p.Icon != nil {
		w.Icon = *p.Icon
	}
	w.Normalize()
}

type Team struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Members     []TeamMember `json:"members"`
	CreatedBy   uuid.UUID    `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type TeamMember struct {
	UserID    uuid.UUID  `json:"user_id"`
	UserName  string     `json:"user_name"`
	UserEmail string     `json:"user_email"`
	Role      MemberRole `json:"role"`
	JoinedAt  time.Time  `json:"joined_at"`
}

func (t Team) Clone() Team {
	c := t
	if t.Members != nil {
		c.Members = append([]TeamMember(nil), t.Members...)
	}
	return c
}

// Owner returns the first member, which is always the team creator.
func (t *Team) Owner() (TeamMember, bool) {
	if len(t.Members) == 0 {
		return TeamMember{}, false
	}
	return t.Members[0], true
}
