package model

import (
	"time"

	"github.com/google/uuid"
)

// Column is a lane on a board. A column with a Status is the lane for that
// status: tasks placed in it take the status.
type Column struct {
	ID        uuid.UUID   `json:"id"`
	BoardID   uuid.UUID   `json:"board_id"`
	Name      string      `json:"name"`
	Position  int         `json:"position"`
	Color     string      `json:"color"`
	Status    *TaskStatus `json:"status,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (c Column) Clone() Column {
	out := c
	if c.Status != nil {
		s := *c.Status
		out.Status = &s
	}
	return out
}

// DefaultColumns are the lanes every new board starts with.
var DefaultColumns = []struct {
	Name   string
	Color  string
	Status TaskStatus
}{
	{"To Do", "bg-gray-500", StatusTodo},
	{"In Progress", "bg-blue-500", StatusInProgress},
	{"Done", "bg-green-500", StatusDone},
}

type ColumnPatch struct {
	Name     *string     `json:"name,omitempty"`
	Color    *string     `json:"color,omitempty"`
	Position *int        `json:"position,omitempty"`
	Status   *TaskStatus `json:"status,omitempty"`
}

func (p ColumnPatch) Apply(c *Column) {
	setText(&c.Name, p.Name)
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Position != nil {
		c.Position = *p.Position
	}
	if p.Status != nil && p.Status.Valid() {
		s := *p.Status
		c.Status = &s
	}
}
