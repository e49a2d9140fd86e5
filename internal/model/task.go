package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ParentKind says which of the task's parent references is in use.
type ParentKind string

const (
	ParentNone     ParentKind = ""
	ParentBoard    ParentKind = "board"
	ParentProject  ParentKind = "project"
	ParentCategory ParentKind = "category"
)

var ErrInvalidParent = errors.New("invalid task parent")

type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status" gorm:"not null;default:todo"`
	Priority    Priority   `json:"priority" gorm:"not null;default:medium"`
	Tags        []string   `json:"tags" gorm:"type:text;serializer:json"`
	Position    int        `json:"position" gorm:"not null;default:0"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	ParentKind ParentKind `json:"parent_kind" gorm:"not null;default:''"`
	BoardID    *uuid.UUID `json:"board_id,omitempty" gorm:"type:uuid;index"`
	ColumnID   *uuid.UUID `json:"column_id,omitempty" gorm:"type:uuid;index"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
	CategoryID *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Completed is the legacy view of the status.
func (t *Task) Completed() bool {
	return t.Status == StatusDone
}

// Toggle flips the task between done and todo.
func (t *Task) Toggle() {
	if t.Completed() {
		t.Status = StatusTodo
	} else {
		t.Status = StatusDone
	}
}

func (t Task) MarshalJSON() ([]byte, error) {
	type alias Task
	return json.Marshal(struct {
		alias
		Completed bool `json:"completed"`
	}{alias(t), t.Completed()})
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	aux := struct {
		*alias
		Completed *bool `json:"completed"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.Status == "" && aux.Completed != nil {
		if *aux.Completed {
			t.Status = StatusDone
		} else {
			t.Status = StatusTodo
		}
	}
	if t.ParentKind == ParentNone {
		t.ParentKind = t.Parent().Kind
	}
	return nil
}

// Parent is the tagged union over the places a task can live.
type Parent struct {
	Kind       ParentKind
	BoardID    uuid.UUID
	ColumnID   uuid.UUID
	ProjectID  uuid.UUID
	CategoryID uuid.UUID
}

func BoardParent(boardID, columnID uuid.UUID) Parent {
	return Parent{Kind: ParentBoard, BoardID: boardID, ColumnID: columnID}
}

func ProjectParent(projectID uuid.UUID) Parent {
	return Parent{Kind: ParentProject, ProjectID: projectID}
}

func CategoryParent(categoryID uuid.UUID) Parent {
	return Parent{Kind: ParentCategory, CategoryID: categoryID}
}

// Validate checks that exactly the references of the kind are set.
func (p Parent) Validate() error {
	nilIDs := func(ids ...uuid.UUID) bool {
		for _, id := range ids {
			if id != uuid.Nil {
				return false
			}
		}
		return true
	}
	switch p.Kind {
	case ParentNone:
		if nilIDs(p.BoardID, p.ColumnID, p.ProjectID, p.CategoryID) {
			return nil
		}
	case ParentBoard:
		if p.BoardID != uuid.Nil && p.ColumnID != uuid.Nil && nilIDs(p.ProjectID, p.CategoryID) {
			return nil
		}
	case ParentProject:
		if p.ProjectID != uuid.Nil && nilIDs(p.BoardID, p.ColumnID, p.CategoryID) {
			return nil
		}
	case ParentCategory:
		if p.CategoryID != uuid.Nil && nilIDs(p.BoardID, p.ColumnID, p.ProjectID) {
			return nil
		}
	}
	return ErrInvalidParent
}

// Parent reads the parent references. When ParentKind is unset it is
// inferred from whichever reference is present.
func (t *Task) Parent() Parent {
	p := Parent{
		Kind:       t.ParentKind,
		BoardID:    deref(t.BoardID),
		ColumnID:   deref(t.ColumnID),
		ProjectID:  deref(t.ProjectID),
		CategoryID: deref(t.CategoryID),
	}
	if p.Kind != ParentNone {
		return p
	}
	switch {
	case p.BoardID != uuid.Nil || p.ColumnID != uuid.Nil:
		p.Kind = ParentBoard
	case p.ProjectID != uuid.Nil:
		p.Kind = ParentProject
	case p.CategoryID != uuid.Nil:
		p.Kind = ParentCategory
	}
	return p
}

// SetParent replaces all parent references with those of p.
func (t *Task) SetParent(p Parent) {
	t.ParentKind = p.Kind
	t.BoardID = ref(p.BoardID)
	t.ColumnID = ref(p.ColumnID)
	t.ProjectID = ref(p.ProjectID)
	t.CategoryID = ref(p.CategoryID)
}

func deref(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func ref(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// TaskPatch is a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	Completed   *bool       `json:"completed,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Position    *int        `json:"position,omitempty"`
	AssigneeID  *uuid.UUID  `json:"assignee_id,omitempty"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	ColumnID    *uuid.UUID  `json:"column_id,omitempty"`
}

// ChangesStatus reports whether the patch sets the status directly or
// through the legacy completed flag.
func (p TaskPatch) ChangesStatus() bool {
	return (p.Status != nil && p.Status.Valid()) || p.Completed != nil
}

// Apply merges the patch into t. ColumnID only applies to board tasks.
func (p TaskPatch) Apply(t *Task) {
	setText(&t.Title, p.Title)
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		if *p.Completed {
			t.Status = StatusDone
		} else {
			t.Status = StatusTodo
		}
	}
	if p.Status != nil && p.Status.Valid() {
		t.Status = *p.Status
	}
	if p.Priority != nil && p.Priority.Valid() {
		t.Priority = *p.Priority
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), p.Tags...)
	}
	if p.Position != nil {
		t.Position = *p.Position
	}
	if p.AssigneeID != nil {
		t.AssigneeID = cloneID(p.AssigneeID)
	}
	if p.DueDate != nil {
		t.DueDate = cloneTime(p.DueDate)
	}
	if p.ColumnID != nil && *p.ColumnID != uuid.Nil && t.ParentKind == ParentBoard {
		id := *p.ColumnID
		t.ColumnID = &id
	}
}

// Clone returns a copy that shares no slices or pointers with t.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	c.AssigneeID = cloneID(t.AssigneeID)
	c.BoardID = cloneID(t.BoardID)
	c.ColumnID = cloneID(t.ColumnID)
	c.ProjectID = cloneID(t.ProjectID)
	c.CategoryID = cloneID(t.CategoryID)
	c.DueDate = cloneTime(t.DueDate)
	return c
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
